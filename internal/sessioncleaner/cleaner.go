package sessioncleaner

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/IKaralkin/securebank/internal/service/sessionservice"
)

var purging sync.Map

// Service removes expired sessions in the background. Expiry checks on the
// request path never depend on it; the purge only keeps the table small.
type Service struct {
	sessionRepo   sessionservice.Repo
	limit         uint32
	workerPool    WorkerPoolI
	purgeInterval time.Duration
}

func New(sessionRepo sessionservice.Repo) *Service {
	return &Service{
		sessionRepo:   sessionRepo,
		limit:         1000,
		workerPool:    NewWorkerPool(10),
		purgeInterval: time.Minute,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Session cleaner started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.purgeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping session cleaner")
			return
		case <-ticker.C:
			s.purgeExpired(ctx)
		}
	}
}

func (s *Service) purgeExpired(ctx context.Context) {
	sessions, err := s.sessionRepo.FindExpired(ctx, time.Now(), atomic.LoadUint32(&s.limit))
	if err != nil {
		zap.L().Error("Failed to fetch expired sessions", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, session := range sessions {
		session := session

		if _, loaded := purging.LoadOrStore(session.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer purging.Delete(session.ID)
				return s.sessionRepo.DeleteByID(ctx, session.ID)
			})
			if err != nil {
				purging.Delete(session.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error purging sessions", zap.Error(err))
	}
}
