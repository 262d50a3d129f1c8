package sessionservice

import (
	"context"
	"errors"
	"time"

	"github.com/IKaralkin/securebank/internal/domain"
	"github.com/IKaralkin/securebank/pkg/auth"
	"go.uber.org/zap"
)

type Repo interface {
	FindByToken(ctx context.Context, token string) (*domain.Session, error)
	Replace(ctx context.Context, session *domain.Session) (*domain.Session, error)
	DeleteByToken(ctx context.Context, token string) (int64, error)
	FindExpired(ctx context.Context, now time.Time, limit uint32) ([]domain.Session, error)
	DeleteByID(ctx context.Context, sessionID int) error
}

type Service struct {
	sessionRepo  Repo
	tokenService auth.TokenServiceInterface
	ttl          time.Duration
}

func New(repo Repo, tokenService auth.TokenServiceInterface, ttl time.Duration) *Service {
	return &Service{
		sessionRepo:  repo,
		tokenService: tokenService,
		ttl:          ttl,
	}
}

var (
	ErrSessionInvalid      = errors.New("invalid or expired session")
	ErrSessionDeleteFailed = errors.New("session delete failed")
)

// StartSession issues a fresh token and replaces any previous sessions of
// the user, so a login is also a logout everywhere else.
func (s *Service) StartSession(ctx context.Context, userID int) (*domain.Session, error) {
	token, err := s.tokenService.Generate()
	if err != nil {
		zap.L().Error("can't generate session token: ", zap.Error(err))
		return nil, err
	}
	session := &domain.Session{
		UserID:    userID,
		Token:     token,
		ExpiresAt: time.Now().Add(s.ttl),
	}
	stored, err := s.sessionRepo.Replace(ctx, session)
	if err != nil {
		zap.L().Error("can't store session: ", zap.Error(err))
		return nil, err
	}
	zap.L().Info("session started", zap.Int("userID", userID))
	return stored, nil
}

// Validate resolves a token to its user. Expired sessions are removed on
// sight, but the cleanup result never changes the answer.
func (s *Service) Validate(ctx context.Context, token string) (int, error) {
	session, err := s.sessionRepo.FindByToken(ctx, token)
	if err != nil {
		return 0, err
	}
	if session == nil {
		return 0, ErrSessionInvalid
	}
	if !s.IsLive(session, time.Now()) {
		if _, err := s.sessionRepo.DeleteByToken(ctx, token); err != nil {
			zap.L().Warn("can't remove expired session", zap.Error(err))
		}
		return 0, ErrSessionInvalid
	}
	return session.UserID, nil
}

// IsLive treats the expiry instant itself as expired.
func (s *Service) IsLive(session *domain.Session, now time.Time) bool {
	return now.Before(session.ExpiresAt)
}

// EndSession succeeds when the token is already gone. A delete that reports
// zero rows while the session still exists is an internal failure.
func (s *Service) EndSession(ctx context.Context, token string) error {
	affected, err := s.sessionRepo.DeleteByToken(ctx, token)
	if err != nil {
		return err
	}
	if affected == 0 {
		session, err := s.sessionRepo.FindByToken(ctx, token)
		if err != nil {
			return err
		}
		if session != nil {
			zap.L().Error("session survived delete", zap.Int("sessionID", session.ID))
			return ErrSessionDeleteFailed
		}
	}
	return nil
}
