package sessionrepo

import (
	"context"
	"errors"
	"time"

	"github.com/IKaralkin/securebank/internal/domain"
	"github.com/IKaralkin/securebank/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) FindByToken(ctx context.Context, token string) (*domain.Session, error) {
	query := `
        SELECT id, user_id, token, expires_at, created_at
        FROM sessions
        WHERE token = $1
    `
	var session domain.Session
	err := r.db.QueryRow(ctx, query, token).Scan(
		&session.ID, &session.UserID, &session.Token, &session.ExpiresAt, &session.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find session", zap.Error(err))
		return nil, err
	}
	return &session, nil
}

// Replace removes every session of the user and stores the new one in a
// single transaction, so the user holds at most one live session.
func (r *Repository) Replace(ctx context.Context, session *domain.Session) (*domain.Session, error) {
	deleteQuery := `
        DELETE FROM sessions
        WHERE user_id = $1
    `
	insertQuery := `
        INSERT INTO sessions (user_id, token, expires_at)
        VALUES ($1, $2, $3)
        RETURNING id, created_at
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := r.db.Exec(ctx, deleteQuery, session.UserID); err != nil {
			zap.L().Error("can't delete previous sessions", zap.Error(err))
			return err
		}
		err := r.db.QueryRow(ctx, insertQuery, session.UserID, session.Token, session.ExpiresAt).
			Scan(&session.ID, &session.CreatedAt)
		if err != nil {
			zap.L().Error("can't save session", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return session, nil
}

// DeleteByToken returns the number of rows removed so callers can tell an
// absent token from a failed delete.
func (r *Repository) DeleteByToken(ctx context.Context, token string) (int64, error) {
	query := `
        DELETE FROM sessions
        WHERE token = $1
    `
	tag, err := r.db.Exec(ctx, query, token)
	if err != nil {
		zap.L().Error("can't delete session", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *Repository) FindExpired(ctx context.Context, now time.Time, limit uint32) ([]domain.Session, error) {
	query := `
        SELECT id, user_id, token, expires_at, created_at
        FROM sessions
        WHERE expires_at <= $1
        ORDER BY expires_at ASC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, now, int(limit))
	if err != nil {
		zap.L().Error("can't get expired sessions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var sessions []domain.Session
	for rows.Next() {
		var session domain.Session
		err := rows.Scan(&session.ID, &session.UserID, &session.Token, &session.ExpiresAt, &session.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan session row", zap.Error(err))
			return nil, err
		}
		sessions = append(sessions, session)
	}
	return sessions, nil
}

func (r *Repository) DeleteByID(ctx context.Context, sessionID int) error {
	query := `
        DELETE FROM sessions
        WHERE id = $1
    `
	if _, err := r.db.Exec(ctx, query, sessionID); err != nil {
		zap.L().Error("can't delete expired session", zap.Error(err))
		return err
	}
	return nil
}
