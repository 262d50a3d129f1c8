package transactionrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/IKaralkin/securebank/internal/domain"
	"github.com/IKaralkin/securebank/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, transaction *domain.Transaction) (*domain.Transaction, error) {
	query := `
        INSERT INTO transactions (account_id, type, amount, description, status, processed_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query,
		transaction.AccountID, transaction.Type, transaction.Amount,
		transaction.Description, transaction.Status, transaction.ProcessedAt,
	).Scan(&transaction.ID, &transaction.CreatedAt)
	if err != nil {
		zap.L().Error("can't save transaction", zap.Error(err))
		return nil, err
	}
	return transaction, nil
}

// FindLatestByAccountID returns the newest transaction, with the id as the
// tie-break for rows created in the same instant.
func (r *Repository) FindLatestByAccountID(ctx context.Context, accountID int) (*domain.Transaction, error) {
	query := `
        SELECT id, account_id, type, amount, description, status, created_at, processed_at
        FROM transactions
        WHERE account_id = $1
        ORDER BY created_at DESC, id DESC
        LIMIT 1
    `
	var transaction domain.Transaction
	err := r.db.QueryRow(ctx, query, accountID).Scan(
		&transaction.ID, &transaction.AccountID, &transaction.Type, &transaction.Amount,
		&transaction.Description, &transaction.Status, &transaction.CreatedAt, &transaction.ProcessedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find latest transaction", zap.Error(err))
		return nil, err
	}
	return &transaction, nil
}

func (r *Repository) FindByAccountID(ctx context.Context, accountID int) ([]domain.Transaction, error) {
	query := `
        SELECT id, account_id, type, amount, description, status, created_at, processed_at
        FROM transactions
        WHERE account_id = $1
        ORDER BY created_at DESC, id DESC
    `
	rows, err := r.db.Query(ctx, query, accountID)
	if err != nil {
		zap.L().Error("can't get transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		var transaction domain.Transaction
		err := rows.Scan(
			&transaction.ID, &transaction.AccountID, &transaction.Type, &transaction.Amount,
			&transaction.Description, &transaction.Status, &transaction.CreatedAt, &transaction.ProcessedAt,
		)
		if err != nil {
			zap.L().Error("can't scan transaction row", zap.Error(err))
			return nil, err
		}
		transactions = append(transactions, transaction)
	}
	return transactions, nil
}
