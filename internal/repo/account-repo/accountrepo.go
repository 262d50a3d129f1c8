package accountrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/IKaralkin/securebank/internal/domain"
	"github.com/IKaralkin/securebank/internal/pg"
	"github.com/IKaralkin/securebank/internal/service/accountservice"
)

const uniqueViolationCode = "23505"

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

func (r *Repository) FindByID(ctx context.Context, accountID int) (*domain.Account, error) {
	query := `
        SELECT id, user_id, account_number, account_type, balance, status, created_at
        FROM accounts
        WHERE id = $1
    `
	return r.findOne(ctx, query, accountID)
}

func (r *Repository) FindByIDAndUser(ctx context.Context, accountID, userID int) (*domain.Account, error) {
	query := `
        SELECT id, user_id, account_number, account_type, balance, status, created_at
        FROM accounts
        WHERE id = $1 AND user_id = $2
    `
	return r.findOne(ctx, query, accountID, userID)
}

func (r *Repository) FindByUserAndType(ctx context.Context, userID int, accountType string) (*domain.Account, error) {
	query := `
        SELECT id, user_id, account_number, account_type, balance, status, created_at
        FROM accounts
        WHERE user_id = $1 AND account_type = $2
    `
	return r.findOne(ctx, query, userID, accountType)
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.Account, error) {
	query := `
        SELECT id, user_id, account_number, account_type, balance, status, created_at
        FROM accounts
        WHERE user_id = $1
        ORDER BY created_at ASC, id ASC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get accounts", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		var account domain.Account
		err := rows.Scan(
			&account.ID, &account.UserID, &account.AccountNumber, &account.AccountType,
			&account.Balance, &account.Status, &account.CreatedAt,
		)
		if err != nil {
			zap.L().Error("can't scan account row", zap.Error(err))
			return nil, err
		}
		accounts = append(accounts, account)
	}
	return accounts, nil
}

func (r *Repository) ExistsByNumber(ctx context.Context, accountNumber string) (bool, error) {
	query := `
        SELECT EXISTS(SELECT 1 FROM accounts WHERE account_number = $1)
    `
	var exists bool
	if err := r.db.QueryRow(ctx, query, accountNumber).Scan(&exists); err != nil {
		zap.L().Error("can't check account number", zap.Error(err))
		return false, err
	}
	return exists, nil
}

// Create maps unique violations to service errors so the caller can tell a
// number collision (retry with a fresh candidate) from a duplicate account
// type (conflict).
func (r *Repository) Create(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	query := `
        INSERT INTO accounts (user_id, account_number, account_type, balance, status)
        VALUES ($1, $2, $3, 0, 'active')
        RETURNING id, balance, status, created_at
    `
	err := r.db.QueryRow(ctx, query, account.UserID, account.AccountNumber, account.AccountType).
		Scan(&account.ID, &account.Balance, &account.Status, &account.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			if pgErr.ConstraintName == "accounts_user_id_account_type_key" {
				return nil, accountservice.ErrAccountTypeTaken
			}
			return nil, accountservice.ErrDuplicateAccountNumber
		}
		zap.L().Error("can't save account", zap.Error(err))
		return nil, err
	}
	return account, nil
}

// AddToBalance applies the delta in a single UPDATE so concurrent fundings
// are serialized by the row lock, without a read-modify-write cycle.
func (r *Repository) AddToBalance(ctx context.Context, accountID int, amount decimal.Decimal) (decimal.Decimal, error) {
	query := `
        UPDATE accounts
        SET balance = balance + $1
        WHERE id = $2
        RETURNING balance
    `
	var newBalance decimal.Decimal
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := r.db.QueryRow(ctx, query, amount, accountID).Scan(&newBalance); err != nil {
			zap.L().Error("can't update account balance", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return decimal.Decimal{}, err
	}
	return newBalance, nil
}

func (r *Repository) findOne(ctx context.Context, query string, args ...any) (*domain.Account, error) {
	var account domain.Account
	err := r.db.QueryRow(ctx, query, args...).Scan(
		&account.ID, &account.UserID, &account.AccountNumber, &account.AccountType,
		&account.Balance, &account.Status, &account.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find account", zap.Error(err))
		return nil, err
	}
	return &account, nil
}
