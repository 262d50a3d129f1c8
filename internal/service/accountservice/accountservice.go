package accountservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/IKaralkin/securebank/internal/domain"
)

type AccountRepo interface {
	FindByID(ctx context.Context, accountID int) (*domain.Account, error)
	FindByIDAndUser(ctx context.Context, accountID, userID int) (*domain.Account, error)
	FindByUserAndType(ctx context.Context, userID int, accountType string) (*domain.Account, error)
	FindByUserID(ctx context.Context, userID int) ([]domain.Account, error)
	ExistsByNumber(ctx context.Context, accountNumber string) (bool, error)
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	AddToBalance(ctx context.Context, accountID int, amount decimal.Decimal) (decimal.Decimal, error)
}

type TransactionRepo interface {
	Create(ctx context.Context, transaction *domain.Transaction) (*domain.Transaction, error)
	FindLatestByAccountID(ctx context.Context, accountID int) (*domain.Transaction, error)
	FindByAccountID(ctx context.Context, accountID int) ([]domain.Transaction, error)
}

type NumberGenerator interface {
	Generate() (string, error)
}

type Service struct {
	accountRepo     AccountRepo
	transactionRepo TransactionRepo
	generator       NumberGenerator
}

func New(accountRepo AccountRepo, transactionRepo TransactionRepo, generator NumberGenerator) *Service {
	return &Service{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		generator:       generator,
	}
}

const (
	AccountTypeChecking = "checking"
	AccountTypeSavings  = "savings"

	AccountStatusActive = "active"

	TransactionTypeDeposit     = "deposit"
	TransactionStatusCompleted = "completed"
)

// maxNumberAttempts bounds the generate/check/insert loop.
const maxNumberAttempts = 10

var (
	ErrInvalidAccountType      = errors.New("account type must be checking or savings")
	ErrAccountTypeTaken        = errors.New("account of this type already exists")
	ErrDuplicateAccountNumber  = errors.New("account number already exists")
	ErrAccountNotFound         = errors.New("account not found")
	ErrAccountNotActive        = errors.New("account is not active")
	ErrInvalidAmount           = errors.New("amount must be greater than zero")
	ErrAccountNotPersisted     = errors.New("account record missing after insert")
	ErrTransactionNotPersisted = errors.New("transaction record missing after insert")
)

// CreateAccount generates candidate numbers until one survives both the
// existence pre-check and the unique index at insert. The stored row is
// re-read before returning; a missing row is an error, never a made-up
// account.
func (s *Service) CreateAccount(ctx context.Context, userID int, accountType string) (*domain.Account, error) {
	if accountType != AccountTypeChecking && accountType != AccountTypeSavings {
		return nil, ErrInvalidAccountType
	}

	existing, err := s.accountRepo.FindByUserAndType(ctx, userID, accountType)
	if err != nil {
		zap.L().Error("can't check existing account: ", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		zap.L().Info("account type already taken", zap.Int("userID", userID), zap.String("type", accountType))
		return nil, ErrAccountTypeTaken
	}

	for attempt := 1; attempt <= maxNumberAttempts; attempt++ {
		number, err := s.generator.Generate()
		if err != nil {
			zap.L().Error("can't generate account number: ", zap.Error(err))
			return nil, err
		}

		exists, err := s.accountRepo.ExistsByNumber(ctx, number)
		if err != nil {
			return nil, err
		}
		if exists {
			continue
		}

		account := &domain.Account{
			UserID:        userID,
			AccountNumber: number,
			AccountType:   accountType,
		}
		created, err := s.accountRepo.Create(ctx, account)
		if errors.Is(err, ErrDuplicateAccountNumber) {
			// Lost the race for this number; try a fresh candidate.
			continue
		}
		if err != nil {
			return nil, err
		}

		stored, err := s.accountRepo.FindByID(ctx, created.ID)
		if err != nil {
			return nil, err
		}
		if stored == nil {
			zap.L().Error("account missing after insert", zap.Int("accountID", created.ID))
			return nil, ErrAccountNotPersisted
		}
		zap.L().Info("account created", zap.Int("userID", userID), zap.String("type", accountType))
		return stored, nil
	}

	return nil, fmt.Errorf("can't allocate account number after %d attempts", maxNumberAttempts)
}

// FundAccount records a completed deposit and applies the amount as a
// single SQL addition. A foreign account reports the same NotFound as a
// missing one.
func (s *Service) FundAccount(ctx context.Context, userID, accountID int, amount decimal.Decimal, sourceType string) (*domain.Transaction, decimal.Decimal, error) {
	account, err := s.accountRepo.FindByIDAndUser(ctx, accountID, userID)
	if err != nil {
		return nil, decimal.Decimal{}, err
	}
	if account == nil {
		return nil, decimal.Decimal{}, ErrAccountNotFound
	}
	if account.Status != AccountStatusActive {
		return nil, decimal.Decimal{}, ErrAccountNotActive
	}
	if !amount.IsPositive() {
		return nil, decimal.Decimal{}, ErrInvalidAmount
	}

	now := time.Now()
	transaction := &domain.Transaction{
		AccountID:   accountID,
		Type:        TransactionTypeDeposit,
		Amount:      amount,
		Description: fundingDescription(sourceType),
		Status:      TransactionStatusCompleted,
		ProcessedAt: &now,
	}
	if _, err := s.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, decimal.Decimal{}, err
	}

	newBalance, err := s.accountRepo.AddToBalance(ctx, accountID, amount)
	if err != nil {
		return nil, decimal.Decimal{}, err
	}

	latest, err := s.transactionRepo.FindLatestByAccountID(ctx, accountID)
	if err != nil {
		return nil, decimal.Decimal{}, err
	}
	if latest == nil {
		zap.L().Error("transaction missing after insert", zap.Int("accountID", accountID))
		return nil, decimal.Decimal{}, ErrTransactionNotPersisted
	}

	zap.L().Info("account funded",
		zap.Int("accountID", accountID),
		zap.String("amount", amount.String()),
	)
	return latest, newBalance, nil
}

func (s *Service) GetAccounts(ctx context.Context, userID int) ([]domain.Account, error) {
	accounts, err := s.accountRepo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get accounts", zap.Error(err))
		return nil, err
	}
	return accounts, nil
}

// GetTransactions returns the owning account alongside its transactions so
// callers can enrich rows without per-transaction lookups.
func (s *Service) GetTransactions(ctx context.Context, userID, accountID int) (*domain.Account, []domain.Transaction, error) {
	account, err := s.accountRepo.FindByIDAndUser(ctx, accountID, userID)
	if err != nil {
		return nil, nil, err
	}
	if account == nil {
		return nil, nil, ErrAccountNotFound
	}

	transactions, err := s.transactionRepo.FindByAccountID(ctx, accountID)
	if err != nil {
		zap.L().Error("failed to get transactions", zap.Error(err))
		return nil, nil, err
	}
	return account, transactions, nil
}

func fundingDescription(sourceType string) string {
	if sourceType == "bank" {
		return "Funding from bank account"
	}
	return "Funding from card"
}
