package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID           int       `db:"id"`
	FirstName    string    `db:"first_name"`
	LastName     string    `db:"last_name"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	SSNHash      string    `db:"ssn_hash"`
	DateOfBirth  time.Time `db:"date_of_birth"`
	Phone        string    `db:"phone"`
	State        string    `db:"state"`
	CreatedAt    time.Time `db:"created_at"`
}

type Session struct {
	ID        int       `db:"id"`
	UserID    int       `db:"user_id"`
	Token     string    `db:"token"`
	ExpiresAt time.Time `db:"expires_at"`
	CreatedAt time.Time `db:"created_at"`
}

type Account struct {
	ID            int             `db:"id"`
	UserID        int             `db:"user_id"`
	AccountNumber string          `db:"account_number"`
	AccountType   string          `db:"account_type"`
	Balance       decimal.Decimal `db:"balance"`
	Status        string          `db:"status"`
	CreatedAt     time.Time       `db:"created_at"`
}

type Transaction struct {
	ID          int             `db:"id"`
	AccountID   int             `db:"account_id"`
	Type        string          `db:"type"`
	Amount      decimal.Decimal `db:"amount"`
	Description string          `db:"description"`
	Status      string          `db:"status"`
	CreatedAt   time.Time       `db:"created_at"`
	ProcessedAt *time.Time      `db:"processed_at"`
}
