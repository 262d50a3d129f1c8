package dto

import "github.com/shopspring/decimal"

type CreateAccountRequestDTO struct {
	AccountType string `json:"account_type" validate:"required,oneof=checking savings" example:"checking"`
}

type AccountResponseDTO struct {
	ID            int             `json:"id" example:"1"`
	AccountNumber string          `json:"account_number" example:"4915000012"`
	AccountType   string          `json:"account_type" example:"checking"`
	Balance       decimal.Decimal `json:"balance" swaggertype:"string" example:"126.25"`
	Status        string          `json:"status" example:"active"`
	CreatedAt     string          `json:"created_at" example:"2024-11-20T16:09:57Z"`
}
