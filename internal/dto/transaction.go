package dto

import "github.com/shopspring/decimal"

type FundingSourceDTO struct {
	Type          string `json:"type" validate:"required,oneof=card bank" example:"card"`
	CardNumber    string `json:"card_number,omitempty" example:"4532 0151 1283 0366"`
	RoutingNumber string `json:"routing_number,omitempty" example:"021000021"`
	AccountNumber string `json:"account_number,omitempty" example:"000123456789"`
}

type FundAccountRequestDTO struct {
	Amount string           `json:"amount" validate:"required" example:"100.50"`
	Source FundingSourceDTO `json:"source" validate:"required"`
}

type TransactionResponseDTO struct {
	ID          int             `json:"id" example:"1"`
	AccountID   int             `json:"account_id" example:"1"`
	AccountType string          `json:"account_type,omitempty" example:"checking"`
	Type        string          `json:"type" example:"deposit"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"string" example:"100.50"`
	Description string          `json:"description" example:"Funding from card"`
	Status      string          `json:"status" example:"completed"`
	CreatedAt   string          `json:"created_at" example:"2024-11-20T16:09:57Z"`
	ProcessedAt string          `json:"processed_at,omitempty" example:"2024-11-20T16:09:58Z"`
}

type FundAccountResponseDTO struct {
	Transaction TransactionResponseDTO `json:"transaction"`
	Balance     decimal.Decimal        `json:"balance" swaggertype:"string" example:"126.25"`
}
