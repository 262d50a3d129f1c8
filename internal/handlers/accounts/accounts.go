package accounts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/IKaralkin/securebank/internal/domain"
	"github.com/IKaralkin/securebank/internal/dto"
	accountservice "github.com/IKaralkin/securebank/internal/service/accountservice"
	pkgauth "github.com/IKaralkin/securebank/pkg/auth"
	"github.com/IKaralkin/securebank/pkg/utils"
	"github.com/IKaralkin/securebank/pkg/validate"
)

type Service interface {
	CreateAccount(ctx context.Context, userID int, accountType string) (*domain.Account, error)
	FundAccount(ctx context.Context, userID, accountID int, amount decimal.Decimal, sourceType string) (*domain.Transaction, decimal.Decimal, error)
	GetAccounts(ctx context.Context, userID int) ([]domain.Account, error)
	GetTransactions(ctx context.Context, userID, accountID int) (*domain.Account, []domain.Transaction, error)
}

type AccountHandler struct {
	accountService Service
}

func New(accountService Service) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
	}
}

// CreateAccount godoc
//
//	@Summary		Open a new account
//	@Description	Create a checking or savings account for the authenticated user. One account per type.
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateAccountRequestDTO	true	"Account type"
//	@Success		201		{object}	dto.AccountResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		409		{object}	utils.Response	"Account of this type already exists"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/accounts [post]
func (h *AccountHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(pkgauth.UserIDKey).(int)

	req, err := utils.DecodeAndValidate[dto.CreateAccountRequestDTO](r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Account type must be checking or savings")
		return
	}

	account, err := h.accountService.CreateAccount(r.Context(), userID, req.AccountType)
	if err != nil {
		switch {
		case errors.Is(err, accountservice.ErrAccountTypeTaken):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, accountservice.ErrInvalidAccountType):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, toAccountDTO(account))
}

// ListAccounts godoc
//
//	@Summary		List accounts
//	@Description	Return every account owned by the authenticated user.
//	@Tags			Accounts
//	@Produce		json
//	@Success		200	{array}		dto.AccountResponseDTO
//	@Success		204	{object}	utils.Response	"No accounts found"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/accounts [get]
func (h *AccountHandler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(pkgauth.UserIDKey).(int)

	accounts, err := h.accountService.GetAccounts(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch accounts")
		return
	}
	if len(accounts) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No accounts found")
		return
	}

	response := make([]dto.AccountResponseDTO, len(accounts))
	for i, account := range accounts {
		response[i] = toAccountDTO(&account)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// FundAccount godoc
//
//	@Summary		Fund an account
//	@Description	Deposit into the account from a card or an external bank account. The amount is a decimal string with at most 2 fraction digits.
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			accountID	path		int						true	"Account ID"
//	@Param			request		body		dto.FundAccountRequestDTO	true	"Funding request"
//	@Success		200			{object}	dto.FundAccountResponseDTO
//	@Failure		400			{object}	utils.Response	"Validation failed or account inactive"
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		404			{object}	utils.Response	"Account not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/accounts/{accountID}/fund [post]
func (h *AccountHandler) FundAccount(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(pkgauth.UserIDKey).(int)

	accountID, err := strconv.Atoi(chi.URLParam(r, "accountID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid account id")
		return
	}

	var req dto.FundAccountRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	amount, fieldErrors := validateFunding(req)
	if len(fieldErrors) > 0 {
		utils.RespondWithValidationErrors(w, fieldErrors)
		return
	}

	transaction, balance, err := h.accountService.FundAccount(r.Context(), userID, accountID, amount, req.Source.Type)
	if err != nil {
		switch {
		case errors.Is(err, accountservice.ErrAccountNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, accountservice.ErrAccountNotActive):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, accountservice.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.FundAccountResponseDTO{
		Transaction: toTransactionDTO(transaction, ""),
		Balance:     balance,
	})
}

// GetTransactions godoc
//
//	@Summary		List account transactions
//	@Description	Return the account's transactions newest first, each carrying the account type.
//	@Tags			Accounts
//	@Produce		json
//	@Param			accountID	path		int	true	"Account ID"
//	@Success		200			{array}		dto.TransactionResponseDTO
//	@Success		204			{object}	utils.Response	"No transactions found"
//	@Failure		400			{object}	utils.Response	"Invalid account id"
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		404			{object}	utils.Response	"Account not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/accounts/{accountID}/transactions [get]
func (h *AccountHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(pkgauth.UserIDKey).(int)

	accountID, err := strconv.Atoi(chi.URLParam(r, "accountID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid account id")
		return
	}

	account, transactions, err := h.accountService.GetTransactions(r.Context(), userID, accountID)
	if err != nil {
		if errors.Is(err, accountservice.ErrAccountNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch transactions")
		return
	}
	if len(transactions) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No transactions found")
		return
	}

	response := make([]dto.TransactionResponseDTO, len(transactions))
	for i, transaction := range transactions {
		response[i] = toTransactionDTO(&transaction, account.AccountType)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// validateFunding checks the amount and the funding source together and
// reports every failure in one map.
func validateFunding(req dto.FundAccountRequestDTO) (decimal.Decimal, map[string]string) {
	fieldErrors := make(map[string]string)

	amount, err := validate.FundingAmount(req.Amount)
	if err != nil {
		fieldErrors["amount"] = err.Error()
	}

	switch req.Source.Type {
	case "card":
		if _, err := validate.CardNumber(req.Source.CardNumber); err != nil {
			fieldErrors["source.card_number"] = err.Error()
		} else if validate.CardNetwork(req.Source.CardNumber) == "" {
			fieldErrors["source.card_number"] = "card network is not recognized"
		}
	case "bank":
		if _, err := validate.RoutingNumber(req.Source.RoutingNumber); err != nil {
			fieldErrors["source.routing_number"] = err.Error()
		}
		if strings.TrimSpace(req.Source.AccountNumber) == "" {
			fieldErrors["source.account_number"] = "bank account number is required"
		}
	default:
		fieldErrors["source.type"] = "funding source type must be card or bank"
	}

	return amount, fieldErrors
}

func toAccountDTO(account *domain.Account) dto.AccountResponseDTO {
	return dto.AccountResponseDTO{
		ID:            account.ID,
		AccountNumber: account.AccountNumber,
		AccountType:   account.AccountType,
		Balance:       account.Balance,
		Status:        account.Status,
		CreatedAt:     account.CreatedAt.Format(time.RFC3339),
	}
}

func toTransactionDTO(transaction *domain.Transaction, accountType string) dto.TransactionResponseDTO {
	resp := dto.TransactionResponseDTO{
		ID:          transaction.ID,
		AccountID:   transaction.AccountID,
		AccountType: accountType,
		Type:        transaction.Type,
		Amount:      transaction.Amount,
		Description: transaction.Description,
		Status:      transaction.Status,
		CreatedAt:   transaction.CreatedAt.Format(time.RFC3339),
	}
	if transaction.ProcessedAt != nil {
		resp.ProcessedAt = transaction.ProcessedAt.Format(time.RFC3339)
	}
	return resp
}
