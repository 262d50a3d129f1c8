package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/IKaralkin/securebank/internal/domain"
	"github.com/IKaralkin/securebank/internal/dto"
	authservice "github.com/IKaralkin/securebank/internal/service/authservice"
	pkgauth "github.com/IKaralkin/securebank/pkg/auth"
	"github.com/IKaralkin/securebank/pkg/utils"
	"github.com/IKaralkin/securebank/pkg/validate"
)

type Service interface {
	Register(ctx context.Context, params authservice.RegisterParams) (*domain.User, error)
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
	GetByID(ctx context.Context, userID int) (*domain.User, error)
}

type SessionService interface {
	StartSession(ctx context.Context, userID int) (*domain.Session, error)
	EndSession(ctx context.Context, token string) error
	Validate(ctx context.Context, token string) (int, error)
}

type AuthHandler struct {
	authService    Service
	sessionService SessionService
}

func New(authService Service, sessionService SessionService) *AuthHandler {
	return &AuthHandler{
		authService:    authService,
		sessionService: sessionService,
	}
}

// Register godoc
//
//	@Summary		Register a new user
//	@Description	Create a user account and start an authenticated session. All fields are validated; failures are reported per field.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterRequestDTO	true	"Register request body"
//	@Success		200		{object}	dto.RegisterResponseDTO
//	@Failure		400		{object}	utils.Response	"Validation failed"
//	@Failure		409		{object}	utils.Response	"Email already registered"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	params, fieldErrors := validateRegistration(req)
	if len(fieldErrors) > 0 {
		utils.RespondWithValidationErrors(w, fieldErrors)
		return
	}

	user, err := h.authService.Register(r.Context(), params)
	if err != nil {
		if errors.Is(err, authservice.ErrEmailTaken) {
			utils.RespondWithError(w, http.StatusConflict, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	session, err := h.sessionService.StartSession(r.Context(), user.ID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error starting session")
		return
	}
	http.SetCookie(w, pkgauth.NewSessionCookie(session.Token, time.Until(session.ExpiresAt)))
	utils.RespondWithJSON(w, http.StatusOK, dto.RegisterResponseDTO{
		Message: "User successfully registered",
	})
}

// Login godoc
//
//	@Summary		Authenticate user
//	@Description	Log in with email and password. A new session replaces any previous one for the user.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO	true	"Login request body"
//	@Success		200		{object}	dto.LoginResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Invalid credentials"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	email, err := validate.Email(req.Email)
	if err != nil || req.Password == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	user, err := h.authService.Authenticate(r.Context(), email, req.Password)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	session, err := h.sessionService.StartSession(r.Context(), user.ID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error starting session")
		return
	}
	http.SetCookie(w, pkgauth.NewSessionCookie(session.Token, time.Until(session.ExpiresAt)))
	utils.RespondWithJSON(w, http.StatusOK, dto.LoginResponseDTO{
		Message: "User successfully authenticated",
	})
}

// Logout godoc
//
//	@Summary		End the current session
//	@Description	Delete the session and clear the cookie. Logging out an already-ended session still succeeds.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	utils.Response	"Logged out"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(pkgauth.SessionCookieName)
	if err == nil && cookie.Value != "" {
		if err := h.sessionService.EndSession(r.Context(), cookie.Value); err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
	}
	http.SetCookie(w, pkgauth.ExpiredSessionCookie())
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Logged out"})
}

// Profile godoc
//
//	@Summary		Get current user profile
//	@Description	Return the authenticated user's profile. Credential material is never included.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	dto.ProfileResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/profile [get]
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(pkgauth.UserIDKey).(int)

	user, err := h.authService.GetByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, authservice.ErrUserNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.ProfileResponseDTO{
		ID:          user.ID,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Email:       user.Email,
		DateOfBirth: user.DateOfBirth.Format("2006-01-02"),
		Phone:       user.Phone,
		State:       user.State,
		CreatedAt:   user.CreatedAt.Format(time.RFC3339),
	})
}

// validateRegistration runs every field check and collects all failures, so
// the client sees the complete list at once.
func validateRegistration(req dto.RegisterRequestDTO) (authservice.RegisterParams, map[string]string) {
	fieldErrors := make(map[string]string)
	params := authservice.RegisterParams{}

	params.FirstName = strings.TrimSpace(req.FirstName)
	if params.FirstName == "" || len(params.FirstName) > 50 {
		fieldErrors["first_name"] = "first name is required and must not exceed 50 characters"
	}
	params.LastName = strings.TrimSpace(req.LastName)
	if params.LastName == "" || len(params.LastName) > 50 {
		fieldErrors["last_name"] = "last name is required and must not exceed 50 characters"
	}

	if email, err := validate.Email(req.Email); err != nil {
		fieldErrors["email"] = err.Error()
	} else {
		params.Email = email
	}
	if err := validate.Password(req.Password); err != nil {
		fieldErrors["password"] = err.Error()
	} else {
		params.Password = req.Password
	}
	if ssn, err := validate.SSN(req.SSN); err != nil {
		fieldErrors["ssn"] = err.Error()
	} else {
		params.SSN = ssn
	}
	if dob, err := validate.DateOfBirth(req.DateOfBirth, time.Now()); err != nil {
		fieldErrors["date_of_birth"] = err.Error()
	} else {
		params.DateOfBirth = dob
	}
	if phone, err := validate.Phone(req.Phone); err != nil {
		fieldErrors["phone"] = err.Error()
	} else {
		params.Phone = phone
	}
	if state, err := validate.State(req.State); err != nil {
		fieldErrors["state"] = err.Error()
	} else {
		params.State = state
	}

	return params, fieldErrors
}
