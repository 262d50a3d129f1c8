package handlers

import (
	"net/http"

	_ "github.com/IKaralkin/securebank/docs"
	accounthandlers "github.com/IKaralkin/securebank/internal/handlers/accounts"
	authhandlers "github.com/IKaralkin/securebank/internal/handlers/auth"
	"github.com/IKaralkin/securebank/internal/service"
	"github.com/IKaralkin/securebank/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	Profile(w http.ResponseWriter, r *http.Request)
}

type AccountHandler interface {
	CreateAccount(w http.ResponseWriter, r *http.Request)
	ListAccounts(w http.ResponseWriter, r *http.Request)
	FundAccount(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler    AuthHandler
	AccountHandler AccountHandler

	sessions auth.SessionValidator
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:    authhandlers.New(s.AuthService, s.SessionService),
		AccountHandler: accounthandlers.New(s.AccountService),
		sessions:       s.SessionService,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api/user", func(r chi.Router) {
		r.Post("/register", h.AuthHandler.Register)
		r.Post("/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.SessionMiddleware(h.sessions))
			r.Post("/logout", h.AuthHandler.Logout)
			r.Get("/profile", h.AuthHandler.Profile)
		})
	})
	r.Route("/api/accounts", func(r chi.Router) {
		r.Use(auth.SessionMiddleware(h.sessions))
		r.Post("/", h.AccountHandler.CreateAccount)
		r.Get("/", h.AccountHandler.ListAccounts)
		r.Route("/{accountID}", func(r chi.Router) {
			r.Post("/fund", h.AccountHandler.FundAccount)
			r.Get("/transactions", h.AccountHandler.GetTransactions)
		})
	})

	return r
}
