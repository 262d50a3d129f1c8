package service

import (
	"github.com/IKaralkin/securebank/internal/handlers/accounts"
	"github.com/IKaralkin/securebank/internal/handlers/auth"

	pkgauth "github.com/IKaralkin/securebank/pkg/auth"
	"github.com/IKaralkin/securebank/pkg/generator"

	"github.com/IKaralkin/securebank/internal/config"
	"github.com/IKaralkin/securebank/internal/repo"
	accountservice "github.com/IKaralkin/securebank/internal/service/accountservice"
	authservice "github.com/IKaralkin/securebank/internal/service/authservice"
	sessionservice "github.com/IKaralkin/securebank/internal/service/sessionservice"
)

type Services struct {
	AuthService    auth.Service
	SessionService auth.SessionService
	AccountService accounts.Service
}

func New(repo *repo.Repositories, cfg *config.Config) *Services {
	hashService := pkgauth.NewHashService(cfg.BcryptCost)
	authService := authservice.New(repo.UserRepo, hashService)
	sessionService := sessionservice.New(repo.SessionRepo, &pkgauth.TokenService{}, cfg.SessionTTL)
	accountService := accountservice.New(repo.AccountRepo, repo.TransactionRepo, generator.NewAccountNumber(cfg.BcryptCost))

	return &Services{
		AuthService:    authService,
		SessionService: sessionService,
		AccountService: accountService,
	}
}
