package repo

import (
	"github.com/IKaralkin/securebank/internal/pg"
	accountrepo "github.com/IKaralkin/securebank/internal/repo/account-repo"
	sessionrepo "github.com/IKaralkin/securebank/internal/repo/session-repo"
	transactionrepo "github.com/IKaralkin/securebank/internal/repo/transaction-repo"
	userrepo "github.com/IKaralkin/securebank/internal/repo/user-repo"
	"github.com/IKaralkin/securebank/internal/service/accountservice"
	"github.com/IKaralkin/securebank/internal/service/authservice"
	"github.com/IKaralkin/securebank/internal/service/sessionservice"
)

type Repositories struct {
	UserRepo        authservice.Repo
	SessionRepo     sessionservice.Repo
	AccountRepo     accountservice.AccountRepo
	TransactionRepo accountservice.TransactionRepo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	userRepo := userrepo.New(conn)
	sessionRepo := sessionrepo.New(conn, txManager)
	accountRepo := accountrepo.New(conn, txManager)
	transactionRepo := transactionrepo.New(conn)

	return &Repositories{
		UserRepo:        userRepo,
		SessionRepo:     sessionRepo,
		AccountRepo:     accountRepo,
		TransactionRepo: transactionRepo,
	}
}
