package authservice

import (
	"context"
	"errors"
	"time"

	"github.com/IKaralkin/securebank/internal/domain"
	"github.com/IKaralkin/securebank/pkg/auth"
	"go.uber.org/zap"
)

type Repo interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, userID int) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

type Service struct {
	userRepo    Repo
	hashService auth.HashServiceInterface
}

func New(repo Repo, hashService auth.HashServiceInterface) *Service {
	return &Service{
		userRepo:    repo,
		hashService: hashService,
	}
}

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

// RegisterParams carries normalized, validated registration fields.
type RegisterParams struct {
	FirstName   string
	LastName    string
	Email       string
	Password    string
	SSN         string
	DateOfBirth time.Time
	Phone       string
	State       string
}

// Register stores a new user. Password and SSN are hashed before anything
// touches the repository; plaintext never leaves this method.
func (s *Service) Register(ctx context.Context, params RegisterParams) (*domain.User, error) {
	existingUser, err := s.userRepo.FindByEmail(ctx, params.Email)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if existingUser != nil {
		zap.L().Info("user already exists", zap.String("email", params.Email))
		return nil, ErrEmailTaken
	}
	passwordHash, err := s.hashService.HashPassword(params.Password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}
	ssnHash, err := s.hashService.HashSecret(params.SSN)
	if err != nil {
		zap.L().Error("can't hash ssn: ", zap.Error(err))
		return nil, err
	}
	user := &domain.User{
		FirstName:    params.FirstName,
		LastName:     params.LastName,
		Email:        params.Email,
		PasswordHash: passwordHash,
		SSNHash:      ssnHash,
		DateOfBirth:  params.DateOfBirth,
		Phone:        params.Phone,
		State:        params.State,
	}
	newUser, err := s.userRepo.Create(ctx, user)
	if err != nil {
		zap.L().Error("can't create user: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("user successfully registered", zap.String("email", params.Email))
	return newUser, nil
}

// Authenticate reports the same error for an unknown email and a wrong
// password.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil || user == nil {
		zap.L().Info("invalid credentials", zap.String("email", email))
		return nil, ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		zap.L().Info("invalid credentials", zap.String("email", email))
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("user successfully authenticated", zap.String("email", email))
	return user, nil
}

func (s *Service) GetByID(ctx context.Context, userID int) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
