package authservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/IKaralkin/securebank/internal/domain"
	"github.com/IKaralkin/securebank/pkg/auth"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *auth.MockHashServiceInterface) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	hashService := auth.NewMockHashServiceInterface(ctrl)

	service := New(repo, hashService)
	defer ctrl.Finish()
	return service, repo, hashService
}

func registerParams() RegisterParams {
	return RegisterParams{
		FirstName:   "Jane",
		LastName:    "Doe",
		Email:       "jane.doe@example.com",
		Password:    "Str0ng!Pass",
		SSN:         "123456789",
		DateOfBirth: time.Date(1990, time.April, 2, 0, 0, 0, 0, time.UTC),
		Phone:       "5551234567",
		State:       "CA",
	}
}

func TestRegister(t *testing.T) {
	service, userRepo, hashService := NewMock(t)

	tests := []struct {
		name          string
		params        RegisterParams
		prepareMock   func()
		expectedUser  *domain.User
		expectedError error
	}{
		{
			name:   "Successful registration",
			params: registerParams(),
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "jane.doe@example.com").Return(nil, nil)
				hashService.EXPECT().HashPassword("Str0ng!Pass").Return("hashedpassword", nil)
				hashService.EXPECT().HashSecret("123456789").Return("hashedssn", nil)
				userRepo.EXPECT().Create(context.Background(), gomock.Any()).DoAndReturn(func(ctx context.Context, user *domain.User) (*domain.User, error) {
					user.ID = 1
					return user, nil
				})
			},
			expectedUser: &domain.User{
				ID:           1,
				FirstName:    "Jane",
				LastName:     "Doe",
				Email:        "jane.doe@example.com",
				PasswordHash: "hashedpassword",
				SSNHash:      "hashedssn",
				DateOfBirth:  time.Date(1990, time.April, 2, 0, 0, 0, 0, time.UTC),
				Phone:        "5551234567",
				State:        "CA",
			},
			expectedError: nil,
		},
		{
			name:   "Email already registered",
			params: registerParams(),
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "jane.doe@example.com").Return(&domain.User{Email: "jane.doe@example.com"}, nil)
			},
			expectedUser:  nil,
			expectedError: ErrEmailTaken,
		},
		{
			name:   "Error finding user",
			params: registerParams(),
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "jane.doe@example.com").Return(nil, errors.New("database error"))
			},
			expectedUser:  nil,
			expectedError: errors.New("database error"),
		},
		{
			name:   "Error hashing password",
			params: registerParams(),
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "jane.doe@example.com").Return(nil, nil)
				hashService.EXPECT().HashPassword("Str0ng!Pass").Return("", errors.New("hashing error"))
			},
			expectedUser:  nil,
			expectedError: errors.New("hashing error"),
		},
		{
			name:   "Error hashing ssn",
			params: registerParams(),
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "jane.doe@example.com").Return(nil, nil)
				hashService.EXPECT().HashPassword("Str0ng!Pass").Return("hashedpassword", nil)
				hashService.EXPECT().HashSecret("123456789").Return("", errors.New("hashing error"))
			},
			expectedUser:  nil,
			expectedError: errors.New("hashing error"),
		},
		{
			name:   "Error creating user",
			params: registerParams(),
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "jane.doe@example.com").Return(nil, nil)
				hashService.EXPECT().HashPassword("Str0ng!Pass").Return("hashedpassword", nil)
				hashService.EXPECT().HashSecret("123456789").Return("hashedssn", nil)
				userRepo.EXPECT().Create(context.Background(), gomock.Any()).Return(nil, errors.New("creation failed"))
			},
			expectedUser:  nil,
			expectedError: errors.New("creation failed"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			user, err := service.Register(context.Background(), tt.params)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedUser, user)
			}
		})
	}
}

func TestAuthenticate(t *testing.T) {
	service, userRepo, hashService := NewMock(t)

	tests := []struct {
		name          string
		email         string
		password      string
		prepareMock   func()
		expectedUser  *domain.User
		expectedError error
	}{
		{
			name:     "Successful authentication",
			email:    "jane.doe@example.com",
			password: "Str0ng!Pass",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "jane.doe@example.com").Return(&domain.User{
					ID:           1,
					Email:        "jane.doe@example.com",
					PasswordHash: "hashedpassword",
				}, nil)
				hashService.EXPECT().ComparePassword("hashedpassword", "Str0ng!Pass").Return(true)
			},
			expectedUser: &domain.User{
				ID:           1,
				Email:        "jane.doe@example.com",
				PasswordHash: "hashedpassword",
			},
			expectedError: nil,
		},
		{
			name:     "Invalid credentials - user not found",
			email:    "jane.doe@example.com",
			password: "Str0ng!Pass",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "jane.doe@example.com").Return(nil, nil)
			},
			expectedUser:  nil,
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "Invalid credentials - incorrect password",
			email:    "jane.doe@example.com",
			password: "wrongpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "jane.doe@example.com").Return(&domain.User{
					ID:           1,
					Email:        "jane.doe@example.com",
					PasswordHash: "hashedpassword",
				}, nil)
				hashService.EXPECT().ComparePassword("hashedpassword", "wrongpassword").Return(false)
			},
			expectedUser:  nil,
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "Invalid credentials - repo error",
			email:    "jane.doe@example.com",
			password: "Str0ng!Pass",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "jane.doe@example.com").Return(nil, errors.New("database error"))
			},
			expectedUser:  nil,
			expectedError: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			user, err := service.Authenticate(context.Background(), tt.email, tt.password)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedUser, user)
			}
		})
	}
}

func TestGetByID(t *testing.T) {
	service, userRepo, _ := NewMock(t)

	tests := []struct {
		name          string
		userID        int
		prepareMock   func()
		expectedUser  *domain.User
		expectedError error
	}{
		{
			name:   "User found",
			userID: 1,
			prepareMock: func() {
				userRepo.EXPECT().FindByID(context.Background(), 1).Return(&domain.User{ID: 1, Email: "jane.doe@example.com"}, nil)
			},
			expectedUser: &domain.User{ID: 1, Email: "jane.doe@example.com"},
		},
		{
			name:   "User not found",
			userID: 2,
			prepareMock: func() {
				userRepo.EXPECT().FindByID(context.Background(), 2).Return(nil, nil)
			},
			expectedError: ErrUserNotFound,
		},
		{
			name:   "Repo error",
			userID: 3,
			prepareMock: func() {
				userRepo.EXPECT().FindByID(context.Background(), 3).Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			user, err := service.GetByID(context.Background(), tt.userID)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedUser, user)
			}
		})
	}
}
