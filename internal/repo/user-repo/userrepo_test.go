package userrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/IKaralkin/securebank/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

var userColumns = []string{"id", "first_name", "last_name", "email", "password_hash", "ssn_hash", "date_of_birth", "phone", "state", "created_at"}

func TestRepository_FindByEmail(t *testing.T) {
	repo, mock := NewMock(t)

	dob := time.Date(1990, time.April, 2, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2024, time.June, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		email     string
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name:  "User found",
			email: "jane.doe@example.com",
			mockSetup: func() {
				rows := pgxmock.NewRows(userColumns).
					AddRow(1, "Jane", "Doe", "jane.doe@example.com", "hashed_password", "hashed_ssn", dob, "5551234567", "CA", createdAt)
				mock.ExpectQuery(regexp.QuoteMeta(`
					SELECT id, first_name, last_name, email, password_hash, ssn_hash, date_of_birth, phone, state, created_at
					FROM users
					WHERE email = $1
				`)).
					WithArgs("jane.doe@example.com").
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.User{
				ID:           1,
				FirstName:    "Jane",
				LastName:     "Doe",
				Email:        "jane.doe@example.com",
				PasswordHash: "hashed_password",
				SSNHash:      "hashed_ssn",
				DateOfBirth:  dob,
				Phone:        "5551234567",
				State:        "CA",
				CreatedAt:    createdAt,
			},
		},
		{
			name:  "User not found",
			email: "missing@example.com",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
					SELECT id, first_name, last_name, email, password_hash, ssn_hash, date_of_birth, phone, state, created_at
					FROM users
					WHERE email = $1
				`)).
					WithArgs("missing@example.com").
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name:  "Database error",
			email: "jane.doe@example.com",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
					SELECT id, first_name, last_name, email, password_hash, ssn_hash, date_of_birth, phone, state, created_at
					FROM users
					WHERE email = $1
				`)).
					WithArgs("jane.doe@example.com").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByEmail(context.Background(), tt.email)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)

	dob := time.Date(1990, time.April, 2, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2024, time.June, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		userID    int
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name:   "User found",
			userID: 1,
			mockSetup: func() {
				rows := pgxmock.NewRows(userColumns).
					AddRow(1, "Jane", "Doe", "jane.doe@example.com", "hashed_password", "hashed_ssn", dob, "5551234567", "CA", createdAt)
				mock.ExpectQuery(regexp.QuoteMeta(`
					SELECT id, first_name, last_name, email, password_hash, ssn_hash, date_of_birth, phone, state, created_at
					FROM users
					WHERE id = $1
				`)).
					WithArgs(1).
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.User{
				ID:           1,
				FirstName:    "Jane",
				LastName:     "Doe",
				Email:        "jane.doe@example.com",
				PasswordHash: "hashed_password",
				SSNHash:      "hashed_ssn",
				DateOfBirth:  dob,
				Phone:        "5551234567",
				State:        "CA",
				CreatedAt:    createdAt,
			},
		},
		{
			name:   "User not found",
			userID: 99,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
					SELECT id, first_name, last_name, email, password_hash, ssn_hash, date_of_birth, phone, state, created_at
					FROM users
					WHERE id = $1
				`)).
					WithArgs(99).
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name:   "Database error",
			userID: 1,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
					SELECT id, first_name, last_name, email, password_hash, ssn_hash, date_of_birth, phone, state, created_at
					FROM users
					WHERE id = $1
				`)).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByID(context.Background(), tt.userID)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	dob := time.Date(1990, time.April, 2, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2024, time.June, 1, 10, 0, 0, 0, time.UTC)

	newUser := func() *domain.User {
		return &domain.User{
			FirstName:    "Jane",
			LastName:     "Doe",
			Email:        "jane.doe@example.com",
			PasswordHash: "hashed_password",
			SSNHash:      "hashed_ssn",
			DateOfBirth:  dob,
			Phone:        "5551234567",
			State:        "CA",
		}
	}

	tests := []struct {
		name      string
		user      *domain.User
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name: "Create user successfully",
			user: newUser(),
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
					INSERT INTO users (first_name, last_name, email, password_hash, ssn_hash, date_of_birth, phone, state)
					VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
					RETURNING id, created_at
				`)).
					WithArgs("Jane", "Doe", "jane.doe@example.com", "hashed_password", "hashed_ssn", dob, "5551234567", "CA").
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(1, createdAt))
			},
			expectErr: false,
			result: &domain.User{
				ID:           1,
				FirstName:    "Jane",
				LastName:     "Doe",
				Email:        "jane.doe@example.com",
				PasswordHash: "hashed_password",
				SSNHash:      "hashed_ssn",
				DateOfBirth:  dob,
				Phone:        "5551234567",
				State:        "CA",
				CreatedAt:    createdAt,
			},
		},
		{
			name: "Database error",
			user: newUser(),
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
					INSERT INTO users (first_name, last_name, email, password_hash, ssn_hash, date_of_birth, phone, state)
					VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
					RETURNING id, created_at
				`)).
					WithArgs("Jane", "Doe", "jane.doe@example.com", "hashed_password", "hashed_ssn", dob, "5551234567", "CA").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(context.Background(), tt.user)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}
