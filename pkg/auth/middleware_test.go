package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestSessionMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sessions := NewMockSessionValidator(ctrl)

	tests := []struct {
		name         string
		cookie       *http.Cookie
		prepareMock  func()
		expectedCode int
		expectNext   bool
	}{
		{
			name:   "Valid Session",
			cookie: &http.Cookie{Name: SessionCookieName, Value: "good-token"},
			prepareMock: func() {
				sessions.EXPECT().Validate(gomock.Any(), "good-token").Return(42, nil)
			},
			expectedCode: http.StatusOK,
			expectNext:   true,
		},
		{
			name:         "Missing Cookie",
			cookie:       nil,
			prepareMock:  func() {},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "Empty Cookie Value",
			cookie:       &http.Cookie{Name: SessionCookieName, Value: ""},
			prepareMock:  func() {},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:   "Invalid Token",
			cookie: &http.Cookie{Name: SessionCookieName, Value: "bad-token"},
			prepareMock: func() {
				sessions.EXPECT().Validate(gomock.Any(), "bad-token").Return(0, errors.New("session expired"))
			},
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			var nextCalled bool
			var gotUserID int
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				gotUserID, _ = r.Context().Value(UserIDKey).(int)
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/accounts", nil)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}
			rr := httptest.NewRecorder()

			SessionMiddleware(sessions)(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, tt.expectNext, nextCalled)
			if tt.expectNext {
				assert.Equal(t, 42, gotUserID)
			}
		})
	}
}
