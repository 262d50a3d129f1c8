package auth

import (
	"net/http"
	"time"
)

const SessionCookieName = "session_token"

// NewSessionCookie builds the session cookie. HttpOnly and SameSite=Strict
// keep the token away from scripts and cross-site requests.
func NewSessionCookie(token string, ttl time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	}
}

// ExpiredSessionCookie overwrites the session cookie with an immediately
// expiring one.
func ExpiredSessionCookie() *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	}
}
