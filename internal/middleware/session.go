package middleware

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/sergey-xx/Blogicum/internal/models"
	"github.com/sergey-xx/Blogicum/internal/repositories"
)

const (
	// SessionCookie carries the signed session token.
	SessionCookie = "session"
	// UserContextKey is where the resolved actor lives on the echo context.
	UserContextKey = "user"
	// LoginPath is where gated actions send anonymous actors.
	LoginPath = "/auth/login/"
)

// Session resolves the current actor from the session cookie and stores
// it on the context. A missing, expired or malformed token simply leaves
// the request anonymous.
func Session(users repositories.UserRepository, secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookie)
			if err != nil || cookie.Value == "" {
				return next(c)
			}

			claims := &models.SessionClaims{}
			token, err := jwt.ParseWithClaims(cookie.Value, claims, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
				}
				return []byte(secret), nil
			})
			if err == nil && token.Valid {
				if user, err := users.GetByID(claims.UserID); err == nil {
					c.Set(UserContextKey, user)
				}
			}
			return next(c)
		}
	}
}

// RequireUser gates an action on authentication. Anonymous actors are
// redirected to the login page with the original path preserved so they
// come back after logging in.
func RequireUser() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if CurrentUser(c) == nil {
				target := LoginPath + "?next=" + url.QueryEscape(c.Request().URL.RequestURI())
				return c.Redirect(http.StatusFound, target)
			}
			return next(c)
		}
	}
}

// CurrentUser returns the authenticated actor, or nil for anonymous
// requests.
func CurrentUser(c echo.Context) *models.User {
	user, _ := c.Get(UserContextKey).(*models.User)
	return user
}
