package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/sergey-xx/Blogicum/internal/middleware"
	"github.com/sergey-xx/Blogicum/internal/models"
	"github.com/sergey-xx/Blogicum/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

const sessionLifetime = 7 * 24 * time.Hour

// AuthHandler serves signup, login and logout
type AuthHandler struct {
	userRepository repositories.UserRepository
	secret         string
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(userRepo repositories.UserRepository, secret string) *AuthHandler {
	return &AuthHandler{
		userRepository: userRepo,
		secret:         secret,
	}
}

// RegisterAuthRoutes registers the auth routes
func (h *AuthHandler) RegisterAuthRoutes(e *echo.Echo) {
	e.GET("/auth/signup/", h.SignupForm)
	e.POST("/auth/signup/", h.Signup)
	e.GET("/auth/login/", h.LoginForm)
	e.POST("/auth/login/", h.Login)
	e.POST("/auth/logout/", h.Logout)
}

// SignupForm renders an empty registration form
func (h *AuthHandler) SignupForm(c echo.Context) error {
	return c.Render(http.StatusOK, "signup.html", echo.Map{
		"Form":   models.SignupForm{},
		"Errors": map[string]string{},
	})
}

// Signup registers a local account and logs it in
func (h *AuthHandler) Signup(c echo.Context) error {
	var form models.SignupForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid form submission")
	}

	fieldErrors := map[string]string{}
	if err := validate.Struct(form); err != nil {
		fieldErrors = formErrors(err)
	}
	if fieldErrors["username"] == "" {
		if _, err := h.userRepository.GetByUsername(form.Username); err == nil {
			fieldErrors["username"] = "This username is already taken."
		}
	}
	if fieldErrors["email"] == "" {
		if _, err := h.userRepository.GetByEmail(form.Email); err == nil {
			fieldErrors["email"] = "This email is already registered."
		}
	}
	if len(fieldErrors) > 0 {
		return c.Render(http.StatusOK, "signup.html", echo.Map{
			"Form":   form,
			"Errors": fieldErrors,
		})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(form.Password), bcrypt.DefaultCost)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to hash password")
	}
	user := &models.User{
		Username: form.Username,
		Email:    form.Email,
		Password: string(hashed),
	}
	if err := h.userRepository.Create(user); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if err := h.startSession(c, user); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.Redirect(http.StatusFound, "/")
}

// LoginForm renders the login form, passing through the return path
func (h *AuthHandler) LoginForm(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", echo.Map{
		"Form":   models.LoginForm{Next: c.QueryParam("next")},
		"Errors": map[string]string{},
	})
}

// Login authenticates and sends the actor back where they came from
func (h *AuthHandler) Login(c echo.Context) error {
	var form models.LoginForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid form submission")
	}

	user, err := h.userRepository.GetByUsername(form.Username)
	if err != nil || bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(form.Password)) != nil {
		return c.Render(http.StatusOK, "login.html", echo.Map{
			"Form":   form,
			"Errors": map[string]string{"__all__": "Wrong username or password."},
		})
	}

	if err := h.startSession(c, user); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.Redirect(http.StatusFound, safeNext(form.Next))
}

// Logout clears the session cookie
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	return c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) startSession(c echo.Context, user *models.User) error {
	claims := &models.SessionClaims{
		UserID:   user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(sessionLifetime)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(h.secret))
	if err != nil {
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(sessionLifetime.Seconds()),
		HttpOnly: true,
	})
	return nil
}

// safeNext keeps the post-login redirect on this site: only rooted
// relative paths are honored.
func safeNext(next string) string {
	if strings.HasPrefix(next, "/") && !strings.HasPrefix(next, "//") {
		return next
	}
	return "/"
}
