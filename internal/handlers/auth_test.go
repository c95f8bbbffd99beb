package handlers

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/sergey-xx/Blogicum/internal/middleware"
	"github.com/sergey-xx/Blogicum/internal/models"
	"github.com/sergey-xx/Blogicum/internal/repositories/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func seedUserWithPassword(t *testing.T, store *memory.Store, username, password string) *models.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: string(hashed),
	}
	require.NoError(t, store.Users().Create(user))
	return user
}

func sessionCookie(rec interface{ Header() http.Header }) *http.Cookie {
	parsed := (&http.Response{Header: rec.Header()}).Cookies()
	for _, cookie := range parsed {
		if cookie.Name == middleware.SessionCookie {
			return cookie
		}
	}
	return nil
}

func TestSignupCreatesUserAndLogsIn(t *testing.T) {
	store := memory.NewStore()
	h := NewAuthHandler(store.Users(), "test-secret")
	e := newEcho()

	c, rec := newRequestContext(e, http.MethodPost, "/auth/signup/", url.Values{
		"username": {"leo"},
		"email":    {"leo@example.com"},
		"password": {"war-and-peace"},
	})
	require.NoError(t, h.Signup(c))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))

	user, err := store.Users().GetByUsername("leo")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("war-and-peace")),
		"the stored password must be a bcrypt hash of the submitted one")

	cookie := sessionCookie(rec)
	require.NotNil(t, cookie, "signup must start a session")
	assert.NotEmpty(t, cookie.Value)
}

func TestSignupTakenUsernameRerendersForm(t *testing.T) {
	store := memory.NewStore()
	seedUser(t, store, "leo")
	h := NewAuthHandler(store.Users(), "test-secret")
	e := newEcho()

	c, rec := newRequestContext(e, http.MethodPost, "/auth/signup/", url.Values{
		"username": {"leo"},
		"email":    {"other@example.com"},
		"password": {"whatever"},
	})
	require.NoError(t, h.Signup(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "signup.html")
	assert.Contains(t, rec.Body.String(), "This username is already taken.")
	assert.Nil(t, sessionCookie(rec))
}

func TestLoginWrongPasswordRerendersForm(t *testing.T) {
	store := memory.NewStore()
	seedUserWithPassword(t, store, "leo", "right")
	h := NewAuthHandler(store.Users(), "test-secret")
	e := newEcho()

	c, rec := newRequestContext(e, http.MethodPost, "/auth/login/", url.Values{
		"username": {"leo"},
		"password": {"wrong"},
	})
	require.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "login.html")
	assert.Contains(t, rec.Body.String(), "Wrong username or password.")
	assert.Nil(t, sessionCookie(rec))
}

func TestLoginHonorsNextPath(t *testing.T) {
	store := memory.NewStore()
	seedUserWithPassword(t, store, "leo", "right")
	h := NewAuthHandler(store.Users(), "test-secret")
	e := newEcho()

	c, rec := newRequestContext(e, http.MethodPost, "/auth/login/", url.Values{
		"username": {"leo"},
		"password": {"right"},
		"next":     {"/create/"},
	})
	require.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/create/", rec.Header().Get("Location"))
	assert.NotNil(t, sessionCookie(rec))
}

func TestSafeNext(t *testing.T) {
	assert.Equal(t, "/create/", safeNext("/create/"))
	assert.Equal(t, "/", safeNext(""))
	assert.Equal(t, "/", safeNext("https://evil.example"))
	assert.Equal(t, "/", safeNext("//evil.example"))
}

func TestLogoutExpiresCookie(t *testing.T) {
	store := memory.NewStore()
	h := NewAuthHandler(store.Users(), "test-secret")
	e := newEcho()

	c, rec := newRequestContext(e, http.MethodPost, "/auth/logout/", nil)
	require.NoError(t, h.Logout(c))

	assert.Equal(t, http.StatusFound, rec.Code)
	cookie := sessionCookie(rec)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}
