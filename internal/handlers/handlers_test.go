package handlers

import (
	"fmt"
	"io"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/sergey-xx/Blogicum/internal/middleware"
	"github.com/sergey-xx/Blogicum/internal/models"
	"github.com/sergey-xx/Blogicum/internal/repositories/memory"
	"github.com/stretchr/testify/require"
)

// stubRenderer stands in for the template collaborator: deterministic
// bytes derived from the template name and its data.
type stubRenderer struct{}

func (stubRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	_, err := fmt.Fprintf(w, "%s %+v\n", name, data)
	return err
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Renderer = stubRenderer{}
	return e
}

func newRequestContext(e *echo.Echo, method, target string, form url.Values) (echo.Context, *httptest.ResponseRecorder) {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func asUser(c echo.Context, user *models.User) {
	c.Set(middleware.UserContextKey, user)
}

func seedUser(t *testing.T, store *memory.Store, username string) *models.User {
	t.Helper()
	user := &models.User{Username: username, Email: username + "@example.com"}
	require.NoError(t, store.Users().Create(user))
	return user
}

func seedPost(t *testing.T, store *memory.Store, author *models.User, text string) *models.Post {
	t.Helper()
	post := &models.Post{Text: text, AuthorID: author.ID}
	require.NoError(t, store.Posts().Create(post))
	return post
}

// postParam renders a post's ID the way it appears in a request path.
// IDs are assigned by the store, so tests must never hardcode them.
func postParam(post *models.Post) string {
	return strconv.FormatUint(uint64(post.ID), 10)
}
