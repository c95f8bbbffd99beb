package handlers

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/sergey-xx/Blogicum/internal/repositories/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProfileHandler(store *memory.Store) *ProfileHandler {
	return NewProfileHandler(store.Users(), store.Posts(), store.Follows(), 10)
}

func TestProfileShowsFollowingFlag(t *testing.T) {
	store := memory.NewStore()
	author := seedUser(t, store, "leo")
	reader := seedUser(t, store, "reader")
	seedPost(t, store, author, "first")
	require.NoError(t, store.Follows().GetOrCreate(reader.ID, author.ID))
	h := newProfileHandler(store)
	e := newEcho()

	c, rec := newRequestContext(e, http.MethodGet, "/profile/leo/", nil)
	c.SetPath("/profile/:username/")
	c.SetParamNames("username")
	c.SetParamValues("leo")
	asUser(c, reader)
	require.NoError(t, h.Profile(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "profile.html")
	assert.Contains(t, rec.Body.String(), "Following:true")
	assert.Contains(t, rec.Body.String(), "PostAmount:1")
}

func TestProfileUnknownUserIs404(t *testing.T) {
	store := memory.NewStore()
	h := newProfileHandler(store)
	e := newEcho()

	c, _ := newRequestContext(e, http.MethodGet, "/profile/nobody/", nil)
	c.SetPath("/profile/:username/")
	c.SetParamNames("username")
	c.SetParamValues("nobody")

	err := h.Profile(c)
	require.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, httpErr.Code)
}

func TestFollowIsIdempotent(t *testing.T) {
	store := memory.NewStore()
	author := seedUser(t, store, "leo")
	reader := seedUser(t, store, "reader")
	h := newProfileHandler(store)
	e := newEcho()

	for i := 0; i < 2; i++ {
		c, rec := newRequestContext(e, http.MethodPost, "/profile/leo/follow/", nil)
		c.SetPath("/profile/:username/follow/")
		c.SetParamNames("username")
		c.SetParamValues("leo")
		asUser(c, reader)
		require.NoError(t, h.Follow(c))
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/profile/leo/", rec.Header().Get("Location"))
	}

	authorIDs, err := store.Follows().AuthorIDs(reader.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{author.ID}, authorIDs, "repeating the follow must not add a row")
}

func TestFollowYourselfIsNoOp(t *testing.T) {
	store := memory.NewStore()
	author := seedUser(t, store, "leo")
	h := newProfileHandler(store)
	e := newEcho()

	c, rec := newRequestContext(e, http.MethodPost, "/profile/leo/follow/", nil)
	c.SetPath("/profile/:username/follow/")
	c.SetParamNames("username")
	c.SetParamValues("leo")
	asUser(c, author)
	require.NoError(t, h.Follow(c))

	assert.Equal(t, http.StatusFound, rec.Code)
	authorIDs, err := store.Follows().AuthorIDs(author.ID)
	require.NoError(t, err)
	assert.Empty(t, authorIDs)
}

func TestUnfollowWithoutFollowingIs404(t *testing.T) {
	store := memory.NewStore()
	seedUser(t, store, "leo")
	reader := seedUser(t, store, "reader")
	h := newProfileHandler(store)
	e := newEcho()

	c, _ := newRequestContext(e, http.MethodPost, "/profile/leo/unfollow/", nil)
	c.SetPath("/profile/:username/unfollow/")
	c.SetParamNames("username")
	c.SetParamValues("leo")
	asUser(c, reader)

	err := h.Unfollow(c)
	require.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, httpErr.Code)
}

func TestUnfollowRemovesSubscription(t *testing.T) {
	store := memory.NewStore()
	author := seedUser(t, store, "leo")
	reader := seedUser(t, store, "reader")
	require.NoError(t, store.Follows().GetOrCreate(reader.ID, author.ID))
	h := newProfileHandler(store)
	e := newEcho()

	c, rec := newRequestContext(e, http.MethodPost, "/profile/leo/unfollow/", nil)
	c.SetPath("/profile/:username/unfollow/")
	c.SetParamNames("username")
	c.SetParamValues("leo")
	asUser(c, reader)
	require.NoError(t, h.Unfollow(c))

	assert.Equal(t, http.StatusFound, rec.Code)
	following, err := store.Follows().IsFollowing(reader.ID, author.ID)
	require.NoError(t, err)
	assert.False(t, following)
}
