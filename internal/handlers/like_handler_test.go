package handlers

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/sergey-xx/Blogicum/internal/repositories/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLikeIsIdempotent(t *testing.T) {
	store := memory.NewStore()
	author := seedUser(t, store, "leo")
	reader := seedUser(t, store, "reader")
	post := seedPost(t, store, author, "likeable")
	h := NewLikeHandler(store.Likes(), store.Posts())
	e := newEcho()

	for i := 0; i < 2; i++ {
		c, rec := newRequestContext(e, http.MethodPost, "/posts/"+postParam(post)+"/like/", nil)
		c.SetPath("/posts/:id/like/")
		c.SetParamNames("id")
		c.SetParamValues(postParam(post))
		asUser(c, reader)
		require.NoError(t, h.Like(c))
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, postDetailPath(post.ID), rec.Header().Get("Location"))
	}

	count, err := store.Likes().CountByPost(post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestUnlikeWithoutLikeIsSilent(t *testing.T) {
	store := memory.NewStore()
	author := seedUser(t, store, "leo")
	reader := seedUser(t, store, "reader")
	post := seedPost(t, store, author, "never liked")
	h := NewLikeHandler(store.Likes(), store.Posts())
	e := newEcho()

	c, rec := newRequestContext(e, http.MethodPost, "/posts/"+postParam(post)+"/unlike/", nil)
	c.SetPath("/posts/:id/unlike/")
	c.SetParamNames("id")
	c.SetParamValues(postParam(post))
	asUser(c, reader)
	require.NoError(t, h.Unlike(c))

	assert.Equal(t, http.StatusFound, rec.Code)
	count, err := store.Likes().CountByPost(post.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestLikeMissingPostIs404(t *testing.T) {
	store := memory.NewStore()
	reader := seedUser(t, store, "reader")
	h := NewLikeHandler(store.Likes(), store.Posts())
	e := newEcho()

	c, _ := newRequestContext(e, http.MethodPost, "/posts/77/like/", nil)
	c.SetPath("/posts/:id/like/")
	c.SetParamNames("id")
	c.SetParamValues("77")
	asUser(c, reader)

	err := h.Like(c)
	require.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, httpErr.Code)
}
