package handlers

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/sergey-xx/Blogicum/internal/models"
	"github.com/sergey-xx/Blogicum/internal/repositories/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupPostsListsOnlyGroupPosts(t *testing.T) {
	store := memory.NewStore()
	author := seedUser(t, store, "leo")
	group := &models.Group{Title: "Cats", Slug: "cats", Description: "about cats"}
	require.NoError(t, store.Groups().Create(group))

	inGroup := &models.Post{Text: "a cat post", AuthorID: author.ID, GroupID: &group.ID}
	require.NoError(t, store.Posts().Create(inGroup))
	seedPost(t, store, author, "an ungrouped post")

	h := NewGroupHandler(store.Groups(), store.Posts(), 10)
	e := newEcho()

	c, rec := newRequestContext(e, http.MethodGet, "/group/cats/", nil)
	c.SetPath("/group/:slug/")
	c.SetParamNames("slug")
	c.SetParamValues("cats")
	require.NoError(t, h.GroupPosts(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "group_list.html")
	assert.Contains(t, rec.Body.String(), "a cat post")
	assert.NotContains(t, rec.Body.String(), "an ungrouped post")
}

func TestGroupPostsUnknownSlugIs404(t *testing.T) {
	store := memory.NewStore()
	h := NewGroupHandler(store.Groups(), store.Posts(), 10)
	e := newEcho()

	c, _ := newRequestContext(e, http.MethodGet, "/group/missing/", nil)
	c.SetPath("/group/:slug/")
	c.SetParamNames("slug")
	c.SetParamValues("missing")

	err := h.GroupPosts(c)
	require.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, httpErr.Code)
}
