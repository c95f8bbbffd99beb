package handlers

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sergey-xx/Blogicum/internal/feedcache"
	"github.com/sergey-xx/Blogicum/internal/middleware"
	"github.com/sergey-xx/Blogicum/internal/pagination"
	"github.com/sergey-xx/Blogicum/internal/repositories"
)

// FeedHandler serves the home feed and the followed-authors feed
type FeedHandler struct {
	postRepository   repositories.PostRepository
	followRepository repositories.FollowRepository
	cache            feedcache.Cache
	perPage          int
}

// NewFeedHandler creates a new FeedHandler
func NewFeedHandler(postRepo repositories.PostRepository, followRepo repositories.FollowRepository, cache feedcache.Cache, perPage int) *FeedHandler {
	return &FeedHandler{
		postRepository:   postRepo,
		followRepository: followRepo,
		cache:            cache,
		perPage:          perPage,
	}
}

// RegisterFeedRoutes registers the feed routes
func (h *FeedHandler) RegisterFeedRoutes(e *echo.Echo, requireUser echo.MiddlewareFunc) {
	e.GET("/", h.Index)
	e.GET("/follow/", h.FollowIndex, requireUser)
}

// Index renders the newest-first listing of all posts. Only the default
// view goes through the cache; an explicitly requested page is always
// rendered fresh. Within the cache window the stored bytes are served
// as-is even if posts changed in the meantime.
func (h *FeedHandler) Index(c echo.Context) error {
	pageNum := pagination.PageNumber(c.QueryParam("page"))
	if pageNum != 1 {
		body, err := h.renderIndex(c, pageNum)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		return c.HTMLBlob(http.StatusOK, body)
	}

	body, err := h.cache.GetOrFetch(c.Request().Context(), feedcache.HomeFeed,
		func(ctx context.Context) ([]byte, error) {
			return h.renderIndex(c, 1)
		})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.HTMLBlob(http.StatusOK, body)
}

func (h *FeedHandler) renderIndex(c echo.Context, pageNum int) ([]byte, error) {
	posts, err := h.postRepository.ListAll()
	if err != nil {
		return nil, err
	}
	page := pagination.Paginate(posts, pageNum, h.perPage)
	return renderBytes(c, "index.html", echo.Map{"Page": page})
}

// FollowIndex renders the posts of every author the actor follows
func (h *FeedHandler) FollowIndex(c echo.Context) error {
	actor := middleware.CurrentUser(c)

	authorIDs, err := h.followRepository.AuthorIDs(actor.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	posts, err := h.postRepository.ListByAuthors(authorIDs)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	page := pagination.Paginate(posts, pagination.PageNumber(c.QueryParam("page")), h.perPage)
	return c.Render(http.StatusOK, "follow.html", echo.Map{"Page": page})
}
