package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sergey-xx/Blogicum/internal/middleware"
	"github.com/sergey-xx/Blogicum/internal/repositories"
)

// LikeHandler serves the like/unlike toggle on a post
type LikeHandler struct {
	likeRepository repositories.LikeRepository
	postRepository repositories.PostRepository
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(likeRepo repositories.LikeRepository, postRepo repositories.PostRepository) *LikeHandler {
	return &LikeHandler{
		likeRepository: likeRepo,
		postRepository: postRepo,
	}
}

// RegisterLikeRoutes registers the like routes
func (h *LikeHandler) RegisterLikeRoutes(e *echo.Echo, requireUser echo.MiddlewareFunc) {
	e.POST("/posts/:id/like/", h.Like, requireUser)
	e.POST("/posts/:id/unlike/", h.Unlike, requireUser)
}

// Like marks the post as liked by the actor. Liking twice changes
// nothing: the row is created at most once.
func (h *LikeHandler) Like(c echo.Context) error {
	actor := middleware.CurrentUser(c)

	id, err := h.lookupPostID(c)
	if err != nil {
		return err
	}
	if err := h.likeRepository.GetOrCreate(actor.ID, id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.Redirect(http.StatusFound, postDetailPath(id))
}

// Unlike removes the actor's like. Unliking a post that was never liked
// is a no-op; likes are a toggle, not a tracked subscription.
func (h *LikeHandler) Unlike(c echo.Context) error {
	actor := middleware.CurrentUser(c)

	id, err := h.lookupPostID(c)
	if err != nil {
		return err
	}
	if err := h.likeRepository.Delete(actor.ID, id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.Redirect(http.StatusFound, postDetailPath(id))
}

func (h *LikeHandler) lookupPostID(c echo.Context) (uint, error) {
	id, err := parseID(c, "id")
	if err != nil {
		return 0, err
	}
	if _, err := h.postRepository.GetByID(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return 0, echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return 0, echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return id, nil
}
