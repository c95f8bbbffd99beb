package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sergey-xx/Blogicum/internal/middleware"
	"github.com/sergey-xx/Blogicum/internal/models"
	"github.com/sergey-xx/Blogicum/internal/repositories"
)

// CommentHandler serves the add-comment action
type CommentHandler struct {
	commentRepository repositories.CommentRepository
	postRepository    repositories.PostRepository
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(commentRepo repositories.CommentRepository, postRepo repositories.PostRepository) *CommentHandler {
	return &CommentHandler{
		commentRepository: commentRepo,
		postRepository:    postRepo,
	}
}

// RegisterCommentRoutes registers the comment routes
func (h *CommentHandler) RegisterCommentRoutes(e *echo.Echo, requireUser echo.MiddlewareFunc) {
	e.POST("/posts/:id/comment/", h.AddComment, requireUser)
}

// AddComment attaches a comment to the post. An invalid submission
// redirects back to the detail page without persisting anything and
// without reporting the error; only the post lookup can fail loudly.
func (h *CommentHandler) AddComment(c echo.Context) error {
	actor := middleware.CurrentUser(c)

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if _, err := h.postRepository.GetByID(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	var form models.CommentForm
	if err := c.Bind(&form); err != nil {
		return c.Redirect(http.StatusFound, postDetailPath(id))
	}
	if err := validate.Struct(form); err != nil {
		return c.Redirect(http.StatusFound, postDetailPath(id))
	}

	comment := &models.Comment{
		PostID:   id,
		AuthorID: actor.ID,
		Text:     form.Text,
	}
	if err := h.commentRepository.Create(comment); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.Redirect(http.StatusFound, postDetailPath(id))
}
