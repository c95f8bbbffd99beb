package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sergey-xx/Blogicum/internal/middleware"
	"github.com/sergey-xx/Blogicum/internal/models"
	"github.com/sergey-xx/Blogicum/internal/pagination"
	"github.com/sergey-xx/Blogicum/internal/repositories"
)

// ProfileHandler serves author profiles and the follow/unfollow actions
type ProfileHandler struct {
	userRepository   repositories.UserRepository
	postRepository   repositories.PostRepository
	followRepository repositories.FollowRepository
	perPage          int
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(userRepo repositories.UserRepository, postRepo repositories.PostRepository, followRepo repositories.FollowRepository, perPage int) *ProfileHandler {
	return &ProfileHandler{
		userRepository:   userRepo,
		postRepository:   postRepo,
		followRepository: followRepo,
		perPage:          perPage,
	}
}

// RegisterProfileRoutes registers the profile routes
func (h *ProfileHandler) RegisterProfileRoutes(e *echo.Echo, requireUser echo.MiddlewareFunc) {
	e.GET("/profile/:username/", h.Profile)
	e.POST("/profile/:username/follow/", h.Follow, requireUser)
	e.POST("/profile/:username/unfollow/", h.Unfollow, requireUser)
}

// Profile renders an author's page with their posts, total post count
// and whether the current actor follows them
func (h *ProfileHandler) Profile(c echo.Context) error {
	author, err := h.lookupAuthor(c)
	if err != nil {
		return err
	}

	posts, err := h.postRepository.ListByAuthor(author.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	following := false
	if actor := middleware.CurrentUser(c); actor != nil {
		following, err = h.followRepository.IsFollowing(actor.ID, author.ID)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	page := pagination.Paginate(posts, pagination.PageNumber(c.QueryParam("page")), h.perPage)
	return c.Render(http.StatusOK, "profile.html", echo.Map{
		"Author":     author,
		"Page":       page,
		"PostAmount": len(posts),
		"Following":  following,
	})
}

// Follow subscribes the actor to the author. A repeated follow changes
// nothing, and following yourself is a silent no-op.
func (h *ProfileHandler) Follow(c echo.Context) error {
	actor := middleware.CurrentUser(c)

	author, err := h.lookupAuthor(c)
	if err != nil {
		return err
	}

	if author.ID != actor.ID {
		if err := h.followRepository.GetOrCreate(actor.ID, author.ID); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}
	return c.Redirect(http.StatusFound, "/profile/"+author.Username+"/")
}

// Unfollow removes the actor's subscription. Unfollowing an author the
// actor never followed is a lookup of a missing row and surfaces as 404.
func (h *ProfileHandler) Unfollow(c echo.Context) error {
	actor := middleware.CurrentUser(c)

	author, err := h.lookupAuthor(c)
	if err != nil {
		return err
	}

	if err := h.followRepository.Delete(actor.ID, author.ID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Not following this author")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.Redirect(http.StatusFound, "/profile/"+author.Username+"/")
}

func (h *ProfileHandler) lookupAuthor(c echo.Context) (*models.User, error) {
	author, err := h.userRepository.GetByUsername(c.Param("username"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return nil, echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return author, nil
}
