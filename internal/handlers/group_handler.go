package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sergey-xx/Blogicum/internal/pagination"
	"github.com/sergey-xx/Blogicum/internal/repositories"
)

// GroupHandler serves per-group post listings
type GroupHandler struct {
	groupRepository repositories.GroupRepository
	postRepository  repositories.PostRepository
	perPage         int
}

// NewGroupHandler creates a new GroupHandler
func NewGroupHandler(groupRepo repositories.GroupRepository, postRepo repositories.PostRepository, perPage int) *GroupHandler {
	return &GroupHandler{
		groupRepository: groupRepo,
		postRepository:  postRepo,
		perPage:         perPage,
	}
}

// RegisterGroupRoutes registers the group routes
func (h *GroupHandler) RegisterGroupRoutes(e *echo.Echo) {
	e.GET("/group/:slug/", h.GroupPosts)
}

// GroupPosts renders the posts of the group identified by slug
func (h *GroupHandler) GroupPosts(c echo.Context) error {
	group, err := h.groupRepository.GetBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Group not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	posts, err := h.postRepository.ListByGroup(group.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	page := pagination.Paginate(posts, pagination.PageNumber(c.QueryParam("page")), h.perPage)
	return c.Render(http.StatusOK, "group_list.html", echo.Map{
		"Group": group,
		"Page":  page,
	})
}
