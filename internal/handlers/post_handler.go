package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"path"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/sergey-xx/Blogicum/internal/middleware"
	"github.com/sergey-xx/Blogicum/internal/models"
	"github.com/sergey-xx/Blogicum/internal/repositories"
	"github.com/sergey-xx/Blogicum/pkg/storage"
)

// PostHandler serves post creation, detail and editing
type PostHandler struct {
	postRepository    repositories.PostRepository
	groupRepository   repositories.GroupRepository
	commentRepository repositories.CommentRepository
	likeRepository    repositories.LikeRepository
	store             storage.Storage
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postRepo repositories.PostRepository, groupRepo repositories.GroupRepository, commentRepo repositories.CommentRepository, likeRepo repositories.LikeRepository, store storage.Storage) *PostHandler {
	return &PostHandler{
		postRepository:    postRepo,
		groupRepository:   groupRepo,
		commentRepository: commentRepo,
		likeRepository:    likeRepo,
		store:             store,
	}
}

// RegisterPostRoutes registers the post routes
func (h *PostHandler) RegisterPostRoutes(e *echo.Echo, requireUser echo.MiddlewareFunc) {
	e.GET("/create/", h.CreateForm, requireUser)
	e.POST("/create/", h.Create, requireUser)
	e.GET("/posts/:id/", h.Detail)
	e.GET("/posts/:id/edit/", h.EditForm, requireUser)
	e.POST("/posts/:id/edit/", h.Edit, requireUser)
}

// CreateForm renders an empty new-post form
func (h *PostHandler) CreateForm(c echo.Context) error {
	groups, err := h.groupRepository.List()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.Render(http.StatusOK, "post_create_form.html", echo.Map{
		"Form":   models.PostForm{},
		"Errors": map[string]string{},
		"Groups": groups,
	})
}

// Create persists a new post authored by the actor. A failed validation
// re-renders the form with field errors instead of redirecting.
func (h *PostHandler) Create(c echo.Context) error {
	actor := middleware.CurrentUser(c)

	form, fieldErrors := h.bindPostForm(c)
	imagePath, imageErr := h.saveImage(c)
	if imageErr != nil {
		fieldErrors["image"] = imageErr.Error()
	}
	if len(fieldErrors) > 0 {
		groups, err := h.groupRepository.List()
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		return c.Render(http.StatusOK, "post_create_form.html", echo.Map{
			"Form":   form,
			"Errors": fieldErrors,
			"Groups": groups,
		})
	}

	post := &models.Post{
		Text:     form.Text,
		AuthorID: actor.ID,
		Image:    imagePath,
	}
	if form.GroupID != 0 {
		groupID := form.GroupID
		post.GroupID = &groupID
	}
	if err := h.postRepository.Create(post); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.Redirect(http.StatusFound, "/profile/"+actor.Username+"/")
}

// Detail renders a post with its comments and the author's post count
func (h *PostHandler) Detail(c echo.Context) error {
	post, err := h.lookupPost(c)
	if err != nil {
		return err
	}

	postAmount, err := h.postRepository.CountByAuthor(post.AuthorID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	comments, err := h.commentRepository.ListByPost(post.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	likeCount, err := h.likeRepository.CountByPost(post.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	liked := false
	if actor := middleware.CurrentUser(c); actor != nil {
		liked, err = h.likeRepository.HasLiked(actor.ID, post.ID)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.Render(http.StatusOK, "post_detail.html", echo.Map{
		"Post":       post,
		"PostAmount": postAmount,
		"Comments":   comments,
		"LikeCount":  likeCount,
		"Liked":      liked,
	})
}

// EditForm renders the edit form, or silently bounces a non-owner back
// to the read-only detail view
func (h *PostHandler) EditForm(c echo.Context) error {
	actor := middleware.CurrentUser(c)

	post, err := h.lookupPost(c)
	if err != nil {
		return err
	}
	if post.AuthorID != actor.ID {
		return c.Redirect(http.StatusFound, postDetailPath(post.ID))
	}

	groups, err := h.groupRepository.List()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	form := models.PostForm{Text: post.Text}
	if post.GroupID != nil {
		form.GroupID = *post.GroupID
	}
	return c.Render(http.StatusOK, "post_create_form.html", echo.Map{
		"Form":   form,
		"Errors": map[string]string{},
		"Groups": groups,
		"IsEdit": true,
		"Post":   post,
	})
}

// Edit updates the post's text, group and image. Only the owner may
// edit; anyone else is redirected to the detail view with no error.
func (h *PostHandler) Edit(c echo.Context) error {
	actor := middleware.CurrentUser(c)

	post, err := h.lookupPost(c)
	if err != nil {
		return err
	}
	if post.AuthorID != actor.ID {
		return c.Redirect(http.StatusFound, postDetailPath(post.ID))
	}

	form, fieldErrors := h.bindPostForm(c)
	imagePath, imageErr := h.saveImage(c)
	if imageErr != nil {
		fieldErrors["image"] = imageErr.Error()
	}
	if len(fieldErrors) > 0 {
		groups, err := h.groupRepository.List()
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		return c.Render(http.StatusOK, "post_create_form.html", echo.Map{
			"Form":   form,
			"Errors": fieldErrors,
			"Groups": groups,
			"IsEdit": true,
			"Post":   post,
		})
	}

	post.Text = form.Text
	post.GroupID = nil
	if form.GroupID != 0 {
		groupID := form.GroupID
		post.GroupID = &groupID
	}
	if imagePath != "" {
		post.Image = imagePath
	}
	if err := h.postRepository.Update(post); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.Redirect(http.StatusFound, postDetailPath(post.ID))
}

// bindPostForm binds and validates the post form. A group ID that
// matches no group is invalid input, not a server fault.
func (h *PostHandler) bindPostForm(c echo.Context) (models.PostForm, map[string]string) {
	var form models.PostForm
	if err := c.Bind(&form); err != nil {
		return form, map[string]string{"text": "Invalid form submission."}
	}
	fieldErrors := map[string]string{}
	if err := validate.Struct(form); err != nil {
		fieldErrors = formErrors(err)
	}
	if form.GroupID != 0 {
		if _, err := h.groupRepository.GetByID(form.GroupID); err != nil {
			fieldErrors["group"] = "Select a valid group."
		}
	}
	return form, fieldErrors
}

// saveImage stores an attached image and returns its path. No attached
// file is not an error; an unsupported extension is.
func (h *PostHandler) saveImage(c echo.Context) (string, error) {
	file, err := c.FormFile("image")
	if err != nil {
		return "", nil
	}

	switch strings.ToLower(path.Ext(file.Filename)) {
	case ".gif", ".jpg", ".jpeg", ".png":
	default:
		return "", fmt.Errorf("unsupported image type %q", path.Ext(file.Filename))
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	name := storage.ImagePath(file.Filename)
	if _, err := h.store.Save(name, src); err != nil {
		return "", err
	}
	return name, nil
}

func (h *PostHandler) lookupPost(c echo.Context) (*models.Post, error) {
	id, err := parseID(c, "id")
	if err != nil {
		return nil, err
	}
	post, err := h.postRepository.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return nil, echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return post, nil
}

func postDetailPath(id uint) string {
	return "/posts/" + strconv.FormatUint(uint64(id), 10) + "/"
}
