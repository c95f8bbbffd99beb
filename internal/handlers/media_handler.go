package handlers

import (
	"bytes"
	"mime"
	"net/http"
	"path"

	"github.com/labstack/echo/v4"
	"github.com/sergey-xx/Blogicum/pkg/storage"
)

// MediaHandler streams uploaded images back out of the storage backend
type MediaHandler struct {
	store storage.Storage
}

// NewMediaHandler creates a new MediaHandler
func NewMediaHandler(store storage.Storage) *MediaHandler {
	return &MediaHandler{store: store}
}

// RegisterMediaRoutes registers the media route
func (h *MediaHandler) RegisterMediaRoutes(e *echo.Echo) {
	e.GET("/media/*", h.Serve)
}

func (h *MediaHandler) Serve(c echo.Context) error {
	name := c.Param("*")

	var buf bytes.Buffer
	if _, err := h.store.Load(name, &buf); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "File not found")
	}

	contentType := mime.TypeByExtension(path.Ext(name))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return c.Blob(http.StatusOK, contentType, buf.Bytes())
}
