package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RegisterAboutRoutes registers the static informational pages
func RegisterAboutRoutes(e *echo.Echo) {
	e.GET("/about/author/", AboutAuthor)
	e.GET("/about/tech/", AboutTech)
}

func AboutAuthor(c echo.Context) error {
	return c.Render(http.StatusOK, "about_author.html", nil)
}

func AboutTech(c echo.Context) error {
	return c.Render(http.StatusOK, "about_tech.html", nil)
}
