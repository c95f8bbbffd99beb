package router

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/sergey-xx/Blogicum/internal/feedcache"
	"github.com/sergey-xx/Blogicum/internal/handlers"
	"github.com/sergey-xx/Blogicum/internal/middleware"
	"github.com/sergey-xx/Blogicum/internal/models"
	"github.com/sergey-xx/Blogicum/internal/repositories"
	"github.com/sergey-xx/Blogicum/pkg/config"
	"github.com/sergey-xx/Blogicum/pkg/storage"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(echomw.Recover())
	e.Use(echomw.Logger())
}

// SetupRoutes migrates the schema, wires repositories into handlers and
// registers every route.
func SetupRoutes(e *echo.Echo, db *gorm.DB, cache feedcache.Cache, store storage.Storage, cfg *config.Config) {
	err := db.AutoMigrate(
		&models.User{},
		&models.Group{},
		&models.Post{},
		&models.Comment{},
		&models.Follow{},
		&models.Like{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}

	userRepo := repositories.NewGormUserRepository(db)
	groupRepo := repositories.NewGormGroupRepository(db)
	postRepo := repositories.NewGormPostRepository(db)
	commentRepo := repositories.NewGormCommentRepository(db)
	followRepo := repositories.NewGormFollowRepository(db)
	likeRepo := repositories.NewGormLikeRepository(db)

	e.Use(middleware.Session(userRepo, cfg.SecretKey))
	requireUser := middleware.RequireUser()

	feedHandler := handlers.NewFeedHandler(postRepo, followRepo, cache, cfg.PostsPerPage)
	feedHandler.RegisterFeedRoutes(e, requireUser)

	groupHandler := handlers.NewGroupHandler(groupRepo, postRepo, cfg.PostsPerPage)
	groupHandler.RegisterGroupRoutes(e)

	profileHandler := handlers.NewProfileHandler(userRepo, postRepo, followRepo, cfg.PostsPerPage)
	profileHandler.RegisterProfileRoutes(e, requireUser)

	postHandler := handlers.NewPostHandler(postRepo, groupRepo, commentRepo, likeRepo, store)
	postHandler.RegisterPostRoutes(e, requireUser)

	commentHandler := handlers.NewCommentHandler(commentRepo, postRepo)
	commentHandler.RegisterCommentRoutes(e, requireUser)

	likeHandler := handlers.NewLikeHandler(likeRepo, postRepo)
	likeHandler.RegisterLikeRoutes(e, requireUser)

	authHandler := handlers.NewAuthHandler(userRepo, cfg.SecretKey)
	authHandler.RegisterAuthRoutes(e)

	mediaHandler := handlers.NewMediaHandler(store)
	mediaHandler.RegisterMediaRoutes(e)

	handlers.RegisterAboutRoutes(e)

	e.HTTPErrorHandler = notFoundAwareErrorHandler(e)
}

// notFoundAwareErrorHandler renders the custom 404 page for missing
// entities and unmatched paths, delegating everything else.
func notFoundAwareErrorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if he, ok := err.(*echo.HTTPError); ok && he.Code == http.StatusNotFound && !c.Response().Committed {
			if renderErr := c.Render(http.StatusNotFound, "404.html", echo.Map{"Path": c.Request().URL.Path}); renderErr == nil {
				return
			}
		}
		e.DefaultHTTPErrorHandler(err, c)
	}
}
