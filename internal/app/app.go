// Package app wires repositories, services and handlers into a gin engine.
package app

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"hbnb/internal/config"
	"hbnb/internal/middleware"
	"hbnb/internal/modules/amenity"
	"hbnb/internal/modules/auth"
	"hbnb/internal/modules/feed"
	"hbnb/internal/modules/place"
	"hbnb/internal/modules/review"
	"hbnb/internal/modules/user"
	"hbnb/internal/pkg/jwt"
	"hbnb/internal/pkg/password"
	"hbnb/internal/repository"
)

type App struct {
	Router *gin.Engine
	Feed   *feed.Hub
	Users  *user.Service

	cfg *config.Config
}

func New(cfg *config.Config, db *gorm.DB) *App {
	userRepo := repository.NewUserRepository(db)
	placeRepo := repository.NewPlaceRepository(db)
	amenityRepo := repository.NewAmenityRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	tokens := jwt.New(cfg.JWTSecret, cfg.JWTAccessTTL)
	hasher := password.NewHasher(cfg.BcryptCost)
	hub := feed.NewHub()

	userService := user.NewService(userRepo, hasher)
	authService := auth.NewService(userRepo, hasher, tokens, cfg.JWTAccessTTL)
	amenityService := amenity.NewService(amenityRepo)
	placeService := place.NewService(placeRepo, userRepo, amenityRepo)
	reviewService := review.NewService(reviewRepo, placeRepo, userRepo, hub)

	if cfg.IsProdLike() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")
	protected := v1.Group("")
	protected.Use(middleware.JWTAuth(tokens))

	auth.NewHandler(authService).RegisterRoutes(v1, protected)
	user.NewHandler(userService).RegisterRoutes(v1, protected)
	amenity.NewHandler(amenityService).RegisterRoutes(v1, protected)
	place.NewHandler(placeService).RegisterRoutes(v1, protected)
	review.NewHandler(reviewService).RegisterRoutes(v1, protected)
	feed.NewHandler(hub, placeRepo).RegisterRoutes(r)

	return &App{Router: r, Feed: hub, Users: userService, cfg: cfg}
}

// Bootstrap creates the configured administrator if it does not exist yet.
func (a *App) Bootstrap(ctx context.Context) error {
	if a.cfg.AdminEmail == "" {
		return nil
	}

	u, created, err := a.Users.EnsureAdmin(ctx, user.CreateUserRequest{
		FirstName: a.cfg.AdminFirstName,
		LastName:  a.cfg.AdminLastName,
		Email:     a.cfg.AdminEmail,
		Password:  a.cfg.AdminPassword,
	})
	if err != nil {
		return err
	}
	if created {
		log.Info().Str("user_id", u.ID).Str("email", u.Email).Msg("admin user created")
	}
	return nil
}
