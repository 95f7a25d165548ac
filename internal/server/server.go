package server

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/karbhat74/Aikyam/internal/config"
	"github.com/karbhat74/Aikyam/internal/handler"
	appmw "github.com/karbhat74/Aikyam/internal/middleware"
	"github.com/karbhat74/Aikyam/internal/repository"
	"github.com/karbhat74/Aikyam/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"
)

type Server struct {
	e *echo.Echo
}

func New(db *gorm.DB, cfg *config.Config) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		AllowOriginFunc: func(origin string) (bool, error) {
			return originAllowed(origin, cfg.AllowedOrigins), nil
		},
	}))

	userRepo := repository.NewUserRepository(db)
	tripRepo := repository.NewTripRepository(db)
	pointRepo := repository.NewUserPointRepository(db)
	claimRepo := repository.NewRewardClaimRepository(db)

	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret)
	tripSvc := service.NewTripService(tripRepo, pointRepo)
	rewardSvc := service.NewRewardService(tripRepo, claimRepo)

	authHandler := handler.NewAuthHandler(authSvc, userRepo)
	tripHandler := handler.NewTripHandler(tripSvc)
	rewardHandler := handler.NewRewardHandler(rewardSvc)
	ecoHandler := handler.NewEcoHandler()

	authMw := appmw.NewAuthMiddleware(authSvc)

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"ok": "true"})
	})

	// Original auth surface, same paths and response shapes as before.
	e.POST("/signup", authHandler.Signup)
	e.POST("/login", authHandler.Login)
	e.GET("/dashboard", authHandler.Dashboard, authMw.RequireAuth)

	api := e.Group("/api")
	api.POST("/trips", tripHandler.Log, authMw.RequireAuth)
	api.GET("/trips", tripHandler.List, authMw.RequireAuth)
	api.GET("/summary", tripHandler.Summary, authMw.RequireAuth)
	api.GET("/rewards", rewardHandler.List, authMw.RequireAuth)
	api.POST("/rewards/:id/claim", rewardHandler.Claim, authMw.RequireAuth)
	// Static reference tables need no identity.
	api.GET("/badges", ecoHandler.Badges)
	api.GET("/tips", ecoHandler.Tips)

	return &Server{e: e}
}

func (s *Server) Start(addr string) error {
	return s.e.Start(addr)
}

// originAllowed accepts local development hosts on any port plus the
// exact origins listed in CORS_ALLOWED_ORIGINS.
func originAllowed(origin string, allowed []string) bool {
	low := strings.ToLower(origin)
	u, err := url.Parse(low)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return false
	}
	host := u.Hostname()
	if host == "localhost" || host == "127.0.0.1" {
		return true
	}
	for _, a := range allowed {
		if low == strings.ToLower(strings.TrimSpace(a)) {
			return true
		}
	}
	return false
}
