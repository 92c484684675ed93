package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/Richard-klement/va-squash-constantia/internal/auth"
	"github.com/Richard-klement/va-squash-constantia/internal/booking"
	"github.com/Richard-klement/va-squash-constantia/internal/cache"
	"github.com/Richard-klement/va-squash-constantia/internal/config"
	"github.com/Richard-klement/va-squash-constantia/internal/court"
	"github.com/Richard-klement/va-squash-constantia/internal/schedule"
	"github.com/Richard-klement/va-squash-constantia/internal/user"
)

type Server struct {
	router *gin.Engine
	http   *http.Server
	db     *sqlx.DB
	config *config.Config
}

func New(db *sqlx.DB, cfg *config.Config, c *cache.Cache) (*Server, error) {
	grid, err := court.NewSlotGrid(cfg.OpenTime, cfg.CloseTime, cfg.SlotMinutes)
	if err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(corsMiddleware())
	router.Use(RateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst))

	userHandler := user.NewHandler(db, cfg.JWTSecret)
	courtHandler := court.NewHandler(db, grid)
	scheduleHandler := schedule.NewHandler(db, grid)
	bookingHandler := booking.NewHandler(db, grid, c)

	authRoutes := router.Group("/auth")
	{
		authRoutes.POST("/register", userHandler.Register)
		authRoutes.POST("/login", userHandler.Login)
		authRoutes.POST("/refresh", userHandler.RefreshToken)
	}

	// Read endpoints are open so the calendar renders for visitors;
	// a valid token only adds the caller's identity to the payload.
	optionalAuth := auth.OptionalAuthMiddleware(cfg.JWTSecret)
	public := router.Group("/")
	public.Use(optionalAuth)
	{
		public.GET("/bookings", bookingHandler.ListByDate)
		public.GET("/schedule", scheduleHandler.GetGrid)
		public.GET("/schedule/month", scheduleHandler.GetMonth)
		public.GET("/courts", courtHandler.ListCourts)
		public.GET("/slots", courtHandler.ListSlots)
	}

	authMiddleware := auth.AuthMiddleware(cfg.JWTSecret)
	protected := router.Group("/")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", userHandler.GetMe)
		protected.POST("/bookings", bookingHandler.Create)
		protected.DELETE("/bookings/:bookingID", bookingHandler.Delete)
	}

	admin := router.Group("/admin")
	admin.Use(authMiddleware, auth.RequireRole("admin"))
	{
		admin.GET("/analytics/bookings", bookingHandler.GetAnalytics)
	}

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())
	SetupSwagger(router)

	return &Server{
		router: router,
		db:     db,
		config: cfg,
	}, nil
}

func (s *Server) Start(port string) error {
	s.http = &http.Server{
		Addr:              ":" + port,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s.http.ListenAndServe()
}

// Shutdown drains in-flight requests before the process exits.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

// Router exposes the gin engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
