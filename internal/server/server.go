package server

import (
	"context"
	"errors"
	nethttp "net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	apihttp "github.com/skystore/skystore/internal/api/http"
	"github.com/skystore/skystore/internal/api/middleware"
	"github.com/skystore/skystore/internal/infrastructure/archive"
	"github.com/skystore/skystore/internal/infrastructure/config"
	"github.com/skystore/skystore/internal/infrastructure/database"
	"github.com/skystore/skystore/internal/infrastructure/hash"
	"github.com/skystore/skystore/internal/infrastructure/logging"
	"github.com/skystore/skystore/internal/infrastructure/monitoring"
	"github.com/skystore/skystore/internal/infrastructure/objectstore"
	"github.com/skystore/skystore/internal/infrastructure/sessions"
)

// Server wraps the HTTP server and its backing services.
type Server struct {
	httpServer *nethttp.Server
	store      *database.Store
	sessions   *sessions.Redis
	logger     *logging.Logger
}

// NewServer connects every backing service and builds the router.
func NewServer(ctx context.Context, cfg *config.Config, logger *logging.Logger) (*Server, error) {
	store, err := database.NewPostgres(database.Config{DSN: cfg.Database.DSN}, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("connected to database")

	sessionStore, err := sessions.NewRedis(ctx, sessions.RedisConfig{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		TTL:      cfg.Session.TTL,
	}, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("connected to redis")

	minioStore, err := objectstore.NewMinio(ctx, objectstore.MinioConfig{
		Endpoint:  cfg.Minio.Endpoint,
		AccessKey: cfg.Minio.AccessKey,
		SecretKey: cfg.Minio.SecretKey,
		Bucket:    cfg.Minio.Bucket,
		UseSSL:    cfg.Minio.UseSSL,
	}, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("connected to object storage", zap.String("bucket", cfg.Minio.Bucket))

	metrics := monitoring.NewMetrics()
	storage := objectstore.NewResilient(minioStore, "minio", metrics, logger)
	handlers := apihttp.NewHandlers(
		store,
		sessionStore,
		storage,
		archive.NewZip(),
		hash.NewBcrypt(0),
		metrics,
		logger,
		apihttp.Config{
			CookieName: cfg.Session.CookieName,
			CookieTTL:  cfg.Session.TTL,
		},
	)

	router := newRouter(cfg, logger, metrics, handlers)

	return &Server{
		httpServer: &nethttp.Server{
			Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
		store:    store,
		sessions: sessionStore,
		logger:   logger,
	}, nil
}

func newRouter(cfg *config.Config, logger *logging.Logger, metrics *monitoring.Metrics, handlers *apihttp.Handlers) *gin.Engine {
	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logging(logger))
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	router.Use(monitoring.Middleware(metrics))
	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
		}))
	}

	router.GET("/health", handlers.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	api.POST("/sign-up", handlers.SignUp)
	api.POST("/sign-in", handlers.SignIn)
	api.POST("/sign-out", handlers.SignOut)

	authed := api.Group("")
	authed.Use(handlers.SessionAuth())
	authed.GET("/resource", handlers.GetResource)
	authed.POST("/resource", handlers.UploadFile)
	authed.DELETE("/resource", handlers.DeleteResource)
	authed.GET("/resource/download", handlers.DownloadResource)
	authed.POST("/resource/move", handlers.MoveResource)
	authed.GET("/resource/search", handlers.SearchResources)
	authed.GET("/directory", handlers.ListDirectory)
	authed.POST("/directory", handlers.CreateDirectory)

	return router
}

// Run starts the server and blocks until it stops.
func (s *Server) Run() error {
	s.logger.Info("starting server", zap.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and closes backing connections.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}
	if err := s.sessions.Close(); err != nil {
		s.logger.Warn("closing redis", zap.Error(err))
	}
	if err := s.store.Close(); err != nil {
		s.logger.Warn("closing database", zap.Error(err))
	}
	return nil
}
