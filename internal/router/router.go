package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/rick2303/Olanchito/internal/config"
	"github.com/rick2303/Olanchito/internal/handler"
	"github.com/rick2303/Olanchito/internal/infra"
	"github.com/rick2303/Olanchito/internal/middleware"
	"github.com/rick2303/Olanchito/internal/repository"
	"github.com/rick2303/Olanchito/internal/service"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())

	// ── Infrastructure ───────────────────────────────────────────────────────
	storage := infra.NewStorageClient(cfg)
	mailer := infra.NewMailer(cfg)

	// ── Repositories ─────────────────────────────────────────────────────────
	businessRepo := repository.NewBusinessRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	submissionRepo := repository.NewSubmissionRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	businessSvc := service.NewBusinessService(businessRepo, categoryRepo, storage)
	categorySvc := service.NewCategoryService(categoryRepo, rdb)
	submissionSvc := service.NewSubmissionService(submissionRepo, categoryRepo, storage, mailer, cfg.NotifyEmail)

	// ── Handlers ─────────────────────────────────────────────────────────────
	businessH := handler.NewBusinessHandler(businessSvc)
	categoryH := handler.NewCategoryHandler(categorySvc)
	submissionH := handler.NewSubmissionHandler(submissionSvc)
	healthH := handler.NewHealthHandler(db, rdb)

	// ── Routes ───────────────────────────────────────────────────────────────
	r.GET("/health", healthH.Check)

	v1 := r.Group("/v1")
	{
		v1.GET("/categories", categoryH.Listar)
		v1.GET("/businesses", businessH.Listar)
		v1.GET("/businesses/:slug", businessH.ObtenerPorSlug)

		// The submission form is the only write surface; throttle it.
		v1.POST("/submissions", middleware.RateLimiter(10, time.Minute), submissionH.Registrar)
	}

	return r
}
