package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	tickethandlers "dbug/internal/interfaces/http/handlers/ticket"
	verificationhandlers "dbug/internal/interfaces/http/handlers/verification"
	"dbug/internal/interfaces/http/middleware"
	"dbug/internal/interfaces/http/routes"
	"dbug/internal/shared/logger"
)

type RouterConfig struct {
	Mode               string
	AllowedOrigins     []string
	UploadDir          string
	UploadPublicPrefix string
}

// NewRouter assembles the Gin engine: recovery, logging, CORS, the
// static attachment directory, and the ticket intake routes.
func NewRouter(
	cfg RouterConfig,
	verificationHandler *verificationhandlers.VerificationHandler,
	ticketHandler *tickethandlers.TicketHandler,
	verificationMW *middleware.VerificationMiddleware,
	log logger.Interface,
) *gin.Engine {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	engine := gin.New()
	engine.Use(middleware.Recovery())
	engine.Use(middleware.Logger(log))
	engine.Use(middleware.CORS(cfg.AllowedOrigins))

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Attachments are served back under the same public prefix their
	// stored paths start with.
	engine.Static(cfg.UploadPublicPrefix, cfg.UploadDir)

	routes.SetupTicketRoutes(engine, &routes.TicketRouteConfig{
		VerificationHandler:    verificationHandler,
		TicketHandler:          ticketHandler,
		VerificationMiddleware: verificationMW,
	})

	return engine
}
