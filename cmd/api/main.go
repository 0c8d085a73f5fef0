package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/docuflow/docuflow-api/internal/application/service"
	"github.com/docuflow/docuflow-api/internal/config"
	"github.com/docuflow/docuflow-api/internal/presentation/http/handler"
	"github.com/docuflow/docuflow-api/internal/presentation/http/routes"
	"github.com/docuflow/docuflow-api/internal/render/template"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Template registry and document service
	registry := template.NewRegistry()
	documentService := service.NewDocumentService(logger, registry, cfg.Documents.OutputDir)

	// Initialize handlers
	documentHandler := handler.NewDocumentHandler(documentService, &cfg.Documents, logger)
	templateHandler := handler.NewTemplateHandler(registry)

	router := routes.Setup(&routes.Handlers{
		Document: documentHandler,
		Template: templateHandler,
	}, &routes.Deps{
		Cfg:    cfg,
		Logger: logger,
	})

	logger.Info("starting server",
		zap.String("app", cfg.App.Name),
		zap.String("port", cfg.App.Port),
		zap.String("env", cfg.App.Env),
	)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.App.Env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
