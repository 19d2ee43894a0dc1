package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/mbcars/lead-router/pkg/api"
	"github.com/mbcars/lead-router/pkg/clients"
	"github.com/mbcars/lead-router/pkg/config"
	"github.com/mbcars/lead-router/pkg/middleware"
	"github.com/mbcars/lead-router/pkg/services"
	"github.com/mbcars/lead-router/pkg/web"
)

const defaultConfigPath = "config_file.cfg"

func main() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file loaded")
	}

	configPath := os.Getenv("LEAD_ROUTER_CONFIG")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	// Initialize configuration
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Warnf("Unknown LOG_LEVEL %q, using info", cfg.LogLevel)
		level = log.InfoLevel
	}
	log.SetLevel(level)

	// Initialize SMS provider
	provider, err := clients.NewProvider(cfg)
	if err != nil {
		log.Fatalf("Error creating SMS provider: %v", err)
	}

	roster, err := services.NewRoster(cfg.SalesAgentNumbers)
	if err != nil {
		log.Fatalf("Error building agent roster: %v", err)
	}

	leadService := services.NewLeadService(provider, roster, cfg.SMSOriginator)

	gin.SetMode(cfg.GinMode)

	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.Logger(), middleware.Metrics())
	router.SetHTMLTemplate(web.Templates())

	api.RegisterRoutes(router, api.NewHandlers(leadService))

	log.WithFields(log.Fields{
		"provider": provider.Name(),
		"agents":   roster.Len(),
	}).Infof("Server starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
