package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/studymate/courseapi/internal/app/controllers"
	appMigrations "github.com/studymate/courseapi/internal/app/migrations"
	appRepos "github.com/studymate/courseapi/internal/app/repositories"
	appRoutes "github.com/studymate/courseapi/internal/app/routes"
	appServices "github.com/studymate/courseapi/internal/app/services"
	"github.com/studymate/courseapi/internal/config"
	"github.com/studymate/courseapi/internal/db"
	appMiddleware "github.com/studymate/courseapi/internal/middleware"
	"github.com/studymate/courseapi/internal/pkg/helpers"
	"github.com/studymate/courseapi/internal/pkg/llm"
	"github.com/studymate/courseapi/internal/pkg/logger"
	"github.com/studymate/courseapi/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	CourseService      appServices.CourseService // Interface type
	ChatService        appServices.ChatService   // Interface type
	CourseController   *appControllers.CourseController
	CategoryController *appControllers.CategoryController
	ChatController     *appControllers.ChatController
	Repos              *appRepos.Repositories
	Completer          llm.Completer
	Logger             zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
// CONFIG_PATH overrides the default configs/config.yaml location.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := config.GetEnv("CONFIG_PATH", filepath.Join("configs", "config.yaml"))
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger // Get the configured global logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase opens the configured store, ensures the schema and optionally seeds it.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.Database, error) {
	lgr.Info().Str("driver", cfg.Database.Driver).Msg("Establishing database connection...")
	database, err := db.Open(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	lgr.Info().Msg("Ensuring database schema...")
	if err := appMigrations.EnsureSchema(ctx, database); err != nil {
		lgr.Error().Err(err).Msg("Database schema setup error")
		database.Close()
		return nil, fmt.Errorf("database schema setup failed: %w", err)
	}

	if cfg.Database.Seed {
		repos := appRepos.NewRepositories(database)
		if err := seed.CreateDefaultData(ctx, repos.CourseRepository, lgr); err != nil {
			// Log the error but don't necessarily fail the startup
			lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
		}
	}

	return database, nil
}

// NewCompleter builds the completion provider selected by llm.provider.
func NewCompleter(ctx context.Context, cfg *config.Config) (llm.Completer, error) {
	timeout := helpers.ParseDuration(cfg.LLM.Timeout, 30*time.Second)

	switch cfg.LLM.Provider {
	case config.ProviderOpenAI:
		return llm.NewOpenAICompleter(cfg.LLM.OpenAI.APIKey, cfg.LLM.OpenAI.BaseURL, cfg.LLM.OpenAI.Model, timeout), nil
	case config.ProviderGemini:
		return llm.NewGeminiCompleter(ctx, llm.GeminiConfig{
			APIKey:  cfg.LLM.Gemini.APIKey,
			BaseURL: cfg.LLM.Gemini.BaseURL,
			Model:   cfg.LLM.Gemini.Model,
			Timeout: timeout,
		})
	default:
		return nil, fmt.Errorf("unsupported llm provider %q", cfg.LLM.Provider)
	}
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.Database, completer llm.Completer, lgr zerolog.Logger) (*Dependencies, error) {
	if completer == nil {
		return nil, fmt.Errorf("completion provider is required")
	}

	deps := &Dependencies{Logger: lgr, Completer: completer}

	deps.Repos = appRepos.NewRepositories(database)

	// Initialize services
	deps.CourseService = appServices.NewCourseService(deps.Repos.CourseRepository, lgr)
	deps.ChatService = appServices.NewChatService(
		appServices.NewContextAssembler(deps.Repos.CourseRepository),
		completer,
		appServices.ChatOptions{
			MaxTokens:   cfg.LLM.MaxTokens,
			Temperature: cfg.LLM.Temperature,
		},
		lgr,
	)

	deps.CourseController = appControllers.NewCourseController(deps.CourseService)
	deps.CategoryController = appControllers.NewCategoryController(deps.CourseService)
	deps.ChatController = appControllers.NewChatController(deps.ChatService)

	return deps, nil
}

// corsConfig allows the configured origins with any method and header, credentials included
func corsConfig(origins []string) cors.Config {
	return cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"*"},
		AllowHeaders:     []string{"*"},
		AllowCredentials: true,
		MaxAge:           10 * time.Minute,
	}
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger(lgr))
	router.Use(cors.New(corsConfig(cfg.Server.AllowedOrigins)))

	appRoutes.SetupSwagger(router)

	appRoutes.SetupRouter(router,
		deps.CourseController,
		deps.CategoryController,
		deps.ChatController,
	)

	return router
}
