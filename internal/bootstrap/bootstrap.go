package bootstrap

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/yigit/memberapi/internal/app/controllers"
	appRepos "github.com/yigit/memberapi/internal/app/repositories"
	appRoutes "github.com/yigit/memberapi/internal/app/routes"
	appServices "github.com/yigit/memberapi/internal/app/services"
	"github.com/yigit/memberapi/internal/config"
	"github.com/yigit/memberapi/internal/db"
	appMiddleware "github.com/yigit/memberapi/internal/middleware"
	"github.com/yigit/memberapi/internal/pkg/helpers"
	"github.com/yigit/memberapi/internal/pkg/logger"
)

const serviceName = "memberapi"

// Store is what the application needs from the database: queries and a health ping.
// *pgxpool.Pool satisfies it.
type Store interface {
	appRepos.DBTX
	appControllers.Pinger
}

// Dependencies holds all the application dependencies
type Dependencies struct {
	MemberService    appServices.MemberService // Interface type
	MemberController *appControllers.MemberController
	HealthController *appControllers.HealthController
	Repos            *appRepos.Repositories
	Registry         *prometheus.Registry
	Metrics          *appMiddleware.Metrics
	Logger           zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:   logLevel,
		Pretty:  prettyLog,
		Service: serviceName,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection. The schema is managed
// outside the process; see migrations/.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg, lgr)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")
	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, store Store, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Logger: lgr}

	deps.Registry = prometheus.NewRegistry()
	deps.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	deps.Metrics = appMiddleware.NewMetrics(deps.Registry)

	queryTimeout := helpers.ParseDuration(cfg.Database.QueryTimeout, 5*time.Second)
	deps.Repos = appRepos.NewRepositories(store, queryTimeout, lgr)

	deps.MemberService = appServices.NewMemberService(deps.Repos.MemberRepository)

	deps.MemberController = appControllers.NewMemberController(deps.MemberService)
	deps.HealthController = appControllers.NewHealthController(store, queryTimeout)

	return deps
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	switch strings.ToLower(cfg.Server.Mode) {
	case "production":
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		appMiddleware.RequestID(),
		appMiddleware.RequestLogger(lgr),
		deps.Metrics.Middleware(),
	)

	appRoutes.SetupSwagger(router)
	appRoutes.SetupMetrics(router, deps.Registry)
	appRoutes.SetupRouter(router, deps.MemberController, deps.HealthController)

	return router
}
