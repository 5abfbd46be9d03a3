package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/beka-birhanu/vinom-pathfinder/api"
	api_i "github.com/beka-birhanu/vinom-pathfinder/api/i"
	"github.com/beka-birhanu/vinom-pathfinder/api/identity"
	planapi "github.com/beka-birhanu/vinom-pathfinder/api/plan"
	"github.com/beka-birhanu/vinom-pathfinder/config"
	"github.com/beka-birhanu/vinom-pathfinder/infrastruture/cache"
	"github.com/beka-birhanu/vinom-pathfinder/infrastruture/repo"
	"github.com/beka-birhanu/vinom-pathfinder/infrastruture/token"
	"github.com/beka-birhanu/vinom-pathfinder/logger"
	"github.com/beka-birhanu/vinom-pathfinder/metrics"
	"github.com/beka-birhanu/vinom-pathfinder/service"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// server holds the dependencies serve wires together.
type server struct {
	settings    config.Server
	appLogger   *logger.Logger
	mongoClient *mongo.Client
	redisClient *redis.Client
	operators   *repo.OperatorRepo
	plans       *repo.PlanRepo
	planCache   i.PlanCache
	tokenizer   i.Tokenizer
	authService i.Authenticator
	planner     i.Planner
	router      *api.Router
}

// serveCmd runs the planning API.
var serveCmd = &cobra.Command{
	Use:     "serve",
	Short:   "Serve plans over HTTP",
	GroupID: "service",
	Long: `Run the planning API. Operators register and sign in, then submit grids and
browse the plans they requested. Plans are stored in MongoDB and answers are
cached in Redis. Prometheus metrics are served at /metrics.

Connection settings are read from the environment or a .env file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
		defer cancel()

		s := &server{settings: config.LoadServer()}
		if err := s.init(ctx); err != nil {
			return err
		}
		defer s.close()

		if err := s.router.Run(); err != nil {
			s.appLogger.Error(fmt.Sprintf("Starting server: %v", err))
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func (s *server) init(ctx context.Context) error {
	var err error
	s.appLogger, err = logger.New("APP", config.ColorGreen, os.Stdout)
	if err != nil {
		return err
	}
	s.appLogger.SetVerbose(verbose)
	gin.SetMode(config.Envs.GinMode)

	steps := []func(context.Context) error{
		s.initMongo,
		s.initRepos,
		s.initRedis,
		s.initPlanCache,
		s.initAuthService,
		s.initPlanner,
		s.initRouter,
	}
	for _, step := range steps {
		if err := step(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (s *server) close() {
	if s.redisClient != nil {
		_ = s.redisClient.Close()
	}
	if s.mongoClient != nil {
		_ = s.mongoClient.Disconnect(context.Background())
	}
}

func (s *server) initMongo(ctx context.Context) error {
	uri := fmt.Sprintf("mongodb://%s:%s@%s:%v", s.settings.DBUser, s.settings.DBPassword, s.settings.DBHost, s.settings.DBPort)

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	s.mongoClient, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		s.appLogger.Error(fmt.Sprintf("Failed to connect to MongoDB: %v", err))
		return err
	}
	if err = s.mongoClient.Ping(ctx, nil); err != nil {
		s.appLogger.Error(fmt.Sprintf("MongoDB ping failed: %v", err))
		return err
	}
	s.appLogger.Info("Connected to MongoDB")
	return nil
}

func (s *server) initRepos(ctx context.Context) error {
	s.operators = repo.NewOperatorRepo(s.mongoClient, s.settings.DBName, "operators")
	if err := s.operators.EnsureIndexes(ctx); err != nil {
		s.appLogger.Error(fmt.Sprintf("Creating operator indexes: %v", err))
		return err
	}

	s.plans = repo.NewPlanRepo(s.mongoClient, s.settings.DBName, "plans")
	if err := s.plans.EnsureIndexes(ctx); err != nil {
		s.appLogger.Error(fmt.Sprintf("Creating plan indexes: %v", err))
		return err
	}

	s.appLogger.Info("Repositories initialized")
	return nil
}

func (s *server) initRedis(ctx context.Context) error {
	s.redisClient = redis.NewClient(&redis.Options{
		Addr:     config.Envs.RedisAddr,
		Password: config.Envs.RedisPassword,
		DB:       config.Envs.RedisDB,
	})
	if err := s.redisClient.Ping(ctx).Err(); err != nil {
		s.appLogger.Error(fmt.Sprintf("Redis ping failed: %v", err))
		return err
	}
	s.appLogger.Info("Connected to Redis")
	return nil
}

func (s *server) initPlanCache(context.Context) error {
	var err error
	s.planCache, err = cache.NewRedisPlanCache(s.redisClient, config.Envs.CacheTTLSeconds)
	if err != nil {
		s.appLogger.Error(fmt.Sprintf("Creating plan cache: %v", err))
		return err
	}
	s.appLogger.Info("Plan cache initialized")
	return nil
}

func (s *server) initAuthService(context.Context) error {
	s.tokenizer = token.NewJwtService(s.settings.JWTSecret, s.settings.JWTIssuer)

	var err error
	s.authService, err = service.NewAuthService(s.operators, s.tokenizer, time.Duration(s.settings.JWTTTLMinutes)*time.Minute)
	if err != nil {
		s.appLogger.Error(fmt.Sprintf("Creating auth service: %v", err))
		return err
	}
	s.appLogger.Info("Auth service initialized")
	return nil
}

func (s *server) initPlanner(context.Context) error {
	plannerLogger, err := logger.New("PLANNER", config.ColorMagenta, os.Stdout)
	if err != nil {
		return err
	}
	plannerLogger.SetVerbose(verbose)

	s.planner, err = service.NewPlanner(service.PlannerConfig{
		Repo:     s.plans,
		Cache:    s.planCache,
		Logger:   plannerLogger,
		Defaults: solverDefaults(),
	})
	if err != nil {
		s.appLogger.Error(fmt.Sprintf("Creating planner: %v", err))
		return err
	}
	s.appLogger.Info("Planner initialized")
	return nil
}

func (s *server) initRouter(context.Context) error {
	apiLogger, err := logger.New("API", config.ColorBlue, os.Stdout)
	if err != nil {
		return err
	}

	planController, err := planapi.NewPlanController(s.planner, apiLogger)
	if err != nil {
		s.appLogger.Error(fmt.Sprintf("Creating plan controller: %v", err))
		return err
	}

	s.router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		Controllers:             []api_i.Controller{identity.NewIdentityServer(s.authService), planController},
		AuthorizationMiddleware: identity.Authorize(s.tokenizer),
		MetricsHandler:          metrics.Handler(),
	})
	s.appLogger.Info("Router initialized")
	return nil
}
