package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/beka-birhanu/vinom-maze/api"
	api_i "github.com/beka-birhanu/vinom-maze/api/i"
	mazeapi "github.com/beka-birhanu/vinom-maze/api/maze"
	"github.com/beka-birhanu/vinom-maze/config"
	"github.com/beka-birhanu/vinom-maze/infrastruture/blobstore"
	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/afero"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Global variables for dependencies
var (
	mongoClient    *mongo.Client
	redisClient    *redis.Client
	mazeStore      i.BlobStore
	mazeService    i.MazeService
	mazeController api_i.Controller
	router         *api.Router
	appLogger      *log.Logger
)

func fatal(format string, args ...any) {
	appLogger.Printf("%s[ERROR]%s %s", config.LogErrorColor, config.LogColorReset, fmt.Sprintf(format, args...))
	os.Exit(1)
}

func info(format string, args ...any) {
	appLogger.Printf("%s[INFO]%s %s", config.LogInfoColor, config.LogColorReset, fmt.Sprintf(format, args...))
}

func initMongo(ctx context.Context) {
	uri := fmt.Sprintf("mongodb://%s:%s@%s:%v", config.Envs.DBUser, config.Envs.DBPassword, config.Envs.DBHost, config.Envs.DBPort)

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	mongoClient, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		fatal("Failed to connect to MongoDB: %v", err)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		fatal("MongoDB ping failed: %v", err)
	}
	info("Connected to MongoDB")
}

func initRedis(ctx context.Context) {
	redisClient = redis.NewClient(&redis.Options{Addr: config.Envs.RedisAddr})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		fatal("Redis ping failed: %v", err)
	}
	info("Connected to Redis")
}

func initStore(ctx context.Context) {
	switch config.Envs.StorageBackend {
	case config.StorageFile:
		mazeStore = blobstore.NewFileStore(afero.NewOsFs(), config.Envs.StorageDir)
	case config.StorageGdata:
		var err error
		mazeStore, err = blobstore.NewGdataStore(config.Envs.GdataApp, "mazes")
		if err != nil {
			fatal("Creating gdata store: %v", err)
		}
	case config.StorageRedis:
		initRedis(ctx)
		mazeStore = blobstore.NewRedisStore(redisClient, config.Envs.RedisTTLSeconds)
	case config.StorageMongo:
		initMongo(ctx)
		mazeStore = blobstore.NewMongoStore(mongoClient, config.Envs.DBName, "mazes")
	default:
		fatal("Unknown storage backend %q", config.Envs.StorageBackend)
	}
	info("Maze store initialized: %s", config.Envs.StorageBackend)
}

func initMazeService() {
	var err error
	mazeService, err = service.NewMazeService(&service.Config{
		Store:        mazeStore,
		Logger:       log.New(os.Stdout, config.ColorCyan+"[MAZE-SERVICE] "+config.ColorReset, log.LstdFlags),
		MaxDimension: config.Envs.MaxMazeDimension,
	})
	if err != nil {
		fatal("Creating maze service: %v", err)
	}
	info("Maze service initialized")
}

func initMazeController() {
	var err error
	mazeController, err = mazeapi.NewMazeController(mazeService)
	if err != nil {
		fatal("Creating maze controller: %v", err)
	}
	info("Maze controller initialized")
}

func initRouter() {
	gin.SetMode(config.Envs.GinMode)
	router = api.NewRouter(api.Config{
		Addr:        fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:     "/api",
		Controllers: []api_i.Controller{mazeController},
	})
	info("Router initialized")
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	appLogger = log.New(os.Stdout, config.ColorGreen+"[APP] "+config.ColorReset, log.LstdFlags)
	config.Envs = config.Load()

	initStore(ctx)
	defer func() {
		if mongoClient != nil {
			_ = mongoClient.Disconnect(context.Background())
		}
		if redisClient != nil {
			_ = redisClient.Close()
		}
	}()

	initMazeService()
	initMazeController()
	initRouter()

	// Run HTTP server
	if err := router.Run(); err != nil {
		fatal("Starting server: %v", err)
	}
}
