package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	_ "github.com/sbilibin2017/secondchance-backend/docs"
	"github.com/sbilibin2017/secondchance-backend/internal/handlers"
	"github.com/sbilibin2017/secondchance-backend/internal/jwt"
	"github.com/sbilibin2017/secondchance-backend/internal/logger"
	"github.com/sbilibin2017/secondchance-backend/internal/middlewares"
	"github.com/sbilibin2017/secondchance-backend/internal/repositories"
	"github.com/sbilibin2017/secondchance-backend/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title secondChance API
// @version 1.0.0
// @description Marketplace backend for donated second-chance goods: accounts, item catalog, and search
// @host localhost:3060
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		mongoURL, mongoDB, itemCollection, userCollection,
		uploadDir,
		jwtSecret, jwtExp,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		mongoURL, mongoDB, itemCollection, userCollection,
		uploadDir,
		jwtSecret, jwtExp,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// application, MongoDB, upload, logging, and JWT configuration. A missing JWT
// secret is a configuration error, not something to default at runtime.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	mongoURL, mongoDB, itemCollection, userCollection string,
	uploadDir string,
	jwtSecretKey string, jwtExpSecond int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "3060")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// MongoDB config
	mongoURL = getEnv("MONGO_URL", "mongodb://localhost:27017")
	mongoDB = getEnv("MONGO_DB", "secondChance")
	itemCollection = getEnv("MONGO_COLLECTION", "secondChanceItems")
	userCollection = getEnv("MONGO_USER_COLLECTION", "users")

	// Upload config
	uploadDir = getEnv("UPLOAD_DIR", "public/images")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET", "")
	if jwtSecretKey == "" {
		err = errors.New("JWT_SECRET is not set")
		return
	}
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}

	return
}

// run initializes the logger, MongoDB client, services, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	mongoURL, mongoDB, itemCollection, userCollection string,
	uploadDir string,
	jwtSecretKey string, jwtExpSecond int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to MongoDB once; the client is shared for the process lifetime.
	logger.Log.Infof("Connecting to MongoDB: %s", mongoURL)
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURL))
	if err != nil {
		logger.Log.Fatal("MongoDB connection error:", err)
	}
	defer client.Disconnect(ctx)

	if err := client.Database("admin").RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err(); err != nil {
		logger.Log.Fatal("MongoDB ping failed:", err)
	}
	logger.Log.Info("Pinged your deployment. You successfully connected to MongoDB!")

	db := client.Database(mongoDB)
	users := db.Collection(userCollection)
	items := db.Collection(itemCollection)

	// Make sure the public upload directory exists.
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		logger.Log.Fatal("failed to create upload directory:", err)
	}

	// Initialize JWT service
	jwtSvc := jwt.New(
		jwt.WithSecretKey(jwtSecretKey),
		jwt.WithExpiration(time.Duration(jwtExpSecond)*time.Second),
	)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(users)
	userWriteRepo := repositories.NewUserWriteRepository(users)
	itemReadRepo := repositories.NewItemReadRepository(items)
	itemWriteRepo := repositories.NewItemWriteRepository(items)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, jwtSvc)
	itemService := services.NewItemService(itemReadRepo, itemWriteRepo)
	searchService := services.NewSearchService(itemReadRepo)

	// Initialize handlers
	registerHandler := handlers.NewRegisterHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService)
	updateProfileHandler := handlers.NewUpdateProfileHandler(authService)
	listItemsHandler := handlers.NewListItemsHandler(itemService)
	createItemHandler := handlers.NewCreateItemHandler(itemService, uploadDir)
	getItemHandler := handlers.NewGetItemHandler(itemService)
	updateItemHandler := handlers.NewUpdateItemHandler(itemService)
	deleteItemHandler := handlers.NewDeleteItemHandler(itemService)
	searchHandler := handlers.NewSearchHandler(searchService)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))
	r.Use(middlewares.LoggingMiddleware())

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("Inside the server"))
	})

	// Static files for uploaded item images
	r.Handle("/images/*", http.StripPrefix("/images/", http.FileServer(http.Dir(uploadDir))))

	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", registerHandler)
		r.Post("/login", loginHandler)
		r.With(middlewares.EmailHeaderMiddleware()).Put("/update", updateProfileHandler)
	})

	r.Route("/api/secondchance", func(r chi.Router) {
		r.Get("/items", listItemsHandler)
		r.Post("/items", createItemHandler)
		r.Get("/items/{id}", getItemHandler)
		r.Put("/items/{id}", updateItemHandler)
		r.Delete("/items/{id}", deleteItemHandler)
		r.Get("/search", searchHandler)
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
