package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	googleauth "campus-backend/internal/auth"
	"campus-backend/internal/campus"
	"campus-backend/internal/events"
	"campus-backend/internal/features"
	"campus-backend/internal/feedback"
	"campus-backend/internal/guidance"
	"campus-backend/internal/predict"
	"campus-backend/internal/predict/modelserver"
	"campus-backend/internal/queue"
	"campus-backend/internal/recommend"
	"campus-backend/internal/server"
	"campus-backend/internal/shared/config"
	"campus-backend/internal/shared/storage/db"
	"campus-backend/internal/shared/storage/object"
	localstore "campus-backend/internal/shared/storage/object/local"
	s3store "campus-backend/internal/shared/storage/object/s3"
	"campus-backend/internal/shared/telemetry"
	"campus-backend/internal/users"
)

// App holds shared dependencies built from configuration.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Store  object.Store
	Queue  queue.Client

	Feedback   feedback.Store
	Builder    *features.Builder
	Predictor  predict.Predictor
	Ranker     *recommend.Ranker
	EventsRepo events.Repo
	CampusRepo campus.Repo
	UsersRepo  users.Repo

	EventsService *events.Service
	CampusService *campus.Service
	UsersService  *users.Service

	RecommendHandler *recommend.Handler
	GuidanceHandler  *guidance.Handler
	EventsHandler    *events.Handler
	CampusHandler    *campus.Handler
	UsersHandler     *users.Handler
	GoogleAuth       *googleauth.GoogleService
}

// Build prepares all dependencies and the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	queueClient, err := buildQueue(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
		Queue:  queueClient,
	}

	if err := buildServices(ctx, app); err != nil {
		return nil, err
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:           app.Config,
		RecommendHandler: app.RecommendHandler,
		GuidanceHandler:  app.GuidanceHandler,
		EventsHandler:    app.EventsHandler,
		CampusHandler:    app.CampusHandler,
		UsersHandler:     app.UsersHandler,
		GoogleAuth:       app.GoogleAuth,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.Store, error) {
	switch cfg.DatasetStoreType {
	case "s3":
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func buildQueue(ctx context.Context, cfg config.Config) (queue.Client, error) {
	if strings.TrimSpace(cfg.RegistrationQueue) == "" {
		return queue.NewMemoryClient(), nil
	}
	return queue.NewSQSClient(ctx, cfg.RegistrationQueue, cfg.AWSRegion)
}

func buildServices(ctx context.Context, app *App) error {
	feedbackStore, err := buildFeedbackStore(ctx, app)
	if err != nil {
		return err
	}
	app.Feedback = feedbackStore

	var eventsRepo events.Repo
	var campusRepo campus.Repo
	var usersRepo users.Repo
	if app.DB != nil {
		eventsRepo = &events.PGRepo{DB: app.DB}
		campusRepo = &campus.PGRepo{DB: app.DB}
		usersRepo = &users.PGRepo{DB: app.DB}
	} else {
		eventsRepo = events.NewMemoryRepo()
		campusRepo = campus.NewMemoryRepo()
		usersRepo = users.NewMemoryRepo()
	}
	app.EventsRepo = eventsRepo
	app.CampusRepo = campusRepo
	app.UsersRepo = usersRepo

	app.Builder = features.NewBuilder(features.DefaultVocabulary(), nil)
	app.Predictor = buildPredictor(app.Config)
	app.Ranker = recommend.NewRanker(app.Builder, app.Predictor)

	app.EventsService = events.NewService(eventsRepo, app.Queue, feedbackStore)
	app.CampusService = campus.NewService(campusRepo)
	app.UsersService = users.NewService(usersRepo)

	app.RecommendHandler = recommend.NewHandler(app.Ranker, feedbackStore)
	app.GuidanceHandler = guidance.NewHandler(feedbackStore)
	app.EventsHandler = events.NewHandler(app.EventsService)
	app.CampusHandler = campus.NewHandler(app.CampusService)
	app.UsersHandler = users.NewHandler(app.UsersService)
	app.GoogleAuth = googleauth.NewGoogleService(
		app.Config.GoogleClientID,
		app.Config.GoogleClientSecret,
		app.Config.GoogleRedirectURL,
		app.Config.UIRedirectURL,
		app.UsersService,
	)
	return nil
}

// buildFeedbackStore prefers Postgres when connected; otherwise the
// historical corpus CSV is loaded from the object store into memory.
func buildFeedbackStore(ctx context.Context, app *App) (feedback.Store, error) {
	if app.DB != nil {
		return &feedback.PGStore{DB: app.DB}, nil
	}

	body, err := app.Store.Open(ctx, app.Config.DatasetPath)
	if err != nil {
		log.Printf("bootstrap: feedback dataset unavailable; starting with empty corpus: %v", err)
		return feedback.NewMemoryStore(nil), nil
	}
	defer body.Close()

	records, err := feedback.ReadCSV(body)
	if err != nil {
		return nil, fmt.Errorf("read feedback dataset: %w", err)
	}
	telemetry.Info("bootstrap.corpus_loaded", map[string]any{
		"records": len(records),
		"path":    app.Config.DatasetPath,
	})
	return feedback.NewMemoryStore(records), nil
}

func buildPredictor(cfg config.Config) predict.Predictor {
	if strings.TrimSpace(cfg.ModelBaseURL) == "" {
		log.Printf("bootstrap: MODEL_BASE_URL empty; predictions disabled")
		return predict.Placeholder{}
	}
	client, err := modelserver.NewClient(cfg.ModelBaseURL, time.Duration(cfg.ModelTimeoutSecs)*time.Second)
	if err != nil {
		log.Printf("bootstrap: model client init failed; predictions disabled: %v", err)
		return predict.Placeholder{}
	}
	return client
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
