package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"planner-backend/internal/llm"
	openai "planner-backend/internal/llm/openai"
	"planner-backend/internal/machines"
	"planner-backend/internal/orders"
	"planner-backend/internal/planner"
	"planner-backend/internal/settings"
	"planner-backend/internal/shared/config"
	"planner-backend/internal/shared/server"
	"planner-backend/internal/shared/storage/db"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB

	MachineRepo machines.Repo
	OrderRepo   orders.Repo
	SettingRepo settings.Repo

	MachineService *machines.Service
	OrderService   *orders.Service
	PlannerService *planner.Service

	MachineHandler *machines.Handler
	OrderHandler   *orders.Handler
	PlannerHandler *planner.Handler
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
	}

	if err := buildServices(app); err != nil {
		return nil, err
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:         app.Config,
		MachineHandler: app.MachineHandler,
		OrderHandler:   app.OrderHandler,
		PlannerHandler: app.PlannerHandler,
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
		sqlDB.Close()
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: migrations failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	return sqlDB, nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}

func buildServices(app *App) error {
	if app.DB != nil {
		app.MachineRepo = &machines.PGRepo{DB: app.DB}
		app.OrderRepo = &orders.PGRepo{DB: app.DB}
		app.SettingRepo = &settings.PGRepo{DB: app.DB}
	} else {
		app.MachineRepo = machines.NewMemoryRepo()
		app.OrderRepo = orders.NewMemoryRepo()
		app.SettingRepo = settings.NewMemoryRepo()
	}

	llmClient := llm.Client(llm.PlaceholderClient{})
	if app.Config.LLMProvider == "openai" {
		openaiClient, err := openai.NewClient(os.Getenv("OPENAI_API_KEY"), app.Config.LLMModel)
		if err != nil {
			return err
		}
		llmClient = openaiClient
	}

	app.PlannerService = planner.NewService(app.MachineRepo, app.OrderRepo, app.SettingRepo, llmClient)
	app.MachineService = machines.NewService(app.MachineRepo, app.PlannerService)
	app.OrderService = orders.NewService(app.OrderRepo)

	app.MachineHandler = machines.NewHandler(app.MachineService)
	app.OrderHandler = orders.NewHandler(app.OrderService)
	app.PlannerHandler = planner.NewHandler(app.PlannerService)

	return nil
}
