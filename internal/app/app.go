// Package app assembles the workspace and its services from configuration.
// Both the HTTP server and the CLI start from here.
package app

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/yukikurage/kerja-workspace/internal/config"
	"github.com/yukikurage/kerja-workspace/internal/database"
	"github.com/yukikurage/kerja-workspace/internal/persistence"
	"github.com/yukikurage/kerja-workspace/internal/repository"
	"github.com/yukikurage/kerja-workspace/internal/services"
	"github.com/yukikurage/kerja-workspace/internal/workspace"
	"go.uber.org/zap"
)

const (
	redisPoolSize     = 10
	sessionMaxAgeDays = 7
)

type App struct {
	Config      *config.Config
	Log         *zap.SugaredLogger
	Workspace   *workspace.Workspace
	AuthService *services.AuthService
	TaskService *services.TaskService
}

// Open connects the store, migrates it and loads the workspace.
func Open(cfg *config.Config, log *zap.SugaredLogger) (*App, error) {
	board, err := config.LoadBoard(cfg.BoardFile)
	if err != nil {
		return nil, err
	}

	if err := database.Connect(cfg, log); err != nil {
		return nil, err
	}
	if err := database.Migrate(log); err != nil {
		_ = database.Close()
		return nil, err
	}

	gw := persistence.NewGateway(repository.NewSnapshotRepository(database.GetDB()), log)
	ws := workspace.Open(gw, workspace.WithLogger(log), workspace.WithBoard(board))

	aiService := services.NewAIService(cfg.OpenAIAPIKey)
	if !aiService.Enabled() {
		log.Infow("OPENAI_API_KEY not set, AI task drafting disabled")
	}

	return &App{
		Config:      cfg,
		Log:         log,
		Workspace:   ws,
		AuthService: services.NewAuthService(ws),
		TaskService: services.NewTaskService(ws, aiService),
	}, nil
}

// Close releases the database connection pool.
func (a *App) Close() error {
	return database.Close()
}

// SessionStore keeps sessions in redis when REDIS_HOST is set and in signed
// cookies otherwise.
func (a *App) SessionStore() (sessions.Store, error) {
	var store sessions.Store
	if addr := a.Config.RedisAddr(); addr != "" {
		rs, err := redisStore.NewStore(redisPoolSize, "tcp", addr, "", []byte(a.Config.SessionSecret))
		if err != nil {
			return nil, fmt.Errorf("failed to create redis session store: %w", err)
		}
		a.Log.Infow("sessions stored in redis", "addr", addr)
		store = rs
	} else {
		store = cookie.NewStore([]byte(a.Config.SessionSecret))
	}

	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * sessionMaxAgeDays,
		HttpOnly: true,
		Secure:   a.Config.GinMode == "release",
		SameSite: http.SameSiteLaxMode,
	})
	return store, nil
}
