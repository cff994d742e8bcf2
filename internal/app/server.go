package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/kerja-workspace/internal/handlers"
)

const (
	shutdownTimeout   = 10 * time.Second
	readHeaderTimeout = 10 * time.Second
)

// Serve runs the HTTP API until ctx is cancelled, then shuts down
// gracefully.
func (a *App) Serve(ctx context.Context) error {
	gin.SetMode(a.Config.GinMode)

	store, err := a.SessionStore()
	if err != nil {
		return err
	}

	router := handlers.NewRouter(handlers.RouterDeps{
		Workspace:    a.Workspace,
		AuthService:  a.AuthService,
		TaskService:  a.TaskService,
		SessionStore: store,
		Logger:       a.Log,
	})

	srv := &http.Server{
		Addr:              a.Config.ServerAddr(),
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		a.Log.Infow("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		a.Log.Warnw("server shutdown timeout", "timeout", shutdownTimeout, "error", err)
		return err
	}
	a.Log.Infow("server stopped")
	return nil
}
