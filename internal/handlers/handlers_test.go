package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/kerja-workspace/internal/models"
	"github.com/yukikurage/kerja-workspace/internal/persistence"
	"github.com/yukikurage/kerja-workspace/internal/repository"
	"github.com/yukikurage/kerja-workspace/internal/services"
	"github.com/yukikurage/kerja-workspace/internal/workspace"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type testEnv struct {
	ws          *workspace.Workspace
	authService *services.AuthService
	router      *gin.Engine
}

func setupTestEnv(t *testing.T) testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		sqlDB.Close()
	})
	require.NoError(t, db.AutoMigrate(&models.Snapshot{}))

	gw := persistence.NewGateway(repository.NewSnapshotRepository(db), zap.NewNop().Sugar())
	clock := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	ws := workspace.Open(gw, workspace.WithClock(func() time.Time {
		clock = clock.Add(time.Millisecond)
		return clock
	}))

	authService := services.NewAuthService(ws)
	router := NewRouter(RouterDeps{
		Workspace:    ws,
		AuthService:  authService,
		TaskService:  services.NewTaskService(ws, services.NewAIService("")),
		SessionStore: cookie.NewStore([]byte("secret")),
	})

	return testEnv{ws: ws, authService: authService, router: router}
}

// do sends a JSON request carrying cookies and returns the recorder.
func (env testEnv) do(t *testing.T, method, path string, body interface{}, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		req = httptest.NewRequest(method, path, bytes.NewReader(raw))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

// login authenticates through the API and returns the session cookies.
func (env testEnv) login(t *testing.T, username, password string) []*http.Cookie {
	t.Helper()

	w := env.do(t, http.MethodPost, "/api/auth/login", map[string]string{
		"username": username,
		"password": password,
	}, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	return cookies
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v))
}
