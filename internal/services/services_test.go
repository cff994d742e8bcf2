package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/kerja-workspace/internal/models"
	"github.com/yukikurage/kerja-workspace/internal/persistence"
	"github.com/yukikurage/kerja-workspace/internal/repository"
	"github.com/yukikurage/kerja-workspace/internal/workspace"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestWorkspace(t *testing.T) *workspace.Workspace {
	t.Helper()

	clock := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	return newTestWorkspaceWithClock(t, func() time.Time {
		clock = clock.Add(time.Millisecond)
		return clock
	})
}

// newTestWorkspaceWithClock opens an empty workspace reading time from now.
func newTestWorkspaceWithClock(t *testing.T, now func() time.Time) *workspace.Workspace {
	t.Helper()

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
	return workspace.Open(gw, workspace.WithClock(now))
}

// newFakeOpenAI serves a single canned chat completion whose message
// content is reply.
func newFakeOpenAI(t *testing.T, reply string) *AIService {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			http.NotFound(w, r)
			return
		}
		resp := openai.ChatCompletionResponse{
			ID:     "chatcmpl-test",
			Object: "chat.completion",
			Model:  openai.GPT4o,
			Choices: []openai.ChatCompletionChoice{{
				Message: openai.ChatCompletionMessage{
					Role:    openai.ChatMessageRoleAssistant,
					Content: reply,
				},
				FinishReason: openai.FinishReasonStop,
			}},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(server.Close)

	cfg := openai.DefaultConfig("test-key")
	cfg.BaseURL = server.URL + "/v1"
	svc := NewAIServiceWithConfig(cfg)
	svc.now = func() time.Time { return time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC) }
	return svc
}
