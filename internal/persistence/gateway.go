// Package persistence writes full workspace snapshots to the key-value store
// and reads them back. Storage failures never reach callers: reads fall back
// to defaults and writes are logged and dropped.
package persistence

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/yukikurage/kerja-workspace/internal/constants"
	"github.com/yukikurage/kerja-workspace/internal/repository"
	"go.uber.org/zap"
)

type Gateway struct {
	repo repository.SnapshotRepository
	log  *zap.SugaredLogger
}

func NewGateway(repo repository.SnapshotRepository, log *zap.SugaredLogger) *Gateway {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Gateway{repo: repo, log: log}
}

// Load decodes the snapshot stored under key. A missing key, a read error, a
// JSON null or a document that does not decode into T all yield fallback.
func Load[T any](g *Gateway, key string, fallback T) T {
	raw, err := g.repo.Get(key)
	if err != nil {
		if !errors.Is(err, repository.ErrSnapshotNotFound) {
			g.log.Warnw("snapshot read failed, using default", "key", key, "error", err)
		}
		return fallback
	}
	if strings.TrimSpace(raw) == "null" {
		return fallback
	}

	var value T
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		g.log.Warnw("snapshot corrupt, using default", "key", key, "error", err)
		return fallback
	}
	return value
}

// Save overwrites the snapshot under key with the JSON encoding of value.
func (g *Gateway) Save(key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		g.log.Errorw("snapshot encode failed", "key", key, "error", err)
		return
	}
	if err := g.repo.Put(key, string(data)); err != nil {
		g.log.Errorw("snapshot write failed", "key", key, "error", err)
		return
	}
	g.log.Debugw("snapshot written", "key", key, "bytes", len(data))
}

// LoadSession returns the persisted actor id, or "" when none is stored.
func (g *Gateway) LoadSession() string {
	raw, err := g.repo.Get(constants.StorageKeySession)
	if err != nil {
		if !errors.Is(err, repository.ErrSnapshotNotFound) {
			g.log.Warnw("session pointer read failed", "error", err)
		}
		return ""
	}
	return strings.TrimSpace(raw)
}

func (g *Gateway) SaveSession(userID string) {
	if err := g.repo.Put(constants.StorageKeySession, userID); err != nil {
		g.log.Errorw("session pointer write failed", "error", err)
	}
}

func (g *Gateway) ClearSession() {
	if err := g.repo.Delete(constants.StorageKeySession); err != nil {
		g.log.Errorw("session pointer delete failed", "error", err)
	}
}
