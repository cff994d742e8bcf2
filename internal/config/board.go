package config

import (
	"fmt"
	"os"

	"github.com/yukikurage/kerja-workspace/internal/models"
	"gopkg.in/yaml.v3"
)

// LoadBoard reads the column and event type definitions from a YAML file.
// An empty path yields the default board; sections missing from the file
// keep their defaults.
func LoadBoard(path string) (models.Board, error) {
	board := models.DefaultBoard()
	if path == "" {
		return board, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return board, fmt.Errorf("read board file: %w", err)
	}

	var parsed models.Board
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return board, fmt.Errorf("parse board file: %w", err)
	}
	if len(parsed.Columns) > 0 {
		board.Columns = parsed.Columns
	}
	if len(parsed.EventTypes) > 0 {
		board.EventTypes = parsed.EventTypes
	}

	seen := make(map[string]struct{}, len(board.Columns))
	for _, c := range board.Columns {
		if c.ID == "" {
			return models.DefaultBoard(), fmt.Errorf("board file %s: column without id", path)
		}
		if _, dup := seen[c.ID]; dup {
			return models.DefaultBoard(), fmt.Errorf("board file %s: duplicate column %q", path, c.ID)
		}
		seen[c.ID] = struct{}{}
	}
	return board, nil
}
