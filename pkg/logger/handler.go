package logger

import (
	"context"
	"slices"

	"go.uber.org/zap/zapcore"

	"github.com/huynhanx03/go-window/pkg/datastructs/window"
)

// RecentRequest selects entries from a Recent window.
type RecentRequest struct {
	// Limit caps the number of entries returned; 0 returns all.
	Limit int    `form:"limit" json:"limit" validate:"gte=0"`
	Level string `form:"level" json:"level" validate:"omitempty,oneof=debug info warn error dpanic panic fatal"`
}

// Handle returns the newest entries matching req, oldest first.
// It has the handler.HandlerFunc signature so it can be mounted with handler.Wrap.
func (r *Recent) Handle(_ context.Context, req *RecentRequest) ([]Entry, error) {
	minLevel := zapcore.DebugLevel
	if req.Level != "" {
		lvl, err := zapcore.ParseLevel(req.Level)
		if err != nil {
			return nil, err
		}
		minLevel = lvl
	}

	var out []Entry
	r.entries.View(func(w *window.Window[Entry]) {
		for _, e := range w.Backward() {
			if req.Limit > 0 && len(out) == req.Limit {
				break
			}
			if e.Level >= minLevel {
				out = append(out, e)
			}
		}
	})
	slices.Reverse(out)
	if out == nil {
		out = []Entry{}
	}
	return cloneFields(out), nil
}
