package logger

import (
	"maps"
	"slices"
	"time"

	"go.uber.org/zap/zapcore"

	"github.com/huynhanx03/go-window/pkg/datastructs/window"
)

var _ zapcore.Core = (*Recent)(nil)

// Entry is a captured log entry.
type Entry struct {
	Time    time.Time      `json:"time"`
	Level   zapcore.Level  `json:"level"`
	Logger  string         `json:"logger,omitempty"`
	Message string         `json:"message"`
	Caller  string         `json:"caller,omitempty"`
	Fields  map[string]any `json:"fields,omitempty"`
}

// Recent is a zapcore.Core that keeps the last N entries written to it.
// Cores derived with With share the same window.
type Recent struct {
	zapcore.LevelEnabler
	entries *window.Synced[Entry]
	fields  []zapcore.Field
}

// NewRecent creates a Recent core holding at most capacity entries at or above enab.
func NewRecent(capacity int, enab zapcore.LevelEnabler) (*Recent, error) {
	entries, err := window.NewSynced[Entry](capacity)
	if err != nil {
		return nil, err
	}
	return &Recent{LevelEnabler: enab, entries: entries}, nil
}

func (r *Recent) With(fields []zapcore.Field) zapcore.Core {
	return &Recent{
		LevelEnabler: r.LevelEnabler,
		entries:      r.entries,
		fields:       append(slices.Clip(r.fields), fields...),
	}
}

func (r *Recent) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if r.Enabled(ent.Level) {
		return ce.AddCore(ent, r)
	}
	return ce
}

func (r *Recent) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	e := Entry{
		Time:    ent.Time,
		Level:   ent.Level,
		Logger:  ent.LoggerName,
		Message: ent.Message,
	}
	if ent.Caller.Defined {
		e.Caller = ent.Caller.TrimmedPath()
	}
	if len(r.fields)+len(fields) > 0 {
		enc := zapcore.NewMapObjectEncoder()
		for _, f := range r.fields {
			f.AddTo(enc)
		}
		for _, f := range fields {
			f.AddTo(enc)
		}
		e.Fields = enc.Fields
	}
	r.entries.Push(e)
	return nil
}

func (r *Recent) Sync() error {
	return nil
}

// Entries returns a copy of the retained entries, oldest first.
func (r *Recent) Entries() []Entry {
	return cloneFields(r.entries.Snapshot())
}

// Last returns the newest n entries, oldest first.
func (r *Recent) Last(n int) []Entry {
	return cloneFields(r.entries.Last(n))
}

// cloneFields gives each entry its own Fields map so callers cannot modify
// retained entries.
func cloneFields(entries []Entry) []Entry {
	for i := range entries {
		entries[i].Fields = maps.Clone(entries[i].Fields)
	}
	return entries
}

// Len returns the number of retained entries.
func (r *Recent) Len() int {
	return r.entries.Len()
}

// Cap returns the maximum number of retained entries.
func (r *Recent) Cap() int {
	return r.entries.Cap()
}

// Reset drops all retained entries.
func (r *Recent) Reset() {
	r.entries.Clear()
}
