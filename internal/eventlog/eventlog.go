// Package eventlog keeps a bounded, storage-mirrored record of page events
// for debugging.
package eventlog

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/internal/storage"
)

// DefaultCapacity is the number of entries kept when no capacity is set.
const DefaultCapacity = 100

// Event types recorded by the page.
const (
	PageLoad           = "page_load"
	SliderChange       = "slider_change"
	NavigationClick    = "navigation_click"
	FormSubmit         = "form_submit"
	MapInteraction     = "map_interaction"
	Scroll             = "scroll"
	ButtonClick        = "button_click"
	LocationAccess     = "location_access"
	Error              = "error"
	EducationAction    = "education_action"
	EnhancedAnimations = "enhanced_animations"
)

var tags = map[string]string{
	PageLoad:        "📄",
	SliderChange:    "🎠",
	NavigationClick: "🧭",
	FormSubmit:      "📝",
	MapInteraction:  "🗺️",
	Scroll:          "📜",
	ButtonClick:     "🔘",
	LocationAccess:  "📍",
}

const defaultTag = "📋"

// Tag returns the trace tag for an event type.
func Tag(eventType string) string {
	if t, ok := tags[eventType]; ok {
		return t
	}
	return defaultTag
}

// Entry is one recorded event. Entries are never modified after creation.
type Entry struct {
	ID        int64          `json:"id"`
	Timestamp string         `json:"timestamp"`
	EventType string         `json:"eventType"`
	Data      map[string]any `json:"data"`
	URL       string         `json:"url"`
}

// Logger appends entries to a bounded buffer and mirrors the buffer to
// storage after every append. It is safe for concurrent use.
type Logger struct {
	mu       sync.Mutex
	entries  []Entry
	capacity int
	lastID   int64

	store storage.Adapter
	trace *zap.Logger
	now   func() time.Time
	url   string
}

type Option func(*Logger)

// WithCapacity bounds the buffer to n entries.
func WithCapacity(n int) Option {
	return func(l *Logger) {
		if n > 0 {
			l.capacity = n
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(l *Logger) { l.now = now }
}

// WithURL sets the page URL stamped on entries.
func WithURL(url string) Option {
	return func(l *Logger) { l.url = url }
}

// New creates an empty Logger. store may be nil, in which case entries are
// kept in memory only.
func New(store storage.Adapter, trace *zap.Logger, opts ...Option) *Logger {
	l := &Logger{
		capacity: DefaultCapacity,
		store:    store,
		trace:    trace,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	l.trace.Info("🚀 Portfolio logger initialized", zap.Int("capacity", l.capacity))
	return l
}

// LogEvent records an event. It never fails: storage errors are only traced.
// A "url" string in data overrides the logger's page URL.
func (l *Logger) LogEvent(ctx context.Context, eventType string, data map[string]any) {
	if data == nil {
		data = map[string]any{}
	}

	l.mu.Lock()
	now := l.now()
	id := now.UnixMilli()
	if id <= l.lastID {
		id = l.lastID + 1
	}
	l.lastID = id

	url := l.url
	if u, ok := data["url"].(string); ok && u != "" {
		url = u
	}

	l.entries = append(l.entries, Entry{
		ID:        id,
		Timestamp: now.UTC().Format(time.RFC3339Nano),
		EventType: eventType,
		Data:      data,
		URL:       url,
	})
	if len(l.entries) > l.capacity {
		// Copy so the dropped prefix can be collected.
		l.entries = append([]Entry(nil), l.entries[len(l.entries)-l.capacity:]...)
	}
	l.persistLocked(ctx)
	l.mu.Unlock()

	l.trace.Info(Tag(eventType)+" "+eventType, zap.Any("data", data))
}

func (l *Logger) persistLocked(ctx context.Context) {
	if l.store == nil {
		return
	}
	b, err := json.Marshal(l.entries)
	if err != nil {
		l.trace.Warn("could not save logs", zap.Error(errors.Join(storage.ErrSerialization, err)))
		return
	}
	if err := l.store.Set(ctx, storage.KeyLogs, string(b)); err != nil {
		l.trace.Warn("could not save logs", zap.Error(err))
	}
}

// Logs returns a snapshot of the buffer, oldest first.
func (l *Logger) Logs() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len reports the number of buffered entries.
func (l *Logger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Export returns the buffer as indented JSON.
func (l *Logger) Export() (string, error) {
	entries := l.Logs()
	b, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}
