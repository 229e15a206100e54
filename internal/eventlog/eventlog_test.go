package eventlog

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Zachkp/portfolio/internal/storage"
)

// fixedClock returns the same instant on every call so ids exercise the
// monotonic bump.
func fixedClock() func() time.Time {
	t0 := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time { return t0 }
}

func TestLogEvent_BoundedBuffer(t *testing.T) {
	const n, k = 5, 3
	l := New(storage.NewMemory(0), zap.NewNop(), WithCapacity(n))

	for i := 0; i < n+k; i++ {
		l.LogEvent(context.Background(), ButtonClick, map[string]any{"i": i})
	}

	logs := l.Logs()
	require.Len(t, logs, n)
	for j, e := range logs {
		assert.Equal(t, k+j, e.Data["i"], "entry %d should be append #%d", j, k+j)
	}
}

func TestLogEvent_NeverExceedsCapacity(t *testing.T) {
	l := New(nil, zap.NewNop(), WithCapacity(3))
	for i := 0; i < 20; i++ {
		l.LogEvent(context.Background(), Scroll, nil)
		assert.LessOrEqual(t, l.Len(), 3)
	}
}

func TestLogEvent_EntryFields(t *testing.T) {
	l := New(nil, zap.NewNop(), WithClock(fixedClock()), WithURL("https://example.dev/"))

	l.LogEvent(context.Background(), PageLoad, nil)
	l.LogEvent(context.Background(), PageLoad, map[string]any{"url": "https://example.dev/#about"})

	logs := l.Logs()
	require.Len(t, logs, 2)

	first := logs[0]
	assert.Equal(t, PageLoad, first.EventType)
	assert.Equal(t, "2024-05-01T12:00:00Z", first.Timestamp)
	assert.Equal(t, "https://example.dev/", first.URL)
	assert.NotNil(t, first.Data, "nil data is recorded as an empty mapping")

	assert.Equal(t, "https://example.dev/#about", logs[1].URL)
	assert.Greater(t, logs[1].ID, first.ID, "ids stay monotonic when the clock stalls")
}

func TestLogEvent_MirrorsToStorage(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory(0)
	l := New(store, zap.NewNop(), WithCapacity(2))

	l.LogEvent(ctx, SliderChange, map[string]any{"slideNumber": 1})
	l.LogEvent(ctx, SliderChange, map[string]any{"slideNumber": 2})
	l.LogEvent(ctx, SliderChange, map[string]any{"slideNumber": 3})

	raw, ok, err := store.Get(ctx, storage.KeyLogs)
	require.NoError(t, err)
	require.True(t, ok)

	var stored []Entry
	require.NoError(t, json.Unmarshal([]byte(raw), &stored))
	require.Len(t, stored, 2)
	assert.Equal(t, float64(2), stored[0].Data["slideNumber"])
	assert.Equal(t, float64(3), stored[1].Data["slideNumber"])
}

func TestLogEvent_StorageFailureIsOnlyTraced(t *testing.T) {
	core, recorded := observer.New(zapcore.WarnLevel)
	l := New(storage.NewMemory(10), zap.New(core))

	assert.NotPanics(t, func() {
		l.LogEvent(context.Background(), FormSubmit, map[string]any{"formType": "contact"})
	})

	assert.Equal(t, 1, l.Len(), "entry is kept in memory even when storage rejects it")
	warnings := recorded.FilterMessage("could not save logs").All()
	require.Len(t, warnings, 1)
}

func TestLogEvent_UnserializableData(t *testing.T) {
	core, recorded := observer.New(zapcore.WarnLevel)
	store := storage.NewMemory(0)
	l := New(store, zap.New(core))

	l.LogEvent(context.Background(), Error, map[string]any{"reason": make(chan int)})

	assert.Equal(t, 1, l.Len())
	warnings := recorded.FilterMessage("could not save logs").All()
	require.Len(t, warnings, 1)
	require.NotEmpty(t, warnings[0].Context)
	err, _ := warnings[0].Context[0].Interface.(error)
	assert.ErrorIs(t, err, storage.ErrSerialization)
	_, ok, _ := store.Get(context.Background(), storage.KeyLogs)
	assert.False(t, ok)
}

func TestExport_MatchesLogs(t *testing.T) {
	l := New(nil, zap.NewNop(), WithCapacity(4))
	for i := 0; i < 6; i++ {
		l.LogEvent(context.Background(), NavigationClick, map[string]any{"targetSection": fmt.Sprintf("s%d", i)})
	}

	out, err := l.Export()
	require.NoError(t, err)
	assert.Contains(t, out, "\n  {", "export is indented with two spaces")

	var parsed []Entry
	require.NoError(t, json.Unmarshal([]byte(out), &parsed))
	assert.Equal(t, l.Logs(), parsed)
}

func TestExport_Empty(t *testing.T) {
	l := New(nil, zap.NewNop())
	out, err := l.Export()
	require.NoError(t, err)
	assert.Equal(t, "[]", out)
}

func TestLogs_IsSnapshot(t *testing.T) {
	l := New(nil, zap.NewNop())
	l.LogEvent(context.Background(), PageLoad, nil)

	snap := l.Logs()
	l.LogEvent(context.Background(), PageLoad, nil)

	assert.Len(t, snap, 1)
	assert.Len(t, l.Logs(), 2)
}

func TestTag(t *testing.T) {
	assert.Equal(t, "🎠", Tag(SliderChange))
	assert.Equal(t, "📍", Tag(LocationAccess))
	assert.Equal(t, "📋", Tag(EducationAction))
	assert.Equal(t, "📋", Tag("something_new"))
}

func TestLogEvent_TraceLine(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)
	l := New(nil, zap.New(core))

	l.LogEvent(context.Background(), MapInteraction, map[string]any{"action": "clicked"})

	lines := recorded.FilterMessage("🗺️ map_interaction").All()
	require.Len(t, lines, 1)
	assert.Equal(t, map[string]any{"action": "clicked"}, lines[0].ContextMap()["data"])
}
