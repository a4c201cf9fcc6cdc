package observability

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testHandler captures log records for testing.
type testHandler struct {
	buf   *bytes.Buffer
	level slog.Level
	attrs []slog.Attr
}

func newTestHandler() *testHandler {
	return &testHandler{
		buf:   &bytes.Buffer{},
		level: slog.LevelDebug,
	}
}

func (h *testHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *testHandler) Handle(_ context.Context, r slog.Record) error {
	data := map[string]any{
		"level": r.Level.String(),
		"msg":   r.Message,
	}
	for _, attr := range h.attrs {
		data[attr.Key] = attr.Value.Any()
	}
	r.Attrs(func(a slog.Attr) bool {
		data[a.Key] = a.Value.Any()
		return true
	})
	return json.NewEncoder(h.buf).Encode(data)
}

func (h *testHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newH := &testHandler{
		buf:   h.buf,
		level: h.level,
		attrs: make([]slog.Attr, len(h.attrs)+len(attrs)),
	}
	copy(newH.attrs, h.attrs)
	copy(newH.attrs[len(h.attrs):], attrs)
	return newH
}

func (h *testHandler) WithGroup(_ string) slog.Handler {
	return h
}

// records decodes every captured record.
func (h *testHandler) records(t *testing.T) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(h.buf.String()), "\n") {
		if line == "" {
			continue
		}
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		out = append(out, rec)
	}
	return out
}

func TestEnrichLogger(t *testing.T) {
	t.Run("adds run and node fields", func(t *testing.T) {
		h := newTestHandler()
		logger := EnrichLogger(slog.New(h), "run-123", "security.tls")
		logger.Info("resolving input")

		recs := h.records(t)
		require.Len(t, recs, 1)
		assert.Equal(t, "run-123", recs[0]["run_id"])
		assert.Equal(t, "security.tls", recs[0]["node"])
	})

	t.Run("nil logger stays nil", func(t *testing.T) {
		assert.Nil(t, EnrichLogger(nil, "run-123", "x"))
	})
}

func TestLogPassLifecycle(t *testing.T) {
	h := newTestHandler()
	logger := slog.New(h)

	LogPassStart(logger, "run-1", "rest-service")
	LogPassComplete(logger, "run-1", 42.5, 7, 2)

	recs := h.records(t)
	require.Len(t, recs, 2)

	assert.Equal(t, "scaffold pass starting", recs[0]["msg"])
	assert.Equal(t, "rest-service", recs[0]["archetype"])

	assert.Equal(t, "scaffold pass completed", recs[1]["msg"])
	assert.Equal(t, float64(7), recs[1]["nodes_included"])
	assert.Equal(t, float64(2), recs[1]["nodes_excluded"])
}

func TestLogPassError(t *testing.T) {
	h := newTestHandler()

	LogPassError(slog.New(h), "run-1", errors.New("guard failed"), 10)

	recs := h.records(t)
	require.Len(t, recs, 1)
	assert.Equal(t, "ERROR", recs[0]["level"])
	assert.Equal(t, "guard failed", recs[0]["error"])
}

func TestLogGuard(t *testing.T) {
	h := newTestHandler()

	LogGuard(slog.New(h), "output certs", `${security.tls} == true`, false)

	recs := h.records(t)
	require.Len(t, recs, 1)
	assert.Equal(t, "guard evaluated", recs[0]["msg"])
	assert.Equal(t, false, recs[0]["included"])
	assert.Equal(t, `${security.tls} == true`, recs[0]["expression"])
}

func TestLogBindAndPrompt(t *testing.T) {
	h := newTestHandler()
	logger := slog.New(h)

	LogBind(logger, "app.name", "'shop'")
	LogPrompt(logger, "app.name", "text", "answers")

	recs := h.records(t)
	require.Len(t, recs, 2)
	assert.Equal(t, "context value bound", recs[0]["msg"])
	assert.Equal(t, "'shop'", recs[0]["value"])
	assert.Equal(t, "input resolved", recs[1]["msg"])
	assert.Equal(t, "answers", recs[1]["source"])
}

func TestLogRender(t *testing.T) {
	h := newTestHandler()

	LogRender(slog.New(h), "main.go.tmpl", "cmd/shop/main.go")

	recs := h.records(t)
	require.Len(t, recs, 1)
	assert.Equal(t, "file rendered", recs[0]["msg"])
	assert.Equal(t, "cmd/shop/main.go", recs[0]["target"])
}

func TestLogFunctions_NilLogger(t *testing.T) {
	assert.NotPanics(t, func() {
		LogPassStart(nil, "run-1", "x")
		LogPassComplete(nil, "run-1", 0, 0, 0)
		LogPassError(nil, "run-1", errors.New("x"), 0)
		LogGuard(nil, "n", "e", true)
		LogBind(nil, "p", "v")
		LogPrompt(nil, "p", "text", "answers")
		LogRender(nil, "s", "t")
	})
}

func TestTimedOperation(t *testing.T) {
	done := TimedOperation()
	time.Sleep(5 * time.Millisecond)
	elapsed := done()

	assert.GreaterOrEqual(t, elapsed, float64(0))
}
