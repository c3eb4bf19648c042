package logs

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestMultiHandlerFanOut(t *testing.T) {
	var first, second bytes.Buffer
	h := &multiHandler{handlers: []slog.Handler{
		slog.NewJSONHandler(&first, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewJSONHandler(&second, &slog.HandlerOptions{Level: slog.LevelInfo}),
	}}

	logger := slog.New(h).With(slog.String("service", "nobat_backend"))
	logger.Info("appointment booked", "slot", "09:00")

	for name, buf := range map[string]*bytes.Buffer{"first": &first, "second": &second} {
		var entry map[string]any
		if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
			t.Fatalf("%s sink output is not JSON: %v", name, err)
		}
		if entry["msg"] != "appointment booked" {
			t.Errorf("%s sink msg = %v, want %q", name, entry["msg"], "appointment booked")
		}
		if entry["service"] != "nobat_backend" {
			t.Errorf("%s sink lost the service attr, got %v", name, entry["service"])
		}
		if entry["slot"] != "09:00" {
			t.Errorf("%s sink slot = %v, want 09:00", name, entry["slot"])
		}
	}
}

func TestMultiHandlerRespectsSinkLevels(t *testing.T) {
	var debugOut, warnOut bytes.Buffer
	h := &multiHandler{handlers: []slog.Handler{
		slog.NewTextHandler(&debugOut, &slog.HandlerOptions{Level: slog.LevelDebug}),
		slog.NewTextHandler(&warnOut, &slog.HandlerOptions{Level: slog.LevelWarn}),
	}}

	if !h.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("expected fan-out to be enabled at debug while one sink accepts it")
	}

	slog.New(h).Debug("cache warmed")

	if !strings.Contains(debugOut.String(), "cache warmed") {
		t.Error("debug sink did not receive the record")
	}
	if warnOut.Len() != 0 {
		t.Errorf("warn sink received a debug record: %q", warnOut.String())
	}
}
