package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"Warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	if got := FromContext(context.Background()); got != slog.Default() {
		t.Fatal("FromContext without a logger should return slog.Default()")
	}
}

func TestWithStoresLoggerInContext(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, nil))
	ctx := ToContext(context.Background(), base)

	log, ctx := With(ctx, "account", "ETH1001")
	if FromContext(ctx) != log {
		t.Fatal("With did not store the derived logger in the returned context")
	}

	FromContext(ctx).Info("deposit committed")
	if !bytes.Contains(buf.Bytes(), []byte("account=ETH1001")) {
		t.Fatalf("log output %q is missing the account attribute", buf.String())
	}
}

func TestPtermHandlerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewPtermHandler("warn", &buf))

	log.Info("hidden")
	if buf.Len() != 0 {
		t.Fatalf("info line written at warn level: %q", buf.String())
	}
	log.Warn("shown")
	if !bytes.Contains(buf.Bytes(), []byte("shown")) {
		t.Fatalf("warn line missing from output %q", buf.String())
	}
}
