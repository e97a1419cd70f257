package observability

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestWithRenderID(t *testing.T) {
	ctx := context.Background()
	ctx = WithRenderID(ctx, "render-123")

	lc := GetContext(ctx)
	if lc.RenderID != "render-123" {
		t.Errorf("expected render-123, got %s", lc.RenderID)
	}
}

func TestWithDocPath(t *testing.T) {
	ctx := context.Background()
	ctx = WithDocPath(ctx, "guide/intro.html")

	lc := GetContext(ctx)
	if lc.DocPath != "guide/intro.html" {
		t.Errorf("expected guide/intro.html, got %s", lc.DocPath)
	}
}

func TestWithStage(t *testing.T) {
	ctx := context.Background()
	ctx = WithStage(ctx, "render")

	lc := GetContext(ctx)
	if lc.Stage != "render" {
		t.Errorf("expected render, got %s", lc.Stage)
	}
}

func TestMultipleContextValues(t *testing.T) {
	ctx := context.Background()
	ctx = WithRenderID(ctx, "render-1")
	ctx = WithDocPath(ctx, "a/b.html")
	ctx = WithStage(ctx, "render")

	lc := GetContext(ctx)

	if lc.RenderID != "render-1" {
		t.Error("expected render-1")
	}
	if lc.DocPath != "a/b.html" {
		t.Error("expected a/b.html")
	}
	if lc.Stage != "render" {
		t.Error("expected render")
	}
}

func TestNewRenderIDUnique(t *testing.T) {
	a := NewRenderID()
	b := NewRenderID()
	if a == "" || a == b {
		t.Errorf("expected distinct non-empty render ids, got %q and %q", a, b)
	}
}

func TestLogCarriesContextAttrs(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer slog.SetDefault(prev)

	ctx := WithStage(WithRenderID(context.Background(), "render-xyz"), "render")
	InfoContext(ctx, "hello", slog.Int("nodes", 3))

	out := buf.String()
	for _, want := range []string{"render.id=render-xyz", "stage=render", "nodes=3", "hello"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q: %s", want, out)
		}
	}
}
