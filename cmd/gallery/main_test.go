package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/acmgallery/gallery/internal/config"
	"github.com/acmgallery/gallery/pkg/session"
	"github.com/rs/zerolog"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	// Flags are package globals; reset them between runs
	renderOut, renderPage, renderFilter, renderCatalog, renderItemsPerPage = "-", 0, "All", "", 2

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRenderCommand_Stdout(t *testing.T) {
	out, err := runCLI(t, "render", "--page", "2", "--filter", "events")
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	if !strings.Contains(out, "translateX(-200%)") {
		t.Error("Expected third carousel page")
	}
	if !strings.Contains(out, `aria-pressed="true">Events</button>`) {
		t.Error("Expected Events highlighted")
	}
}

func TestRenderCommand_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.html")

	if _, err := runCLI(t, "render", "--out", path); err != nil {
		t.Fatalf("render failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !strings.Contains(string(data), "<h1") || !strings.Contains(string(data), "Gallery") {
		t.Error("Expected gallery page in output file")
	}
}

func TestRenderCommand_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"page out of range", []string{"render", "--page", "3"}},
		{"unknown filter", []string{"render", "--filter", "Workshops"}},
		{"invalid page size", []string{"render", "--items-per-page", "0"}},
		{"missing catalog", []string{"render", "--catalog", "/nonexistent/catalog.yaml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := runCLI(t, tt.args...); err == nil {
				t.Error("Expected error")
			}
		})
	}
}

func TestNewStore_Memory(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.Default()
	store, closeStore, err := newStore(ctx, cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("newStore failed: %v", err)
	}
	defer closeStore()

	if _, ok := store.(*session.MemoryStore); !ok {
		t.Errorf("Expected *session.MemoryStore, got %T", store)
	}
}

func TestNewStore_RedisUnavailable(t *testing.T) {
	cfg := config.Default()
	cfg.RedisURL = "127.0.0.1:1"

	if _, _, err := newStore(context.Background(), cfg, zerolog.Nop()); err == nil {
		t.Error("Expected error for unreachable Redis")
	}
}

func TestSweep(t *testing.T) {
	store := session.NewMemoryStore()
	ctx := context.Background()

	if err := store.Save(ctx, session.Key{SessionID: "old"}, &session.ViewState{Expires: time.Now().Add(10 * time.Millisecond)}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	sweepCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		sweep(sweepCtx, store, 20*time.Millisecond)
		close(done)
	}()

	deadline := time.Now().Add(2 * time.Second)
	for store.Len() != 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	cancel()
	<-done

	if store.Len() != 0 {
		t.Errorf("Expected expired session swept, %d remaining", store.Len())
	}
}
