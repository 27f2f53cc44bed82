package app

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/five82/shopflow/internal/catalog"
	"github.com/five82/shopflow/internal/shop"
)

func TestStartLoad_PopulatesStore(t *testing.T) {
	vm := shop.New(shop.Options{Source: catalog.Sample()})
	defer vm.Close()

	StartLoad(context.Background(), vm, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))

	snap := vm.Store().Snapshot()
	if snap.IsLoading {
		t.Fatalf("IsLoading = true after StartLoad")
	}
	if len(snap.Products) != 6 {
		t.Fatalf("len(Products) = %d, want 6", len(snap.Products))
	}
}

func TestStartLoad_LogsFailure(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	vm := shop.New(shop.Options{Source: catalog.SourceFunc(func(context.Context) (catalog.Catalog, error) {
		return catalog.Catalog{}, errors.New("no catalog")
	})})
	defer vm.Close()

	StartLoad(context.Background(), vm, logger)

	if !strings.Contains(buf.String(), "catalog unavailable") {
		t.Fatalf("log = %q, want it to mention catalog unavailable", buf.String())
	}
	if errs := vm.Store().Snapshot().Errors; len(errs) != 1 {
		t.Fatalf("Errors = %#v, want one entry", errs)
	}
}

func TestResolveConfig_FlagsOverrideFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("catalog_path = \"/srv/a.toml\"\nlog_level = \"warn\"\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := resolveConfig(Options{ConfigPath: path, CatalogPath: "/srv/b.toml", LogLevel: "debug"})
	if err != nil {
		t.Fatalf("resolveConfig returned error: %v", err)
	}
	if cfg.CatalogPath != "/srv/b.toml" {
		t.Fatalf("CatalogPath = %q, want /srv/b.toml", cfg.CatalogPath)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Fatalf("LogLevel = %v, want DEBUG", cfg.LogLevel)
	}
	if _, ok := sourceFor(cfg).(catalog.FileSource); !ok {
		t.Fatalf("sourceFor = %T, want catalog.FileSource", sourceFor(cfg))
	}
}

func TestResolveConfig_BadLevel(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	if _, err := resolveConfig(Options{LogLevel: "chatty"}); err == nil {
		t.Fatalf("resolveConfig returned nil error for bad log level")
	}
}

func TestOpenLogger_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "shopflow.log")
	logger, closeLog, err := openLogger(path, slog.LevelInfo)
	if err != nil {
		t.Fatalf("openLogger returned error: %v", err)
	}
	logger.Debug("hidden")
	logger.Info("visible")
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "visible") || strings.Contains(string(data), "hidden") {
		t.Fatalf("log file = %q, want only info records", data)
	}
}
