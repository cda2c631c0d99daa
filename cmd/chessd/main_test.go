package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"strings"
	"testing"
	"time"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
)

func TestParseFlags(t *testing.T) {
	cfg := config.NewConfig()
	var stderr bytes.Buffer
	opts, err := parseFlags(cfg, []string{
		"-addr", "127.0.0.1:9090",
		"-mode", "human_vs_ai",
		"-ai-color", "w",
		"-seed", "5",
		"-read-timeout", "2s",
		"-log-level", "debug",
	}, &stderr)
	if err != nil {
		t.Fatalf("parseFlags() error = %v", err)
	}

	if opts.version {
		t.Error("version set without -version")
	}
	if cfg.Server.Addr != "127.0.0.1:9090" {
		t.Errorf("Addr = %q", cfg.Server.Addr)
	}
	if cfg.Game.Mode != chess.HumanVsAI || cfg.Game.AIColor != chess.White || cfg.Game.Seed != 5 {
		t.Errorf("Game = %+v", *cfg.Game)
	}
	if cfg.Server.ReadTimeout != 2*time.Second {
		t.Errorf("ReadTimeout = %v; want 2s", cfg.Server.ReadTimeout)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q; want debug", cfg.Log.Level)
	}
}

func TestParseFlags_KeepsExistingValues(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Server.Addr = ":7777" // as if from CHESS_ADDR
	if _, err := parseFlags(cfg, nil, &bytes.Buffer{}); err != nil {
		t.Fatalf("parseFlags() error = %v", err)
	}
	if cfg.Server.Addr != ":7777" {
		t.Errorf("Addr = %q; want the value set before parsing", cfg.Server.Addr)
	}
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"bad mode", []string{"-mode", "blitz"}},
		{"bad color", []string{"-ai-color", "green"}},
		{"bad duration", []string{"-read-timeout", "soon"}},
		{"unknown flag", []string{"-nope"}},
		{"positional", []string{"extra"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseFlags(config.NewConfig(), tt.args, &bytes.Buffer{}); err == nil {
				t.Errorf("parseFlags(%v) = nil error", tt.args)
			}
		})
	}
}

func TestRun_Help(t *testing.T) {
	var stderr bytes.Buffer
	err := run(context.Background(), []string{"-h"}, &bytes.Buffer{}, &stderr)
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("run(-h) = %v; want flag.ErrHelp", err)
	}
	if !strings.Contains(stderr.String(), "Usage: chessd") {
		t.Errorf("usage not printed:\n%s", stderr.String())
	}
}

func TestRun_Version(t *testing.T) {
	var stdout bytes.Buffer
	if err := run(context.Background(), []string{"-version"}, &stdout, &bytes.Buffer{}); err != nil {
		t.Fatalf("run(-version) = %v", err)
	}
	if got := stdout.String(); got != "chessd version "+programVersion+"\n" {
		t.Errorf("version output = %q", got)
	}
}

func TestRun_InvalidConfig(t *testing.T) {
	err := run(context.Background(), []string{"-read-timeout", "0s"}, &bytes.Buffer{}, &bytes.Buffer{})
	if !chesserrors.Is(err, chesserrors.ErrInvalidConfig) {
		t.Errorf("run() = %v; want ErrInvalidConfig", err)
	}
}

func TestRun_Shutdown(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- run(ctx, []string{"-addr", "127.0.0.1:0", "-log-level", "error"}, &bytes.Buffer{}, &bytes.Buffer{})
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("run() after cancel = %v; want nil", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("run() did not return after cancel")
	}
}
