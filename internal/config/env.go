package config

import (
	stderrors "errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// envReader applies set environment variables to config fields and collects
// parse errors. Unset or empty variables leave the field alone.
type envReader struct {
	getenv func(string) string
	errs   []error
}

func (e *envReader) lookup(key string) (string, bool) {
	v := strings.TrimSpace(e.getenv(key))
	return v, v != ""
}

func (e *envReader) fail(key, value string, reason any) {
	e.errs = append(e.errs, fmt.Errorf("%s=%q: %v: %w", key, value, reason, errors.ErrInvalidConfig))
}

func (e *envReader) err() error {
	return stderrors.Join(e.errs...)
}

func (e *envReader) stringVar(key string, dst *string) {
	if v, ok := e.lookup(key); ok {
		*dst = v
	}
}

func (e *envReader) intVar(key string, dst *int) {
	v, ok := e.lookup(key)
	if !ok {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		e.fail(key, v, "not an integer")
		return
	}
	*dst = n
}

func (e *envReader) uint64Var(key string, dst *uint64) {
	v, ok := e.lookup(key)
	if !ok {
		return
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		e.fail(key, v, "not an unsigned integer")
		return
	}
	*dst = n
}

func (e *envReader) durationVar(key string, dst *time.Duration) {
	v, ok := e.lookup(key)
	if !ok {
		return
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		e.fail(key, v, err)
		return
	}
	*dst = d
}

func (e *envReader) boolVar(key string, dst *bool) {
	v, ok := e.lookup(key)
	if !ok {
		return
	}
	switch strings.ToLower(v) {
	case "1", "true", "t", "yes", "y", "on":
		*dst = true
	case "0", "false", "f", "no", "n", "off":
		*dst = false
	default:
		e.fail(key, v, "not a boolean")
	}
}

func (e *envReader) gameModeVar(key string, dst *chess.GameMode) {
	v, ok := e.lookup(key)
	if !ok {
		return
	}
	mode, ok := chess.ParseGameMode(v)
	if !ok {
		e.fail(key, v, errors.ErrInvalidGameMode)
		return
	}
	*dst = mode
}

func (e *envReader) colorVar(key string, dst *chess.Color) {
	v, ok := e.lookup(key)
	if !ok {
		return
	}
	c, ok := chess.ParseColor(v)
	if !ok {
		e.fail(key, v, "not white or black")
		return
	}
	*dst = c
}
