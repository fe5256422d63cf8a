// Package session implements the proof-session lifecycle: the
// generator vectors G, H, G (single), B, Q shared by every proof produced
// against one seed are derived once, from that seed, and are read-only
// for the session's lifetime.
package session

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/vectorfold/ipacore/curve"
	"github.com/vectorfold/ipacore/sampler"
)

// Logger is a thin wrapper around log/slog, matching the
// module-scoped-child-logger style used across the example corpus's own
// production logging package: a base logger that can be narrowed to a
// named component via Module, and extended with fields via With.
type Logger struct {
	base *slog.Logger
}

// NewLogger builds a JSON-to-stderr logger at the given level ("debug",
// "info", "warn", "error"; defaults to info on an unrecognized value).
func NewLogger(level string) *Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	h := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	return &Logger{base: slog.New(h)}
}

// Module returns a child logger tagged with the given component name.
func (l *Logger) Module(name string) *Logger {
	return &Logger{base: l.base.With("module", name)}
}

// With returns a child logger extended with the given key/value pairs.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{base: l.base.With(args...)}
}

func (l *Logger) Debug(msg string, args ...any) { l.base.Debug(msg, args...) }
func (l *Logger) Info(msg string, args ...any)  { l.base.Info(msg, args...) }
func (l *Logger) Warn(msg string, args ...any)  { l.base.Warn(msg, args...) }
func (l *Logger) Error(msg string, args ...any) { l.base.Error(msg, args...) }

var defaultLogger = NewLogger("info")

// Default returns the package-level default logger.
func Default() *Logger { return defaultLogger }

// Config controls session construction.
type Config struct {
	// Seed is the domain-separation root every generator in the session
	// is derived from.
	Seed []byte
	// VectorLen is the length of the vector generator sets G and H
	// (used by zkipa, logipa, logcommit). Must be a power of two for
	// sessions that will drive the logarithmic arguments.
	VectorLen int
	// LogLevel configures the session's logger ("debug", "info", "warn",
	// "error").
	LogLevel string
}

// Session bundles the read-only generator set shared by every proof
// produced under one seed: G[] and H[] (the vector bases ZK-IPA and the
// log arguments fold), plus the three scalar generators G, B, Q used by
// Pedersen commitments, blinding, and inner-product values respectively.
type Session struct {
	Backend curve.Backend
	Config  Config
	Log     *Logger

	Gv, Hv []curve.Point
	G      curve.Point
	B      curve.Point
	Q      curve.Point
}

// New derives a session's generator set from cfg.Seed via the generator
// sampler, domain-separating each generator set with a distinct seed
// suffix so that G, H, G, B, Q have no discoverable algebraic relation to
// one another.
func New(be curve.Backend, cfg Config) (*Session, error) {
	log := NewLogger(cfg.LogLevel).Module("session")

	if cfg.VectorLen <= 0 {
		cfg.VectorLen = 1
	}

	gv, err := sampler.Sample(be, suffix(cfg.Seed, "g"), cfg.VectorLen)
	if err != nil {
		return nil, fmt.Errorf("session: deriving G vector: %w", err)
	}
	hv, err := sampler.Sample(be, suffix(cfg.Seed, "h"), cfg.VectorLen)
	if err != nil {
		return nil, fmt.Errorf("session: deriving H vector: %w", err)
	}
	misc, err := sampler.Sample(be, suffix(cfg.Seed, "scalars"), 3)
	if err != nil {
		return nil, fmt.Errorf("session: deriving scalar generators: %w", err)
	}

	log.Info("session generators derived", "vector_len", cfg.VectorLen, "backend", be.Name())

	return &Session{
		Backend: be,
		Config:  cfg,
		Log:     log,
		Gv:      gv,
		Hv:      hv,
		G:       misc[0],
		B:       misc[1],
		Q:       misc[2],
	}, nil
}

func suffix(seed []byte, tag string) []byte {
	out := make([]byte, 0, len(seed)+1+len(tag))
	out = append(out, seed...)
	out = append(out, '|')
	out = append(out, tag...)
	return out
}
