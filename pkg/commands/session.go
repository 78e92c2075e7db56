package commands

import (
	"context"
	"time"

	"github.com/skysort/sceneryctl/pkg/backend"
	"github.com/skysort/sceneryctl/pkg/config"
	"github.com/skysort/sceneryctl/pkg/conflicts"
	"github.com/skysort/sceneryctl/pkg/engine"
	"github.com/skysort/sceneryctl/pkg/logging"
	"github.com/skysort/sceneryctl/pkg/types"
)

// Session bundles a configured engine with its backend for the
// lifetime of one CLI invocation or one TUI run.
type Session struct {
	Config *config.Config
	Engine *engine.Manager
}

// NewSession builds a session against the configured HTTP backend and
// loads the index. CLI verbs run one mutation per invocation, so the
// recompute scheduler is immediate; the TUI builds its own session
// with a debounced scheduler.
func NewSession(ctx context.Context) (*Session, error) {
	cfg := config.Get()
	client := backend.NewClient(cfg.Backend)
	if err := client.Ping(ctx); err != nil {
		return nil, err
	}
	return NewSessionWith(ctx, cfg, client, conflicts.Immediate{})
}

// NewTUISession builds a session whose conflict recomputes are
// debounced, suiting bursts of single-step moves.
func NewTUISession(ctx context.Context) (*Session, error) {
	cfg := config.Get()
	client := backend.NewClient(cfg.Backend)
	if err := client.Ping(ctx); err != nil {
		return nil, err
	}
	sched := conflicts.NewDebounced(time.Duration(cfg.Engine.DebounceMs) * time.Millisecond)
	return NewSessionWith(ctx, cfg, client, sched)
}

// NewSessionWith builds a session over an explicit backend and
// scheduler. Tests inject a MockBackend here.
func NewSessionWith(ctx context.Context, cfg *config.Config, be types.Backend, sched conflicts.Scheduler) (*Session, error) {
	logger := logging.GetLogger("commands.session")

	resolver := conflicts.NewResolver(cfg.Engine.AutoGenPredicate())
	m := engine.New(be, resolver, sched)
	if err := m.Load(ctx); err != nil {
		return nil, err
	}

	logger.Debug().Int("entries", m.Len()).Msg("Session ready")
	return &Session{Config: cfg, Engine: m}, nil
}
