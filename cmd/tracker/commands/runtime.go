package commands

import (
	"context"
	"fmt"
	"log/slog"

	errorvalues "github.com/NinaWiik/Tracker-app/internal/error_values"
	"github.com/NinaWiik/Tracker-app/internal/realtime"
	"github.com/NinaWiik/Tracker-app/internal/reconciler"
	"github.com/NinaWiik/Tracker-app/internal/repository"
	"github.com/NinaWiik/Tracker-app/internal/store"
	"github.com/NinaWiik/Tracker-app/pkg/cleanup"
	"github.com/NinaWiik/Tracker-app/pkg/config"
	jwtservice "github.com/NinaWiik/Tracker-app/pkg/jwt_service"
	"github.com/NinaWiik/Tracker-app/pkg/logging"
	"github.com/NinaWiik/Tracker-app/pkg/pgpool"
)

// runtime is everything a command needs to talk to the store.
type runtime struct {
	logger  *slog.Logger
	session *jwtservice.Session
	store   *store.Client
}

func newLogger(cfg *config.Config) *slog.Logger {
	logger := logging.New(logging.Config{
		Level: cfg.GetStringOr("LOG_LEVEL", "info"),
		File:  cfg.GetString("LOG_FILE"),
		Debug: flags.debug || cfg.GetBool("DEBUG", false),
	})
	slog.SetDefault(logger)
	return logger
}

// newSession resolves the session token. It fails with ErrAuthRequired before
// anything is dialed when nobody is signed in.
func newSession(cfg *config.Config) (*jwtservice.Session, error) {
	token := flags.token
	if token == "" {
		token = cfg.GetString("SESSION_TOKEN")
	}
	session := jwtservice.NewSession(jwtservice.New(cfg.GetString("JWT_SECRET")), token)
	if _, ok := session.OwnerID(); !ok {
		return nil, errorvalues.ErrAuthRequired
	}
	return session, nil
}

func openRuntime(ctx context.Context) (*runtime, error) {
	cfg := config.New()
	logger := newLogger(cfg)

	session, err := newSession(cfg)
	if err != nil {
		return nil, err
	}

	pool, err := pgpool.New(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errorvalues.ErrStore, err)
	}
	if err = repository.EnsureSchema(ctx, pool); err != nil {
		return nil, err
	}

	nc, err := realtime.ConnectWithRetry(cfg.NATSURL(), cfg.StreamName(), cfg.SubjectPrefix(), cfg.NATSConnectTimeout())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errorvalues.ErrStore, err)
	}
	cleanup.Register(&cleanup.Job{
		Name: "draining nats connection",
		F:    nc.Close,
	})

	feed := realtime.NewFeed(nc.JS, cfg.SubjectPrefix(), logger)
	client := store.NewClient(
		repository.NewHabitsRepo(pool),
		repository.NewCompletionsRepo(pool),
		feed,
		store.WithLogger(logger),
		store.WithTimeout(cfg.StoreTimeout()),
	)
	return &runtime{logger: logger, session: session, store: client}, nil
}

// mount builds a reconciler, mounts it and arranges for it to be unmounted on
// cleanup.
func (rt *runtime) mount(ctx context.Context, opts ...reconciler.Option) (*reconciler.Reconciler, error) {
	opts = append([]reconciler.Option{reconciler.WithLogger(rt.logger)}, opts...)
	rec := reconciler.New(rt.store, rt.session, opts...)
	if err := rec.Mount(ctx); err != nil {
		rec.Unmount()
		return nil, err
	}
	cleanup.Register(&cleanup.Job{
		Name: "unmounting reconciler",
		F: func() error {
			rec.Unmount()
			return nil
		},
	})
	return rec, nil
}
