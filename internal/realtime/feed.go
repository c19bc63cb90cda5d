package realtime

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nuid"

	"github.com/NinaWiik/Tracker-app/pkg/entity"
)

// JetStream is the subset of nats.JetStreamContext the feed needs.
type JetStream interface {
	Publish(subj string, data []byte, opts ...nats.PubOpt) (*nats.PubAck, error)
	Subscribe(subj string, cb nats.MsgHandler, opts ...nats.SubOpt) (*nats.Subscription, error)
}

// Feed publishes row changes and hands out scoped subscriptions to them.
// Delivery is at-least-once and may have gaps across reconnects.
type Feed struct {
	js     JetStream
	prefix string
	logger *slog.Logger
	newID  func() string
}

func NewFeed(js JetStream, prefix string, logger *slog.Logger) *Feed {
	if logger == nil {
		logger = slog.Default()
	}
	return &Feed{
		js:     js,
		prefix: prefix,
		logger: logger.With(slog.String("component", "realtime")),
		newID:  nuid.Next,
	}
}

func (f *Feed) Publish(ctx context.Context, ev entity.ChangeEvent) error {
	if ev.ID == "" {
		ev.ID = f.newID()
	}
	payload, err := Encode(ev)
	if err != nil {
		return err
	}
	_, err = f.js.Publish(Subject(f.prefix, ev.Scope, ev.Kind), payload, nats.Context(ctx), nats.MsgId(ev.ID))
	return err
}

// Subscribe delivers every decoded event of scope to onEvent until the
// returned function is called. Events are not filtered by owner. The
// returned function releases the underlying subscription once; further calls
// do nothing.
func (f *Feed) Subscribe(ctx context.Context, scope entity.Scope, onEvent func(entity.ChangeEvent)) (func(), error) {
	if !scope.Valid() {
		return nil, errors.New("unknown subscription scope: " + string(scope))
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var closed atomic.Bool
	logger := f.logger.With(slog.String("scope", string(scope)))
	sub, err := f.js.Subscribe(ScopeSubject(f.prefix, scope), func(msg *nats.Msg) {
		if closed.Load() {
			return
		}
		ev, err := Decode(msg.Data)
		if err != nil {
			logger.Warn("dropping invalid event", slog.String("subject", msg.Subject), slog.String("error", err.Error()))
			return
		}
		if ev.Scope != scope {
			logger.Warn("dropping event from foreign scope", slog.String("event_scope", string(ev.Scope)))
			return
		}
		onEvent(ev)
	}, nats.DeliverNew())
	if err != nil {
		return nil, err
	}
	var once sync.Once
	return func() {
		once.Do(func() {
			closed.Store(true)
			if sub == nil {
				return
			}
			if err := sub.Unsubscribe(); err != nil && !errors.Is(err, nats.ErrConnectionClosed) {
				logger.Warn("unsubscribe error", slog.String("error", err.Error()))
			}
		})
	}, nil
}
