package realtime

import (
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
)

// EnsureStream creates (or validates) the stream that keeps row change events
// under prefix.>.
func EnsureStream(js nats.JetStreamContext, name, prefix string) error {
	if _, err := js.StreamInfo(name); err != nil {
		if !errors.Is(err, nats.ErrStreamNotFound) {
			return err
		}
		if _, addErr := js.AddStream(&nats.StreamConfig{
			Name:      name,
			Subjects:  []string{prefix + ".>"},
			Retention: nats.LimitsPolicy,
			Storage:   nats.FileStorage,
			Replicas:  1,
			MaxAge:    24 * time.Hour,
		}); addErr != nil {
			return addErr
		}
	}
	return nil
}

type Client struct {
	Conn *nats.Conn
	JS   nats.JetStreamContext
}

func Connect(url, stream, prefix string) (*Client, error) {
	conn, err := nats.Connect(url, nats.Name("tracker"))
	if err != nil {
		return nil, err
	}
	js, err := conn.JetStream()
	if err != nil {
		_ = conn.Drain()
		conn.Close()
		return nil, err
	}
	if err := EnsureStream(js, stream, prefix); err != nil {
		_ = conn.Drain()
		conn.Close()
		return nil, err
	}
	return &Client{Conn: conn, JS: js}, nil
}

const retryInterval = 500 * time.Millisecond

// ConnectWithRetry dials until it succeeds or timeout runs out. It always
// makes at least one attempt.
func ConnectWithRetry(url, stream, prefix string, timeout time.Duration) (*Client, error) {
	deadline := time.Now().Add(timeout)
	for {
		client, err := Connect(url, stream, prefix)
		if err == nil {
			return client, nil
		}
		if time.Now().Add(retryInterval).After(deadline) {
			return nil, fmt.Errorf("connect jetstream timeout after %s: %w", timeout, err)
		}
		time.Sleep(retryInterval)
	}
}

func (c *Client) Close() error {
	if c == nil || c.Conn == nil {
		return nil
	}
	err := c.Conn.Drain()
	c.Conn.Close()
	return err
}
