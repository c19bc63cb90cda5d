package realtime_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NinaWiik/Tracker-app/internal/realtime"
)

// Nothing listens on port 1, so every dial is refused right away.
const unreachable = "nats://127.0.0.1:1"

func TestConnectWithRetry(t *testing.T) {
	testCases := []struct {
		Desc    string
		Timeout time.Duration
	}{
		{Desc: "zero timeout dials once", Timeout: 0},
		{Desc: "retries until deadline", Timeout: 1200 * time.Millisecond},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			start := time.Now()
			client, err := realtime.ConnectWithRetry(unreachable, "TRACKER_TEST", "tracker.test", tc.Timeout)
			require.Error(t, err)
			assert.Nil(t, client)
			assert.NotContains(t, err.Error(), "%!w")
			assert.Contains(t, err.Error(), "connect jetstream timeout")
			assert.Less(t, time.Since(start), tc.Timeout+5*time.Second)
		})
	}
}
