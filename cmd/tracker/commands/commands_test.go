package commands

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errorvalues "github.com/NinaWiik/Tracker-app/internal/error_values"
	"github.com/NinaWiik/Tracker-app/internal/reconciler"
	"github.com/NinaWiik/Tracker-app/pkg/config"
	"github.com/NinaWiik/Tracker-app/pkg/entity"
	jwtservice "github.com/NinaWiik/Tracker-app/pkg/jwt_service"
)

func TestNewRootCmd(t *testing.T) {
	cmd := NewRootCmd()
	assert.Equal(t, "tracker", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)

	names := make([]string, 0)
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	for _, want := range []string{"watch", "list", "streaks", "add", "complete", "delete"} {
		assert.Contains(t, names, want)
	}
}

func TestRootCmd_GlobalFlags(t *testing.T) {
	cmd := NewRootCmd()
	tests := []struct {
		flagName string
		defValue string
	}{
		{"token", ""},
		{"json", "false"},
		{"debug", "false"},
	}
	for _, tt := range tests {
		t.Run(tt.flagName, func(t *testing.T) {
			flag := cmd.PersistentFlags().Lookup(tt.flagName)
			require.NotNil(t, flag, "--%s flag not found", tt.flagName)
			assert.Equal(t, tt.defValue, flag.DefValue)
		})
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestAddRejectsInvalidForm(t *testing.T) {
	testCases := []struct {
		Desc string
		Args []string
	}{
		{Desc: "missing title", Args: []string{"add", "--description", "20 pages"}},
		{Desc: "blank description", Args: []string{"add", "--title", "Read", "--description", "  "}},
		{Desc: "unknown frequency", Args: []string{"add", "--title", "Read", "--description", "20 pages", "--frequency", "hourly"}},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			_, err := execute(t, tc.Args...)
			require.Error(t, err)
			assert.Equal(t, "Please fill in all fields", err.Error())
		})
	}
}

func TestCommandsRequireSession(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("SESSION_TOKEN", "")
	t.Setenv("LOG_LEVEL", "error")
	for _, args := range [][]string{
		{"list"},
		{"streaks"},
		{"complete", "h1"},
		{"delete", "h1"},
		{"list", "--token", "not-a-jwt"},
	} {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			_, err := execute(t, args...)
			require.Error(t, err)
			assert.Equal(t, "You must be logged in to do that", err.Error())
		})
	}
}

func TestActionArgs(t *testing.T) {
	_, err := execute(t, "complete")
	assert.Error(t, err)
	_, err = execute(t, "delete", "a", "b")
	assert.Error(t, err)
}

func TestNewSession(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := jwtservice.New("test-secret").GenerateToken("u1", "u1@example.com")
	require.NoError(t, err)

	t.Run("from env", func(t *testing.T) {
		t.Setenv("SESSION_TOKEN", token)
		flags.token = ""
		session, err := newSession(config.Load())
		require.NoError(t, err)
		owner, ok := session.OwnerID()
		assert.True(t, ok)
		assert.Equal(t, "u1", owner)
	})
	t.Run("flag wins", func(t *testing.T) {
		t.Setenv("SESSION_TOKEN", "garbage")
		flags.token = token
		defer func() { flags.token = "" }()
		_, err := newSession(config.Load())
		assert.NoError(t, err)
	})
	t.Run("wrong secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "other-secret")
		t.Setenv("SESSION_TOKEN", token)
		flags.token = ""
		_, err := newSession(config.Load())
		assert.ErrorIs(t, err, errorvalues.ErrAuthRequired)
	})
}

func sampleSnapshot() reconciler.Snapshot {
	at := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	return reconciler.Snapshot{
		State:   reconciler.StateReady,
		OwnerID: "u1",
		Habits: []entity.Habit{
			{ID: "h1", UserID: "u1", Title: "Read", Frequency: entity.FrequencyDaily, StreakCount: 4, CreatedAt: at},
			{ID: "h2", UserID: "u1", Title: "Swim", Frequency: entity.FrequencyWeekly, CreatedAt: at},
		},
		CompletedToday: []string{"h1"},
	}
}

func TestPrintHabits(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, printHabits(&out, sampleSnapshot(), false))
		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		require.Len(t, lines, 3)
		assert.Contains(t, lines[1], "[x]")
		assert.Contains(t, lines[1], "Read")
		assert.Contains(t, lines[1], "Daily")
		assert.Contains(t, lines[2], "[ ]")
		assert.Contains(t, lines[2], "Weekly")
	})
	t.Run("json", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, printHabits(&out, sampleSnapshot(), true))
		var rows []map[string]any
		require.NoError(t, sonic.Unmarshal(out.Bytes(), &rows))
		require.Len(t, rows, 2)
		assert.Equal(t, "h1", rows[0]["id"])
		assert.Equal(t, true, rows[0]["completed_today"])
		assert.Equal(t, float64(4), rows[0]["streak_count"])
		assert.Equal(t, false, rows[1]["completed_today"])
	})
	t.Run("empty", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, printHabits(&out, reconciler.Snapshot{}, false))
		assert.Equal(t, "No habits yet.\n", out.String())
	})
}

func TestPrintStreaks(t *testing.T) {
	streaks := []entity.HabitStreak{
		{Habit: entity.Habit{ID: "h1", Title: "Read"}, HabitStats: entity.HabitStats{Current: 2, Best: 5, Total: 9}},
		{Habit: entity.Habit{ID: "h2", Title: "Swim"}, HabitStats: entity.HabitStats{Current: 1, Best: 1, Total: 1}},
	}
	var out bytes.Buffer
	require.NoError(t, printStreaks(&out, streaks, false))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, []string{"1", "Read", "2", "5", "9"}, strings.Fields(lines[1]))

	out.Reset()
	require.NoError(t, printStreaks(&out, streaks, true))
	var decoded []map[string]any
	require.NoError(t, sonic.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, float64(5), decoded[0]["best_streak"])
}

func TestUserError(t *testing.T) {
	testCases := []struct {
		Desc     string
		Err      error
		Expected string
	}{
		{Desc: "store", Err: fmt.Errorf("%w: timeout", errorvalues.ErrStore), Expected: "Couldn't reach the server, please try again"},
		{Desc: "already completed", Err: errorvalues.ErrAlreadyCompleted, Expected: "This habit is already completed for today"},
		{Desc: "not found", Err: errorvalues.ErrHabitNotFound, Expected: "Habit not found"},
		{Desc: "passthrough", Err: errors.New(`unknown flag: --nope`), Expected: "unknown flag: --nope"},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			assert.EqualError(t, userError(tc.Err), tc.Expected)
		})
	}
	assert.NoError(t, userError(nil))
}
