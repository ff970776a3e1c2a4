package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLevels(t *testing.T) {
	log, err := New(Options{Level: "warn", Quiet: true})
	require.NoError(t, err)
	assert.Equal(t, logrus.WarnLevel, log.GetLevel())

	log, err = New(Options{Level: "warn", Development: true, Quiet: true})
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())

	_, err = New(Options{Level: "loud"})
	assert.Error(t, err)
}

func TestNewWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sweeper.log")
	log, err := New(Options{File: path, Quiet: true})
	require.NoError(t, err)

	log.WithField("cell", "3:3").Info("stepped on a mine")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "stepped on a mine")
	assert.Contains(t, string(data), `"cell":"3:3"`)
}

func TestBridgeKeepsLevels(t *testing.T) {
	tests := []struct {
		name  string
		level logrus.Level
		want  []logrus.Level
	}{
		{"info", logrus.InfoLevel, []logrus.Level{logrus.InfoLevel, logrus.WarnLevel}},
		{"debug", logrus.DebugLevel, []logrus.Level{logrus.DebugLevel, logrus.InfoLevel, logrus.WarnLevel}},
		{"error", logrus.ErrorLevel, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			log, hook := test.NewNullLogger()
			log.SetLevel(tc.level)

			slogger := Bridge(log)
			slogger.Debug("revealing", "row", 1)
			slogger.Info("game lost", "row", 3)
			slogger.Warn("odd click")

			var got []logrus.Level
			for _, e := range hook.AllEntries() {
				got = append(got, e.Level)
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestBridgeFields(t *testing.T) {
	log, hook := test.NewNullLogger()

	slogger := Bridge(log).With("component", "board").WithGroup("cell")
	slogger.Info("game lost", slog.Int("row", 3), slog.Group("pos", slog.Float64("x", 1.5)))

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, "game lost", entry.Message)
	assert.Equal(t, logrus.Fields{
		"component":  "board",
		"cell.row":   int64(3),
		"cell.pos.x": 1.5,
	}, entry.Data)
}
