package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return records
}

func TestCollector(t *testing.T) {
	c := NewCollector()
	c.Start(1)
	c.AddRoll()
	c.AddRoll()
	c.AddTurn()

	metric := c.Complete(0)
	require.Equal(t, 1, metric.StartingPlayer)
	require.Equal(t, 0, metric.Winner)
	require.Equal(t, 2, metric.Rolls)
	require.Equal(t, 1, metric.Turns)
	require.True(t, metric.Finished())
	require.False(t, metric.EndTime.Before(metric.StartTime))

	c.Start(0)
	require.Equal(t, 0, c.Complete(-1).Rolls, "Start should reset the counters")
}

func TestWriter(t *testing.T) {
	root := t.TempDir()
	w, err := NewWriter(root, "experiment")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(root, "experiment"), filepath.Dir(w.Dir()))

	t.Run("agent configs", func(t *testing.T) {
		require.NoError(t, w.WriteAgentConfigs([]AgentConfig{
			{ID: 1, Name: "solved"},
			{ID: 2, Name: "sampling-t0.5", Temperature: 0.5},
		}))

		records := readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv"))
		require.Equal(t, []string{"id", "name", "threshold", "temperature", "episodes"}, records[0])
		require.Equal(t, []string{"2", "sampling-t0.5", "0", "0.5", "0"}, records[2])
	})

	t.Run("game records", func(t *testing.T) {
		start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		require.NoError(t, w.WriteGameRecords([]GameRecord{{
			ID:     1,
			Agent1: 1,
			Agent2: 2,
			GameMetric: GameMetric{
				StartingPlayer: 1,
				Winner:         -1,
				StartTime:      start,
				Duration:       time.Millisecond,
				Rolls:          30,
				Turns:          9,
			},
		}}))

		records := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
		require.Len(t, records, 2)
		require.Equal(t, []string{"1", "1", "2", "1", "-1", "30", "9", "2024-01-02T03:04:05Z", "1ms"}, records[1])
	})

	t.Run("summaries", func(t *testing.T) {
		require.NoError(t, w.WriteSummaries([]SummaryRecord{{
			Agent1: 1, Agent2: 2, StartingPlayer: 0, Games: 10, Wins: 7,
			WinRate: 0.7, Lower: 0.416, Upper: 0.984, Predicted: 0.700649,
		}}))

		records := readCSV(t, filepath.Join(w.Dir(), "summaries.csv"))
		require.Equal(t, "starting_player", records[0][2])
		require.Equal(t, []string{"1", "2", "0", "10", "7", "0", "0.700000", "0.416000", "0.984000", "0.700649"}, records[1])
	})

	t.Run("unwritable directory", func(t *testing.T) {
		file := filepath.Join(root, "file")
		require.NoError(t, os.WriteFile(file, nil, 0644))

		_, err := NewWriter(file, "experiment")
		require.Error(t, err)
	})
}
