package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type AgentConfig struct {
	ID          int
	Name        string
	Threshold   int     // Lid threshold for threshold agents
	Temperature float64 // Sampling temperature for sampling agents
	Episodes    int     // Search episodes per decision for search agents
}

type GameRecord struct {
	ID     int
	Agent1 int // AgentConfig.ID
	Agent2 int // AgentConfig.ID
	GameMetric
}

type SummaryRecord struct {
	Agent1         int
	Agent2         int
	StartingPlayer int // 0 when Agent1 moved first
	Games          int
	Wins           int // Games won by Agent1
	Abandoned      int
	WinRate        float64
	Lower          float64
	Upper          float64
	Predicted      float64 // Solved win probability of Agent1 from its seat
}

type Writer struct {
	baseDir string
}

// NewWriter creates a timestamped directory for one experiment under root.
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

// WriteCSV writes a header and rows into a file of the experiment directory.
func (w *Writer) WriteCSV(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	err = writer.WriteAll(rows)
	if err != nil {
		return fmt.Errorf("failed to write %s rows: %w", name, err)
	}
	return nil
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	header := []string{"id", "name", "threshold", "temperature", "episodes"}
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			config.Name,
			strconv.Itoa(config.Threshold),
			strconv.FormatFloat(config.Temperature, 'g', -1, 64),
			strconv.Itoa(config.Episodes),
		})
	}
	return w.WriteCSV("agent_configs.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "agent1", "agent2", "starting_player", "winner", "rolls", "turns", "start_time", "duration"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Agent1),
			strconv.Itoa(record.Agent2),
			strconv.Itoa(record.StartingPlayer),
			strconv.Itoa(record.Winner),
			strconv.Itoa(record.Rolls),
			strconv.Itoa(record.Turns),
			record.StartTime.Format(time.RFC3339),
			record.Duration.String(),
		})
	}
	return w.WriteCSV("game_records.csv", header, rows)
}

func (w *Writer) WriteSummaries(records []SummaryRecord) error {
	header := []string{"agent1", "agent2", "starting_player", "games", "wins", "abandoned", "win_rate", "lower", "upper", "predicted"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Agent1),
			strconv.Itoa(record.Agent2),
			strconv.Itoa(record.StartingPlayer),
			strconv.Itoa(record.Games),
			strconv.Itoa(record.Wins),
			strconv.Itoa(record.Abandoned),
			strconv.FormatFloat(record.WinRate, 'f', 6, 64),
			strconv.FormatFloat(record.Lower, 'f', 6, 64),
			strconv.FormatFloat(record.Upper, 'f', 6, 64),
			strconv.FormatFloat(record.Predicted, 'f', 6, 64),
		})
	}
	return w.WriteCSV("summaries.csv", header, rows)
}
