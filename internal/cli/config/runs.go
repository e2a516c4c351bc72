package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Run describes one polymer build request. Fields left out of a run file
// entry inherit the base values derived from command-line flags.
type Run struct {
	N            int      `json:"n"`
	Monomer      string   `json:"monomer"`
	SuperMonomer []string `json:"super_monomer"`
	Initiator    string   `json:"initiator"`
	Terminator   string   `json:"terminator"`
	File         string   `json:"file"`
	Format       string   `json:"format"`
	KeepOpenEnds bool     `json:"keep_open_ends"`
	Sweep        bool     `json:"sweep"`
}

type runFile struct {
	Runs []json.RawMessage `json:"runs"`
}

// LoadRuns reads a JSON run file and merges each entry over the base run,
// so command-line flags fill in whatever a run leaves unspecified.
func LoadRuns(path string, base Run) ([]Run, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read run file: %w", err)
	}
	var rf runFile
	if err := json.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("failed to parse run file: %w", err)
	}
	if len(rf.Runs) == 0 {
		return nil, fmt.Errorf("run file %s declares no runs", path)
	}
	runs := make([]Run, 0, len(rf.Runs))
	for i, raw := range rf.Runs {
		run := base
		if err := json.Unmarshal(raw, &run); err != nil {
			return nil, fmt.Errorf("run %d: %w", i+1, err)
		}
		runs = append(runs, run)
	}
	return runs, nil
}
