package config

import (
	"fmt"
	"runtime"
)

// ReplayConfig holds settings for batch replay of FEN and move lines.
type ReplayConfig struct {
	// Workers is the number of lines replayed in parallel
	Workers int `yaml:"workers" envconfig:"WORKERS"`

	// BufferSize is the job and result channel capacity
	BufferSize int `yaml:"buffer_size" envconfig:"BUFFER_SIZE"`

	// Strict checks every move with the pseudo-legal move checker
	Strict bool `yaml:"strict" envconfig:"STRICT"`

	// StopOnError stops scheduling new lines after the first failure
	StopOnError bool `yaml:"stop_on_error" envconfig:"STOP_ON_ERROR"`

	// ReportDuplicates marks lines whose final position matches an earlier line
	ReportDuplicates bool `yaml:"report_duplicates" envconfig:"REPORT_DUPLICATES"`
}

// NewReplayConfig creates a ReplayConfig with default values.
func NewReplayConfig() *ReplayConfig {
	return &ReplayConfig{
		Workers:    runtime.NumCPU(),
		BufferSize: 64,
	}
}

func (r *ReplayConfig) validate() error {
	if r.Workers < 1 {
		return invalid("replay.workers", fmt.Sprintf("must be at least 1, got %d", r.Workers))
	}
	if r.BufferSize < 1 {
		return invalid("replay.buffer_size", fmt.Sprintf("must be at least 1, got %d", r.BufferSize))
	}
	return nil
}
