package config

import "fmt"

// ServerConfig holds settings for the HTTP session API.
type ServerConfig struct {
	// Addr is the listen address, e.g. ":8080"
	Addr string `yaml:"addr" envconfig:"ADDR"`

	// MaxSessions caps the number of live sessions; 0 means unlimited
	MaxSessions int `yaml:"max_sessions" envconfig:"MAX_SESSIONS"`
}

// NewServerConfig creates a ServerConfig with default values.
func NewServerConfig() *ServerConfig {
	return &ServerConfig{
		Addr:        ":8080",
		MaxSessions: 1000,
	}
}

func (s *ServerConfig) validate() error {
	if s.Addr == "" {
		return invalid("server.addr", "must not be empty")
	}
	if s.MaxSessions < 0 {
		return invalid("server.max_sessions", fmt.Sprintf("must not be negative, got %d", s.MaxSessions))
	}
	return nil
}
