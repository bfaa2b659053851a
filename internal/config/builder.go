package config

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithStartFEN sets the position loaded before the first prompt.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.StartFEN = fen
	return b
}

// WithPrompt sets the interactive prompt.
func (b *ConfigBuilder) WithPrompt(prompt string) *ConfigBuilder {
	b.cfg.Prompt = prompt
	return b
}

// WithJSONOutput enables JSON position output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.JSONOutput = enabled
	return b
}

// WithLogLevel sets the log level.
func (b *ConfigBuilder) WithLogLevel(level string) *ConfigBuilder {
	b.cfg.LogLevel = level
	return b
}

// WithLogFormat sets the log format.
func (b *ConfigBuilder) WithLogFormat(format string) *ConfigBuilder {
	b.cfg.LogFormat = format
	return b
}

// WithServerAddr sets the HTTP listen address.
func (b *ConfigBuilder) WithServerAddr(addr string) *ConfigBuilder {
	b.cfg.Server.Addr = addr
	return b
}

// WithMaxSessions sets the session limit.
func (b *ConfigBuilder) WithMaxSessions(n int) *ConfigBuilder {
	b.cfg.Server.MaxSessions = n
	return b
}

// WithReplayWorkers sets the number of replay workers and the buffer size.
func (b *ConfigBuilder) WithReplayWorkers(workers, bufferSize int) *ConfigBuilder {
	b.cfg.Replay.Workers = workers
	b.cfg.Replay.BufferSize = bufferSize
	return b
}

// WithStopOnError controls whether replay stops after the first failure.
func (b *ConfigBuilder) WithStopOnError(stop bool) *ConfigBuilder {
	b.cfg.Replay.StopOnError = stop
	return b
}

// WithStrictReplay controls whether replayed moves are checked before applying.
func (b *ConfigBuilder) WithStrictReplay(strict bool) *ConfigBuilder {
	b.cfg.Replay.Strict = strict
	return b
}

// WithDuplicateReport controls whether replay marks repeated final positions.
func (b *ConfigBuilder) WithDuplicateReport(enabled bool) *ConfigBuilder {
	b.cfg.Replay.ReportDuplicates = enabled
	return b
}
