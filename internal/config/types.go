package config

// Diagnostics controls the '#' dump instruction.
type Diagnostics struct {
	Enabled bool `yaml:"enabled"`
	Width   int  `yaml:"width"`
}

// Config is the startup configuration of an interpreter run, read from a
// YAML file such as:
//
//	tape_size: 30000
//	max_steps: 0
//	log_level: warn
//	diagnostics:
//	  enabled: true
//	  width: 4
type Config struct {
	TapeSize    int         `yaml:"tape_size"`
	MaxSteps    uint64      `yaml:"max_steps"`
	LogLevel    string      `yaml:"log_level"`
	Diagnostics Diagnostics `yaml:"diagnostics"`
}
