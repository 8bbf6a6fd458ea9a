// internal/config/config.go
package config

type Config struct {
	Device  DeviceConfig  `yaml:"device"`
	Export  ExportConfig  `yaml:"export"`
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// ---- DEVICE ----

type DeviceConfig struct {
	Path string `yaml:"path"`
	User int    `yaml:"user"` // 0 => default user

	// Serial line. Zero values are replaced by Normalize.
	BaudRate      int    `yaml:"baud_rate"`
	DataBits      int    `yaml:"data_bits"`
	StopBits      int    `yaml:"stop_bits"`
	Parity        string `yaml:"parity"`
	ReadTimeoutMs int    `yaml:"read_timeout_ms"`

	// Simulate serves a built-in demo device instead of opening Path.
	Simulate bool `yaml:"simulate"`
}

// ---- EXPORT ----

type ExportConfig struct {
	Output string `yaml:"output"` // "" or "-" => stdout
}

// ---- LOGGING ----

type LoggingConfig struct {
	Level  string        `yaml:"level"`
	Format string        `yaml:"format"` // json | console
	File   LogFileConfig `yaml:"file"`
}

type LogFileConfig struct {
	Filename   string `yaml:"filename"` // "" => no file sink
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

// ---- METRICS ----

type MetricsConfig struct {
	Textfile string `yaml:"textfile"` // "" => disabled
}
