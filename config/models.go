package config

// Config holds the application configuration.
type Config struct {
	ListenAddress string `mapstructure:"listen_address"`
	LogLevel      string `mapstructure:"log_level"`
	LogFormat     string `mapstructure:"log_format"`
	Mode          string `mapstructure:"mode"`
	MetricsPath   string `mapstructure:"metrics_path"`
}
