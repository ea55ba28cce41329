package config

import "github.com/spf13/viper"

// Config holds process-level settings. Values come from the environment
// (BANK_ prefix) with an optional config.yaml in the working directory.
type Config struct {
	Addr         string `mapstructure:"ADDR"`
	SnapshotPath string `mapstructure:"SNAPSHOT_PATH"`
	LogLevel     string `mapstructure:"LOG_LEVEL"`
	LogFormat    string `mapstructure:"LOG_FORMAT"`
	DatabaseURL  string `mapstructure:"DATABASE_URL"`
}

// Load reads configuration with defaults suitable for local runs.
func Load() (*Config, error) {
	viper.SetEnvPrefix("bank")
	viper.AutomaticEnv()
	viper.SetDefault("ADDR", ":8080")
	viper.SetDefault("SNAPSHOT_PATH", "clients.csv")
	viper.SetDefault("LOG_LEVEL", "INFO")
	viper.SetDefault("LOG_FORMAT", "json")
	viper.SetDefault("DATABASE_URL", "")

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	_ = viper.ReadInConfig() // optional file

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
