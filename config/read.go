package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

var GlobalConf *Config

func ReadConfig(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)

	setDefaults(v)

	// Allow env vars to override config values.
	// e.g. PLANNERS_SERVER_PORT overrides server.port
	v.SetEnvPrefix("PLANNERS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Hosting platforms inject the listen port as a bare PORT variable.
	_ = v.BindEnv("server.port", "PLANNERS_SERVER_PORT", "PORT")

	// The config file is optional; env vars and defaults cover a plain
	// container deployment.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %v", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %v", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.timeout_seconds", 30)
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.cors.allow_origins", []string{
		"http://localhost:4200",
		"https://tirumala-planners.onrender.com",
		"https://www.tirumalaplanners.com",
	})
	v.SetDefault("database.path", "./data.db")
	v.SetDefault("assets.dir", "./assets")
	v.SetDefault("email.enabled", true)
	// Empty defaults register the keys so env-only values survive Unmarshal.
	v.SetDefault("email.from", "")
	v.SetDefault("email.owner", "")
	v.SetDefault("email.smtp.username", "")
	v.SetDefault("email.smtp.password", "")
	v.SetDefault("email.smtp.host", "smtp.gmail.com")
	v.SetDefault("email.smtp.port", 587)
	v.SetDefault("email.smtp.timeout_seconds", 30)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
	v.SetDefault("logging.output.stdout", true)
	v.SetDefault("observability.service_name", "planners-backend")
	v.SetDefault("observability.service_version", "dev")
	v.SetDefault("observability.metrics.enabled", true)
	v.SetDefault("observability.metrics.path", "/metrics")
}

func MustReadConfig(path string) *Config {
	config, err := ReadConfig(path)
	if err != nil {
		panic(err)
	}

	GlobalConf = config

	return config
}
