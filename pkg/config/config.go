package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
	Database DatabaseConfig `mapstructure:"database"`
	Chat     ChatConfig     `mapstructure:"chat"`
	GitHub   GitHubConfig   `mapstructure:"github"`
	Projects ProjectsConfig `mapstructure:"projects"`
}

type ServerConfig struct {
	Host        string `mapstructure:"host"`
	Port        int    `mapstructure:"port"`
	MetricsPort int    `mapstructure:"metrics_port"`
	JWTSecret   string `mapstructure:"jwt_secret"`
}

type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
}

// ChatConfig targets the single upstream completion service the chat
// endpoint forwards to. The API key is server-held and never reaches
// the caller.
type ChatConfig struct {
	GatewayURL       string `mapstructure:"gateway_url"`
	APIKey           string `mapstructure:"api_key"`
	Model            string `mapstructure:"model"`
	RateLimit        int    `mapstructure:"rate_limit"`
	RateWindowMs     int    `mapstructure:"rate_window_ms"`
	SweepIntervalSec int    `mapstructure:"sweep_interval_sec"`
}

type GitHubConfig struct {
	APIURL     string `mapstructure:"api_url"`
	Token      string `mapstructure:"token"`
	PagesOwner string `mapstructure:"pages_owner"`
}

// ProjectsConfig drives the repository-to-project mapping. Overrides is a
// raw name-keyed table decoded by the sync service; when empty the built-in
// defaults apply.
type ProjectsConfig struct {
	ExcludeName string                 `mapstructure:"exclude_name"`
	Overrides   map[string]interface{} `mapstructure:"overrides"`
}

var globalConfig Config

func Load(configPath string) error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configPath)
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Unmarshal only consults keys it already knows about, and the secrets
	// are deliberately absent from the config file, so each one needs an
	// explicit binding to land in the struct.
	for key, env := range map[string]string{
		"server.jwt_secret": "SERVER_JWT_SECRET",
		"database.password": "DATABASE_PASSWORD",
		"chat.api_key":      "CHAT_API_KEY",
		"github.token":      "GITHUB_TOKEN",
	} {
		if err := viper.BindEnv(key, env); err != nil {
			return fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	if err := viper.Unmarshal(&globalConfig); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	setDefaultValues()

	return nil
}

func setDefaultValues() {
	if globalConfig.Server.Port == 0 {
		globalConfig.Server.Port = 8080
	}
	if globalConfig.Server.MetricsPort == 0 {
		globalConfig.Server.MetricsPort = 9090
	}
	if globalConfig.Database.SSLMode == "" {
		globalConfig.Database.SSLMode = "disable"
	}
	if globalConfig.Chat.GatewayURL == "" {
		globalConfig.Chat.GatewayURL = "https://ai.gateway.lovable.dev/v1/chat/completions"
	}
	if globalConfig.Chat.Model == "" {
		globalConfig.Chat.Model = "google/gemini-2.5-flash"
	}
	if globalConfig.Chat.RateLimit == 0 {
		globalConfig.Chat.RateLimit = 10
	}
	if globalConfig.Chat.RateWindowMs == 0 {
		globalConfig.Chat.RateWindowMs = 60000
	}
	if globalConfig.Chat.SweepIntervalSec == 0 {
		globalConfig.Chat.SweepIntervalSec = 300
	}
	if globalConfig.GitHub.APIURL == "" {
		globalConfig.GitHub.APIURL = "https://api.github.com"
	}
	if globalConfig.GitHub.PagesOwner == "" {
		globalConfig.GitHub.PagesOwner = "boka26"
	}
	if globalConfig.Projects.ExcludeName == "" {
		globalConfig.Projects.ExcludeName = "lovotech-nexus"
	}
}

func GetConfig() *Config {
	return &globalConfig
}
