package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"adversary/engine"
	"adversary/meta"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Player selects the registered agent and the strategy for one seat.
type Player struct {
	Agent    string `yaml:"agent"`
	Strategy string `yaml:"strategy"`
}

type Tournament struct {
	Exclusions  []string `yaml:"exclusions"`
	Quiet       bool     `yaml:"quiet"`
	ReportDir   string   `yaml:"report_dir"`
	MetricsFile string   `yaml:"metrics_file"`
}

type Config struct {
	MaxExpansions int        `yaml:"max_expansions"`
	MaxPlies      int        `yaml:"max_plies"`
	LogLevel      string     `yaml:"log_level"`
	Players       [2]Player  `yaml:"players"`
	Tournament    Tournament `yaml:"tournament"`
}

func Default() Config {
	return Config{
		MaxExpansions: meta.MaxExpansions,
		MaxPlies:      meta.MaxPlies,
		LogLevel:      "info",
		Players: [2]Player{
			{Agent: "adv", Strategy: engine.Minimax.String()},
			{Agent: "adv", Strategy: engine.AlphaBeta.String()},
		},
		Tournament: Tournament{
			Exclusions: []string{"human"},
			Quiet:      true,
			ReportDir:  meta.ReportDir,
		},
	}
}

// Load reads path over the defaults, then applies environment overrides. A
// missing file is not an error.
func Load(path string) (Config, error) {
	config := Default()

	if path != "" {
		if err := loadFile(path, &config); err != nil {
			return config, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	if err := loadEnv(&config); err != nil {
		return config, err
	}

	if err := config.Validate(); err != nil {
		return config, fmt.Errorf("invalid config: %w", err)
	}
	return config, nil
}

func loadFile(path string, config *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return yaml.Unmarshal(data, config)
}

func loadEnv(config *Config) error {
	if v := os.Getenv("ADVERSARY_MAX_EXPANSIONS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("failed to parse ADVERSARY_MAX_EXPANSIONS: %w", err)
		}
		config.MaxExpansions = n
	}
	if v := os.Getenv("ADVERSARY_LOG_LEVEL"); v != "" {
		config.LogLevel = v
	}
	if v := os.Getenv("ADVERSARY_REPORT_DIR"); v != "" {
		config.Tournament.ReportDir = v
	}
	return nil
}

func (c Config) Validate() error {
	if c.MaxExpansions < 1 {
		return fmt.Errorf("max_expansions must be positive, got %d", c.MaxExpansions)
	}
	if c.MaxPlies < 0 {
		return fmt.Errorf("max_plies must not be negative, got %d", c.MaxPlies)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	for i, p := range c.Players {
		if p.Agent == "" {
			return fmt.Errorf("players[%d]: agent is required", i)
		}
		if _, err := engine.ParseStrategy(p.Strategy); err != nil {
			return fmt.Errorf("players[%d]: %w", i, err)
		}
	}
	return nil
}

// Strategies parses the strategy of each seat. Call after Validate.
func (c Config) Strategies() []engine.Strategy {
	strategies := make([]engine.Strategy, len(c.Players))
	for i, p := range c.Players {
		strategies[i], _ = engine.ParseStrategy(p.Strategy)
	}
	return strategies
}
