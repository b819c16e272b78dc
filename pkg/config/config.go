package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/bayespam/spam-classifier/pkg/learning"
)

// Config represents the classifier configuration.
type Config struct {
	// Scoring policy selection
	Classifier ClassifierConfig `yaml:"classifier"`

	// Evaluation settings
	Evaluation EvaluationConfig `yaml:"evaluation"`
}

// ClassifierConfig selects the scoring policies. Both defaults keep the
// historical behavior; see the learning package for what each rule does.
type ClassifierConfig struct {
	// DecisionRule: "ratio" (historical) or "log-odds" (corrected)
	DecisionRule string `yaml:"decision_rule"`

	// AbsentRule: "legacy" (historical) or "complement" (corrected)
	AbsentRule string `yaml:"absent_rule"`
}

// EvaluationConfig contains evaluation run settings.
type EvaluationConfig struct {
	// Workers bounds the number of concurrent classifications. 1 runs
	// the test set sequentially.
	Workers int `yaml:"workers"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Classifier: ClassifierConfig{
			DecisionRule: learning.DecisionRatio,
			AbsentRule:   learning.AbsentLegacy,
		},
		Evaluation: EvaluationConfig{
			Workers: 1,
		},
	}
}

// LoadConfig loads configuration from file. An empty path returns the
// defaults.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if configPath == "" {
		return config, nil
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %v", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %v", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %v", err)
	}

	return config, nil
}

// SaveConfig saves configuration to file.
func (c *Config) SaveConfig(configPath string) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %v", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %v", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %v", err)
	}

	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	switch c.Classifier.DecisionRule {
	case learning.DecisionRatio, learning.DecisionLogOdds:
	default:
		return fmt.Errorf("decision_rule must be %q or %q", learning.DecisionRatio, learning.DecisionLogOdds)
	}

	switch c.Classifier.AbsentRule {
	case learning.AbsentLegacy, learning.AbsentComplement:
	default:
		return fmt.Errorf("absent_rule must be %q or %q", learning.AbsentLegacy, learning.AbsentComplement)
	}

	if c.Evaluation.Workers < 1 {
		return fmt.Errorf("workers must be >= 1")
	}

	return nil
}

// LearningConfig converts the configuration into the learning
// package's form.
func (c *Config) LearningConfig() *learning.ClassifierConfig {
	return &learning.ClassifierConfig{
		DecisionRule: c.Classifier.DecisionRule,
		AbsentRule:   c.Classifier.AbsentRule,
	}
}
