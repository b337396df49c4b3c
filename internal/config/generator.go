package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"text/template"

	"go.yaml.in/yaml/v3"
)

const defaultConfigPath = "configs/generator.yaml"

// LoadGeneratorConfig reads the generator configuration from GENERATOR_CONFIG_PATH.
// A missing file is not an error: built-in defaults are returned.
func LoadGeneratorConfig() (*GeneratorConfig, error) {
	path := os.Getenv("GENERATOR_CONFIG_PATH")
	if path == "" {
		path = defaultConfigPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg GeneratorConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML %s: %w", path, err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *GeneratorConfig) {
	if cfg.Model.MaxTokens == 0 {
		cfg.Model.MaxTokens = DefaultMaxTokens
	}
	if cfg.Model.Temperature == nil {
		t := DefaultTemperature
		cfg.Model.Temperature = &t
	}
}

func (c *GeneratorConfig) Validate() error {
	if c.Model.MaxTokens < 0 {
		return fmt.Errorf("negative max_tokens: %d", c.Model.MaxTokens)
	}

	temperature := c.Model.TemperatureOrDefault()
	if temperature < 0.0 || temperature > 2.0 {
		return fmt.Errorf("invalid temperature %f: must be in [0.0, 2.0]", temperature)
	}

	if c.PromptTemplate != "" {
		if _, err := template.New("story").Parse(c.PromptTemplate); err != nil {
			return fmt.Errorf("invalid prompt template: %w", err)
		}
	}

	return nil
}
