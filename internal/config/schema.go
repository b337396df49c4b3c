package config

// GeneratorConfig holds the tunable parts of story generation
type GeneratorConfig struct {
	Model          ModelConfig `yaml:"model"`
	PromptTemplate string      `yaml:"prompt_template"`
}

// ModelConfig is forwarded to the remote model on every call
type ModelConfig struct {
	MaxTokens   int      `yaml:"max_tokens"`
	Temperature *float64 `yaml:"temperature"`
}

const (
	DefaultMaxTokens   = 4096
	DefaultTemperature = 0.8
)

func Default() *GeneratorConfig {
	cfg := &GeneratorConfig{}
	applyDefaults(cfg)
	return cfg
}

func (m ModelConfig) TemperatureOrDefault() float64 {
	if m.Temperature == nil {
		return DefaultTemperature
	}
	return *m.Temperature
}
