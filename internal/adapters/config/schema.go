package config

import "time"

// SchemaVersion is the only config file version understood by the loader.
const SchemaVersion = "1"

// Configfile represents the structure of the glance.yaml configuration file.
type Configfile struct {
	Version     string         `yaml:"version"`
	Snapshot    string         `yaml:"snapshot"`
	Translation TranslationDTO `yaml:"translation"`
	Display     DisplayDTO     `yaml:"display"`
	Pipeline    PipelineDTO    `yaml:"pipeline"`
	Provider    ProviderDTO    `yaml:"provider"`
}

// TranslationDTO holds the language settings.
type TranslationDTO struct {
	Source     string `yaml:"source"`
	Target     string `yaml:"target"`
	AutoDetect *bool  `yaml:"autoDetect"`
}

// DisplayDTO holds the annotation appearance.
type DisplayDTO struct {
	TextSize *float64 `yaml:"textSize"`
	Opacity  *float64 `yaml:"opacity"`
}

// PipelineDTO holds the coordinator tuning. Zero values select the defaults.
type PipelineDTO struct {
	Debounce             time.Duration `yaml:"debounce"`
	Refresh              time.Duration `yaml:"refresh"`
	TranslateTimeout     time.Duration `yaml:"translateTimeout"`
	LargeRegionThreshold float64       `yaml:"largeRegionThreshold"`
	CacheCapacity        int           `yaml:"cacheCapacity"`
	PoolCapacity         int           `yaml:"poolCapacity"`
}

// ProviderDTO selects the translation provider.
type ProviderDTO struct {
	Kind      string    `yaml:"kind"`
	ModelsDir string    `yaml:"modelsDir"`
	ModelURL  string    `yaml:"modelUrl"`
	OpenAI    OpenAIDTO `yaml:"openai"`
}

// OpenAIDTO configures the chat-completion provider.
type OpenAIDTO struct {
	Model     string `yaml:"model"`
	BaseURL   string `yaml:"baseUrl"`
	APIKeyEnv string `yaml:"apiKeyEnv"`
}
