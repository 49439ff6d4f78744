package sentiment

import (
	"fmt"
)

// Config selects the active classifier provider, normally decoded from
// config/models.yaml.
type Config struct {
	ActiveProvider string                    `yaml:"active_provider"`
	MaxChars       int                       `yaml:"max_chars"`
	Providers      map[string]ProviderConfig `yaml:"providers"`
}

// ProviderConfig carries per-provider settings.
type ProviderConfig struct {
	Model       string `yaml:"model"`
	Description string `yaml:"description"`
}

// Manager owns the registered classifier providers and hands out the active
// one.
type Manager struct {
	config      Config
	classifiers map[string]Classifier
}

// NewManager registers the built-in providers. Unknown active_provider
// values fall back to the lexicon classifier so the pipeline stays usable
// offline.
func NewManager(config Config) *Manager {
	return &Manager{
		config: config,
		classifiers: map[string]Classifier{
			"gemini":  &GeminiClassifier{Model: config.Providers["gemini"].Model},
			"lexicon": NewLexiconClassifier(),
		},
	}
}

// GetClassifier returns the active classifier.
func (m *Manager) GetClassifier() Classifier {
	if c, ok := m.classifiers[m.config.ActiveProvider]; ok {
		return c
	}
	return m.classifiers["lexicon"]
}

// GetClassifierByName returns a specific provider.
func (m *Manager) GetClassifierByName(name string) (Classifier, error) {
	if c, ok := m.classifiers[name]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("classifier provider %q not found", name)
}

// ActiveProvider reports the configured provider name.
func (m *Manager) ActiveProvider() string {
	if _, ok := m.classifiers[m.config.ActiveProvider]; ok {
		return m.config.ActiveProvider
	}
	return "lexicon"
}

// MaxChars reports the configured classifier input budget.
func (m *Manager) MaxChars() int {
	if m.config.MaxChars > 0 {
		return m.config.MaxChars
	}
	return DefaultMaxChars
}
