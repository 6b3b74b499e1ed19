package bkper

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// App is a deployable extension of the Bkper platform: a webhook
// endpoint subscribed to book events.
type App struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Events     []string `json:"events,omitempty"`
	WebhookURL string   `json:"webhookUrl,omitempty"`
	Published  bool     `json:"published,omitempty"`
}

// AppManifest is the bkperapp.yaml file at the root of an app project.
type AppManifest struct {
	ID         string   `yaml:"id"`
	Name       string   `yaml:"name"`
	Events     []string `yaml:"events"`
	WebhookURL string   `yaml:"webhookUrl"`
}

// ReadAppManifest reads and validates a bkperapp.yaml manifest.
func ReadAppManifest(path string) (*AppManifest, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read app manifest: %w", err)
	}
	var m AppManifest
	if err := yaml.Unmarshal(content, &m); err != nil {
		return nil, fmt.Errorf("cannot parse app manifest %q: %w", path, err)
	}
	if m.ID == "" {
		return nil, fmt.Errorf("app manifest %q has no id", path)
	}
	if m.Name == "" {
		return nil, fmt.Errorf("app manifest %q has no name", path)
	}
	return &m, nil
}

// App converts the manifest into the platform representation.
func (m *AppManifest) App() *App {
	return &App{
		ID:         m.ID,
		Name:       m.Name,
		Events:     m.Events,
		WebhookURL: m.WebhookURL,
	}
}
