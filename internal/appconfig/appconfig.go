package appconfig

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"text/template"
	"time"

	"github.com/EO-DataHub/eodhp-directory-services/internal/listing"
	"github.com/EO-DataHub/eodhp-directory-services/internal/profile"
	"github.com/EO-DataHub/eodhp-directory-services/models"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v2"
)

// Config holds all configuration details
type Config struct {
	Host     string        `yaml:"host"`
	BasePath string        `yaml:"basePath"`
	Remote   RemoteConfig  `yaml:"remote"`
	Pulsar   PulsarConfig  `yaml:"pulsar"`
	Profile  ProfileConfig `yaml:"profile"`
	Metrics  MetricsConfig `yaml:"metrics"`
}

// RemoteConfig defines the remote listing API
type RemoteConfig struct {
	URL     string        `yaml:"url"`
	Timeout time.Duration `yaml:"timeout"`
}

// PulsarConfig defines the messaging system connection details. An empty URL
// disables the event bus.
type PulsarConfig struct {
	URL           string `yaml:"url"`
	TopicProducer string `yaml:"topicProducer"`
	TopicConsumer string `yaml:"topicConsumer"`
	Subscription  string `yaml:"subscription"`
}

// ProfileConfig seeds the profile form
type ProfileConfig struct {
	Name         string `yaml:"name"`
	Age          string `yaml:"age"`
	Phone        string `yaml:"phone"`
	Email        string `yaml:"email"`
	Photo        string `yaml:"photo"`
	DefaultPhoto string `yaml:"defaultPhoto"`
}

type MetricsConfig struct {
	Path string `yaml:"path"`
}

// Initial returns the configured profile, falling back to the built-in one
// when no name is set.
func (p ProfileConfig) Initial() models.Profile {
	if p.Name == "" {
		return profile.DefaultProfile()
	}
	return models.Profile{
		Name:  p.Name,
		Age:   p.Age,
		Phone: p.Phone,
		Email: p.Email,
		Photo: p.Photo,
	}
}

// Enabled reports whether the event bus is configured.
func (p PulsarConfig) Enabled() bool {
	return p.URL != ""
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// LoadConfig loads and parses the configuration from a given file path
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		err := errors.New("config file path is required")
		log.Error().Err(err).Msg("config file not provided")
		return nil, err
	}

	// Parse the template file
	tmpl, err := template.ParseFiles(path)
	if err != nil {
		log.Error().Err(err).Msg("error parsing config file template")
		return nil, err
	}

	// Unset variables render empty instead of "<no value>"
	tmpl = tmpl.Option("missingkey=zero")

	// Create a map of environment variables
	envVars := loadEnvVars()

	// Execute the template with environment variables
	var buf bytes.Buffer
	err = tmpl.Execute(&buf, envVars)
	if err != nil {
		log.Error().Err(err).Msg("error executing config file template")
		return nil, err
	}

	// Load and unmarshal the YAML
	var config Config
	if err := yaml.Unmarshal(buf.Bytes(), &config); err != nil {
		log.Error().Err(err).Msg("failed to unmarshal config YAML")
		return nil, err
	}

	config.applyDefaults()
	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.BasePath == "" {
		c.BasePath = "/api"
	}
	if c.Remote.URL == "" {
		c.Remote.URL = listing.DefaultURL
	}
	if c.Remote.Timeout <= 0 {
		c.Remote.Timeout = 10 * time.Second
	}
	if c.Pulsar.Subscription == "" {
		c.Pulsar.Subscription = "directory-services"
	}
	if c.Profile.DefaultPhoto == "" {
		c.Profile.DefaultPhoto = profile.DefaultPhoto
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
}

// loadEnvVars loads environment variables into a map
func loadEnvVars() map[string]string {
	envVars := make(map[string]string)
	for _, env := range os.Environ() {
		kv := strings.SplitN(env, "=", 2)
		if len(kv) == 2 {
			envVars[kv[0]] = kv[1]
		}
	}
	return envVars
}
