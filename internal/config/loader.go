package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lite-lake/zonevault/internal/domain"
)

const envRefPrefix = "env:"

// Load reads, parses, defaults, resolves and validates the config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, domain.ErrConfigReadFailed)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %v: %w", path, err, domain.ErrConfigParseFailed)
	}

	cfg.applyDefaults()

	if err := cfg.resolveCredentials(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// resolveCredentials replaces "env:NAME" credential values with the value
// of the named environment variable. A reference to an unset variable is a
// load error, not an empty credential.
func (c *Config) resolveCredentials() error {
	for key, val := range c.Provider.Credentials {
		resolved, err := resolveRef(val)
		if err != nil {
			return fmt.Errorf("provider.credentials[%s]: %w", key, err)
		}
		c.Provider.Credentials[key] = resolved
	}

	resolved, err := resolveRef(c.Storage.SFTP.Password)
	if err != nil {
		return fmt.Errorf("storage.sftp.password: %w", err)
	}
	c.Storage.SFTP.Password = resolved

	return nil
}

func resolveRef(val string) (string, error) {
	if !strings.HasPrefix(val, envRefPrefix) {
		return val, nil
	}
	name := strings.TrimPrefix(val, envRefPrefix)
	resolved, ok := os.LookupEnv(name)
	if !ok {
		return "", fmt.Errorf("%w: environment variable %s is not set", domain.ErrMissingSecret, name)
	}
	return resolved, nil
}

func (c *Config) Validate() error {
	if c.Provider.Type == "" {
		return fmt.Errorf("%w: provider.type: %v", domain.ErrConfigValidateFail, domain.RequiredField("provider.type"))
	}
	if c.Storage.Type == "" {
		return fmt.Errorf("%w: storage.type: %v", domain.ErrConfigValidateFail, domain.RequiredField("storage.type"))
	}

	switch c.Storage.Type {
	case "s3":
		if c.Storage.Bucket == "" {
			return fmt.Errorf("%w: storage.bucket is required for s3", domain.ErrConfigValidateFail)
		}
	case "sftp":
		if c.Storage.SFTP.Host == "" || c.Storage.SFTP.User == "" {
			return fmt.Errorf("%w: storage.sftp.host and storage.sftp.user are required for sftp", domain.ErrConfigValidateFail)
		}
		if c.Storage.SFTP.BaseDir == "" {
			return fmt.Errorf("%w: storage.sftp.base_dir is required for sftp", domain.ErrConfigValidateFail)
		}
	case "local":
		if c.Storage.Dir == "" {
			return fmt.Errorf("%w: storage.dir is required for local", domain.ErrConfigValidateFail)
		}
	default:
		return fmt.Errorf("%w: unsupported storage type: %s", domain.ErrConfigValidateFail, c.Storage.Type)
	}

	return nil
}
