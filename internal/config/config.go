package config

import (
	"time"
)

// Config is the deployment-time configuration of the tool. The backup
// trigger itself carries no payload; everything a run needs is here.
type Config struct {
	Provider ProviderConfig `yaml:"provider"`
	Storage  StorageConfig  `yaml:"storage"`
	Run      RunConfig      `yaml:"run"`
}

// ProviderConfig selects and authenticates the DNS provider. Credential
// values may use the "env:NAME" form to be read from the environment at
// load time.
type ProviderConfig struct {
	Type        string            `yaml:"type"`
	Region      string            `yaml:"region,omitempty"`
	Credentials map[string]string `yaml:"credentials,omitempty"`
}

// StorageConfig selects the object-storage sink. Exactly one of the
// type-specific sections is consulted, matching Type.
type StorageConfig struct {
	Type   string     `yaml:"type"`
	Bucket string     `yaml:"bucket,omitempty"`
	Region string     `yaml:"region,omitempty"`
	Dir    string     `yaml:"dir,omitempty"`
	SFTP   SFTPConfig `yaml:"sftp,omitempty"`
}

type SFTPConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	BaseDir  string `yaml:"base_dir"`
}

// RunConfig bounds a run. CallTimeout caps every individual provider and
// storage call; Deadline caps the whole run, after which remaining zones
// are reported failed instead of processed.
type RunConfig struct {
	CallTimeout time.Duration `yaml:"call_timeout"`
	Deadline    time.Duration `yaml:"deadline"`
}

const (
	DefaultCallTimeout = 30 * time.Second
	DefaultDeadline    = 15 * time.Minute
)

func (c *Config) applyDefaults() {
	if c.Run.CallTimeout <= 0 {
		c.Run.CallTimeout = DefaultCallTimeout
	}
	if c.Run.Deadline <= 0 {
		c.Run.Deadline = DefaultDeadline
	}
	if c.Storage.Type == "sftp" && c.Storage.SFTP.Port == 0 {
		c.Storage.SFTP.Port = 22
	}
}
