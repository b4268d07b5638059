package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lite-lake/zonevault/internal/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "zonevault.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoad_FullConfig(t *testing.T) {
	t.Setenv("CF_API_TOKEN", "tok-secret")

	path := writeConfig(t, `
provider:
  type: cloudflare
  credentials:
    api_token: env:CF_API_TOKEN
storage:
  type: s3
  bucket: dns-backups
  region: us-east-1
run:
  call_timeout: 10s
  deadline: 5m
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Provider.Type != "cloudflare" {
		t.Errorf("Provider.Type = %s", cfg.Provider.Type)
	}
	if got := cfg.Provider.Credentials["api_token"]; got != "tok-secret" {
		t.Errorf("api_token = %q, want resolved env value", got)
	}
	if cfg.Storage.Bucket != "dns-backups" {
		t.Errorf("Storage.Bucket = %s", cfg.Storage.Bucket)
	}
	if cfg.Run.CallTimeout != 10*time.Second {
		t.Errorf("Run.CallTimeout = %v", cfg.Run.CallTimeout)
	}
	if cfg.Run.Deadline != 5*time.Minute {
		t.Errorf("Run.Deadline = %v", cfg.Run.Deadline)
	}
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
provider:
  type: route53
  region: us-east-1
storage:
  type: sftp
  sftp:
    host: backups.internal
    user: zonevault
    base_dir: /srv/dns
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Run.CallTimeout != DefaultCallTimeout {
		t.Errorf("Run.CallTimeout = %v, want default %v", cfg.Run.CallTimeout, DefaultCallTimeout)
	}
	if cfg.Run.Deadline != DefaultDeadline {
		t.Errorf("Run.Deadline = %v, want default %v", cfg.Run.Deadline, DefaultDeadline)
	}
	if cfg.Storage.SFTP.Port != 22 {
		t.Errorf("SFTP.Port = %d, want default 22", cfg.Storage.SFTP.Port)
	}
}

func TestLoad_MissingSecretIsAnError(t *testing.T) {
	path := writeConfig(t, `
provider:
  type: cloudflare
  credentials:
    api_token: env:ZONEVAULT_TEST_UNSET_VAR
storage:
  type: local
  dir: /tmp/backups
`)

	_, err := Load(path)
	if !errors.Is(err, domain.ErrMissingSecret) {
		t.Errorf("Load() error = %v, want ErrMissingSecret", err)
	}
}

func TestLoad_LiteralCredentialPassesThrough(t *testing.T) {
	path := writeConfig(t, `
provider:
  type: tencent
  credentials:
    secret_id: AKID123
    secret_key: plainvalue
storage:
  type: local
  dir: /tmp/backups
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Provider.Credentials["secret_id"] != "AKID123" {
		t.Errorf("secret_id = %q", cfg.Provider.Credentials["secret_id"])
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if !errors.Is(err, domain.ErrConfigReadFailed) {
		t.Errorf("Load() error = %v, want ErrConfigReadFailed", err)
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "provider: [unclosed")
	_, err := Load(path)
	if !errors.Is(err, domain.ErrConfigParseFailed) {
		t.Errorf("Load() error = %v, want ErrConfigParseFailed", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "missing provider type",
			content: `
storage:
  type: local
  dir: /tmp/backups
`,
		},
		{
			name: "missing storage type",
			content: `
provider:
  type: route53
`,
		},
		{
			name: "s3 without bucket",
			content: `
provider:
  type: route53
storage:
  type: s3
`,
		},
		{
			name: "sftp without host",
			content: `
provider:
  type: route53
storage:
  type: sftp
  sftp:
    user: zonevault
    base_dir: /srv/dns
`,
		},
		{
			name: "sftp without base dir",
			content: `
provider:
  type: route53
storage:
  type: sftp
  sftp:
    host: backups.internal
    user: zonevault
`,
		},
		{
			name: "local without dir",
			content: `
provider:
  type: route53
storage:
  type: local
`,
		},
		{
			name: "unknown storage type",
			content: `
provider:
  type: route53
storage:
  type: tape
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			_, err := Load(path)
			if !errors.Is(err, domain.ErrConfigValidateFail) {
				t.Errorf("Load() error = %v, want ErrConfigValidateFail", err)
			}
		})
	}
}
