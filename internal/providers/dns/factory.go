package dns

import (
	"context"
	"fmt"

	"github.com/lite-lake/zonevault/internal/config"
)

type CreatorFunc func(ctx context.Context, cfg *config.ProviderConfig) (Provider, error)

type Factory struct {
	creators map[string]CreatorFunc
}

func NewFactory() *Factory {
	return &Factory{
		creators: map[string]CreatorFunc{
			"route53":    createRoute53,
			"cloudflare": createCloudflare,
			"aliyun":     createAliyun,
			"tencent":    createTencent,
		},
	}
}

func (f *Factory) Create(ctx context.Context, cfg *config.ProviderConfig) (Provider, error) {
	creator, ok := f.creators[cfg.Type]
	if !ok {
		return nil, fmt.Errorf("unsupported provider type: %s", cfg.Type)
	}
	return creator(ctx, cfg)
}

func (f *Factory) Register(providerType string, creator CreatorFunc) {
	f.creators[providerType] = creator
}

func credential(cfg *config.ProviderConfig, key string) (string, error) {
	val, ok := cfg.Credentials[key]
	if !ok || val == "" {
		return "", fmt.Errorf("missing credential: %s", key)
	}
	return val, nil
}

func createRoute53(ctx context.Context, cfg *config.ProviderConfig) (Provider, error) {
	// Credentials come from the default AWS chain (env, shared config,
	// instance role), not from the credentials map.
	return NewRoute53Provider(ctx, cfg.Region)
}

func createCloudflare(ctx context.Context, cfg *config.ProviderConfig) (Provider, error) {
	apiToken, err := credential(cfg, "api_token")
	if err != nil {
		return nil, fmt.Errorf("resolve api_token: %w", err)
	}
	return NewCloudflareProvider(apiToken), nil
}

func createAliyun(ctx context.Context, cfg *config.ProviderConfig) (Provider, error) {
	accessKeyID, err := credential(cfg, "access_key_id")
	if err != nil {
		return nil, fmt.Errorf("resolve access_key_id: %w", err)
	}
	accessKeySecret, err := credential(cfg, "access_key_secret")
	if err != nil {
		return nil, fmt.Errorf("resolve access_key_secret: %w", err)
	}
	return NewAliyunProvider(accessKeyID, accessKeySecret)
}

func createTencent(ctx context.Context, cfg *config.ProviderConfig) (Provider, error) {
	secretID, err := credential(cfg, "secret_id")
	if err != nil {
		return nil, fmt.Errorf("resolve secret_id: %w", err)
	}
	secretKey, err := credential(cfg, "secret_key")
	if err != nil {
		return nil, fmt.Errorf("resolve secret_key: %w", err)
	}
	return NewTencentProvider(secretID, secretKey)
}
