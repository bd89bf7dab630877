package config

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/creasty/defaults"
	"github.com/imdario/mergo"
	"github.com/spf13/viper"
	solverConfig "github.com/sprintertech/solver-config/go/config"
)

const (
	ENV_PREFIX = "INTENTS"
)

type SolverAPIConfig struct {
	URL string `mapstructure:"url" default:"http://localhost:3000"`
	// Timeout in seconds
	Timeout uint64 `mapstructure:"timeout" default:"30"`
}

type APIConfig struct {
	Addr string `mapstructure:"addr" default:":8080"`
}

type Config struct {
	LogLevel                  string          `mapstructure:"logLevel" default:"info"`
	HealthPort                uint16          `mapstructure:"healthPort" default:"9001"`
	OpenTelemetryCollectorURL string          `mapstructure:"openTelemetryCollectorURL"`
	SharedConfigURL           string          `mapstructure:"sharedConfigURL"`
	Solver                    SolverAPIConfig `mapstructure:"solver"`
	API                       APIConfig       `mapstructure:"api"`

	ChainConfigs []map[string]interface{} `mapstructure:"chains"`
}

func (c *Config) Validate() error {
	if c.Solver.URL == "" {
		return fmt.Errorf("required field solver.url empty")
	}

	names := make(map[string]struct{})
	for _, raw := range c.ChainConfigs {
		e, err := NewChainEndpoint(raw)
		if err != nil {
			return err
		}
		if _, ok := names[e.Name]; ok {
			return fmt.Errorf("duplicate endpoint for chain %s", e.Name)
		}
		names[e.Name] = struct{}{}
	}
	return nil
}

func (c *Config) SolverTimeout() time.Duration {
	// nolint:gosec
	return time.Duration(c.Solver.Timeout) * time.Second
}

// Endpoints decodes every configured chain endpoint keyed by chain name.
func (c *Config) Endpoints() (map[string]*ChainEndpoint, error) {
	endpoints := make(map[string]*ChainEndpoint)
	for _, raw := range c.ChainConfigs {
		e, err := NewChainEndpoint(raw)
		if err != nil {
			return nil, err
		}
		endpoints[e.Name] = e
	}
	return endpoints, nil
}

// GetConfigFromFile reads the config file at path and fills empty fields from base.
func GetConfigFromFile(path string, base *Config) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed reading config file %s: %w", path, err)
	}

	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		return nil, err
	}

	return process(c, base)
}

// GetConfigFromENV reads INTENTS_ prefixed environment variables.
// Chains are passed as a JSON array in INTENTS_CHAINS.
func GetConfigFromENV(base *Config) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(ENV_PREFIX)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	keys := []string{
		"logLevel",
		"healthPort",
		"openTelemetryCollectorURL",
		"sharedConfigURL",
		"solver.url",
		"solver.timeout",
		"api.addr",
	}
	for _, k := range keys {
		if err := v.BindEnv(k, fmt.Sprintf("%s_%s", ENV_PREFIX, strings.ToUpper(strings.ReplaceAll(k, ".", "_")))); err != nil {
			return nil, err
		}
	}

	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		return nil, err
	}

	chains := v.GetString("chains")
	if chains != "" {
		if err := json.Unmarshal([]byte(chains), &c.ChainConfigs); err != nil {
			return nil, fmt.Errorf("failed decoding %s_CHAINS: %w", ENV_PREFIX, err)
		}
	}

	return process(c, base)
}

func process(c *Config, base *Config) (*Config, error) {
	if base != nil {
		if err := mergo.Merge(c, base); err != nil {
			return nil, err
		}
	}

	if err := defaults.Set(c); err != nil {
		return nil, err
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// GetSharedConfigFromNetwork fetches the shared solver configuration holding token metadata.
func GetSharedConfigFromNetwork(ctx context.Context, client *http.Client, url string) (solverConfig.SolverConfig, error) {
	sc := solverConfig.SolverConfig{}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return sc, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return sc, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return sc, fmt.Errorf("unexpected status code: %d, %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return sc, fmt.Errorf("failed to read response body: %w", err)
	}

	if err := json.Unmarshal(body, &sc); err != nil {
		return sc, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	return sc, nil
}
