package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
	"golang.org/x/xerrors"

	"github.com/x-xyz/nftrelay/base/validator"
)

// DefaultPath is read when present; without it the process runs on env vars
const DefaultPath = "infra/configs/config.yaml"

type Config struct {
	Debug       bool   `mapstructure:"debug"`
	EnvName     string `mapstructure:"env_name"`
	AppName     string `mapstructure:"app_name"`
	PodName     string `mapstructure:"pod_name"`
	DatadogHost string `mapstructure:"datadog_host"`

	Server     ServerCfg     `mapstructure:"server"`
	Bitscrunch BitscrunchCfg `mapstructure:"bitscrunch"`
}

type ServerCfg struct {
	Port int `mapstructure:"port" validate:"min=1,max=65535"`
	// StrictParams rejects requests missing tokenId/contractAddress locally
	// instead of forwarding them
	StrictParams    bool          `mapstructure:"strictParams"`
	ShutdownTimeout time.Duration `mapstructure:"shutdownTimeout" validate:"min=0"`
}

// Address is the listen address handed to echo
func (s ServerCfg) Address() string {
	return fmt.Sprintf(":%d", s.Port)
}

type BitscrunchCfg struct {
	ApiKey  string        `mapstructure:"apiKey" validate:"required"`
	BaseUrl string        `mapstructure:"baseUrl" validate:"required,url"`
	Timeout time.Duration `mapstructure:"timeout" validate:"min=0"`
}

var envBindings = map[string]string{
	"debug":               "DEBUG",
	"env_name":            "ENV_NAME",
	"app_name":            "APP_NAME",
	"pod_name":            "PODNAME",
	"datadog_host":        "DATADOG_HOST",
	"server.port":         "PORT",
	"server.strictParams": "STRICT_PARAMS",
	"bitscrunch.apiKey":   "BITSCRUNCH_API_KEY",
	"bitscrunch.baseUrl":  "BITSCRUNCH_API_BASE_URL",
	"bitscrunch.timeout":  "BITSCRUNCH_TIMEOUT",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app_name", "nftrelay")
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.strictParams", false)
	v.SetDefault("server.shutdownTimeout", 10*time.Second)
	v.SetDefault("bitscrunch.timeout", 30*time.Second)
}

// Load reads the yaml file at path, applies env overrides and validates the
// result. A missing file is only tolerated for DefaultPath.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return Config{}, err
		}
	}

	if path != "" {
		if _, err := os.Stat(path); err == nil || path != DefaultPath {
			v.SetConfigType("yaml")
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return Config{}, xerrors.Errorf("read config %s: %w", path, err)
			}
		}
	}

	cfg := Config{}
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, xerrors.Errorf("decode config: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, xerrors.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
