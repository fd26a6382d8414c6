// Package toml loads and initializes the on-disk bot profile.
package toml

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".config/wttrbot"

	profileFileMode = 0o600
	profileDirMode  = 0o700

	envPrefix = "WTTRBOT"
)

var ErrProfileExists = errors.New("profile file already exists")

// Profile is the bot configuration. Aliases preseed the location memory at
// startup with nick → place entries; they are configuration, not runtime
// state, and are never written back.
type Profile struct {
	Server  string            `mapstructure:"server" toml:"server"`
	Port    int               `mapstructure:"port" toml:"port"`
	Channel string            `mapstructure:"channel" toml:"channel"`
	Nick    string            `mapstructure:"nick" toml:"nick"`
	TLS     bool              `mapstructure:"tls" toml:"tls"`
	Aliases map[string]string `mapstructure:"aliases" toml:"aliases,omitempty"`
}

func DefaultProfile() Profile {
	return Profile{
		Port: 6697,
		Nick: "wttrbot",
		TLS:  true,
	}
}

// Repository reads the profile from ~/.config/wttrbot/config.toml, with
// WTTRBOT_* environment variables overriding individual keys. A missing
// file is not an error; defaults apply.
type Repository struct {
	cfg       *viper.Viper
	configDir string
}

func NewRepository(cfg *viper.Viper) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}
	dir := filepath.Join(homeDir, filepath.FromSlash(configDir))

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(dir)
	cfg.SetEnvPrefix(envPrefix)
	cfg.AutomaticEnv()

	defaults := DefaultProfile()
	cfg.SetDefault("server", defaults.Server)
	cfg.SetDefault("port", defaults.Port)
	cfg.SetDefault("channel", defaults.Channel)
	cfg.SetDefault("nick", defaults.Nick)
	cfg.SetDefault("tls", defaults.TLS)
	cfg.SetDefault("aliases", map[string]string{})

	if err := cfg.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read profile file: %w", err)
		}
	}

	return &Repository{cfg: cfg, configDir: dir}, nil
}

func (r *Repository) Load() (Profile, error) {
	var profile Profile
	if err := r.cfg.Unmarshal(&profile); err != nil {
		return Profile{}, fmt.Errorf("decode profile: %w", err)
	}
	return profile, nil
}

// InitFile writes a default profile and returns its path. An existing file
// is only replaced with force.
func (r *Repository) InitFile(force bool) (string, error) {
	path := filepath.Join(r.configDir, configName+"."+configType)
	if !force {
		if _, err := os.Stat(path); err == nil {
			return "", fmt.Errorf("%w: %s", ErrProfileExists, path)
		}
	}

	data, err := toml.Marshal(DefaultProfile())
	if err != nil {
		return "", fmt.Errorf("encode default profile: %w", err)
	}

	if err := os.MkdirAll(r.configDir, profileDirMode); err != nil {
		return "", fmt.Errorf("create profile directory: %w", err)
	}
	if err := os.WriteFile(path, data, profileFileMode); err != nil {
		return "", fmt.Errorf("write profile file: %w", err)
	}
	return path, nil
}
