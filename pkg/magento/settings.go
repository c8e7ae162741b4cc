package magento

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Settings is the transportable client state: enough to rebuild an
// equivalent client elsewhere, including the current access token so the
// rebuilt client can skip re-authentication while the token stays valid.
type Settings struct {
	Domain    string `yaml:"domain" mapstructure:"domain"`
	Username  string `yaml:"username" mapstructure:"username"`
	Password  string `yaml:"password" mapstructure:"password"`
	Scope     string `yaml:"scope" mapstructure:"scope"`
	Local     bool   `yaml:"local" mapstructure:"local"`
	UserAgent string `yaml:"user_agent" mapstructure:"user_agent"`
	Token     string `yaml:"token" mapstructure:"token"`
	LogLevel  string `yaml:"log_level" mapstructure:"log_level"`
	LogFile   string `yaml:"log_file" mapstructure:"log_file"`
}

// LoadSettings reads settings from a YAML, JSON or TOML file. Environment
// variables prefixed with MAGENTO_ override file values (MAGENTO_PASSWORD
// overrides the password key).
func LoadSettings(path string) (*Settings, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("MAGENTO")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	if s.Domain == "" {
		return nil, ErrDomainRequired
	}
	return &s, nil
}

// Save writes settings to a YAML file with owner-only permissions; the
// file carries credentials.
func (s *Settings) Save(path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	return nil
}
