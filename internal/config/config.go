// Package config loads service settings from flags, HELIX_WEB_* environment
// variables, an optional config file, and a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "HELIX_WEB"

// Config is the resolved service configuration.
type Config struct {
	Port         string        `mapstructure:"port"`
	Addr         string        `mapstructure:"addr"`
	Dev          bool          `mapstructure:"dev"`
	Env          string        `mapstructure:"env"`
	BaseURL      string        `mapstructure:"base_url"`
	TemplatesDir string        `mapstructure:"templates_dir"`
	PublicDir    string        `mapstructure:"public_dir"`
	ContentDir   string        `mapstructure:"content_dir"`
	FormEndpoint string        `mapstructure:"form_endpoint"`
	FormTimeout  time.Duration `mapstructure:"form_timeout"`
	MaxUpload    int64         `mapstructure:"max_upload_bytes"`
	H2C          bool          `mapstructure:"h2c"`
	EcwidStoreID string        `mapstructure:"ecwid_store_id"`
	Analytics    Analytics     `mapstructure:",squash"`
}

// Analytics holds client instrumentation configuration surfaced to templates.
type Analytics struct {
	GA4MeasurementID string `mapstructure:"ga_measurement_id"`
	GTMContainerID   string `mapstructure:"gtm_container_id"`
	Debug            bool   `mapstructure:"analytics_debug"`
}

// Options controls where Load looks.
type Options struct {
	// ConfigFile is an explicit config file; empty searches ./helix-web.yaml.
	ConfigFile string
	// EnvFiles are dotenv files loaded before reading the environment. Missing files are skipped.
	EnvFiles []string
}

var errBadURL = errors.New("config: base_url must be an absolute http(s) URL")

// Load resolves the configuration. Environment variables take precedence
// over the config file; .env values never override the real environment.
func Load(opts Options) (Config, error) {
	envFiles := opts.EnvFiles
	if envFiles == nil {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !isNotExist(err) {
			return Config{}, fmt.Errorf("config: load %s: %w", f, err)
		}
	}

	v := viper.New()
	setDefaults(v)

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("helix-web")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// Platform conventions: PORT from the runtime, DEV as a short dev switch.
	_ = v.BindEnv("port", envPrefix+"_PORT", "PORT")
	_ = v.BindEnv("dev", envPrefix+"_DEV", "DEV")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || opts.ConfigFile != "" {
			return Config{}, fmt.Errorf("config: read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.normalize(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("addr", "")
	v.SetDefault("dev", false)
	v.SetDefault("env", "production")
	v.SetDefault("base_url", "https://helixcraftworks.com")
	v.SetDefault("templates_dir", "templates")
	v.SetDefault("public_dir", "public")
	v.SetDefault("content_dir", "content/pages")
	v.SetDefault("form_endpoint", "")
	v.SetDefault("form_timeout", "8s")
	v.SetDefault("max_upload_bytes", 10<<20)
	v.SetDefault("h2c", false)
	v.SetDefault("ecwid_store_id", "116136023")
	v.SetDefault("ga_measurement_id", "")
	v.SetDefault("gtm_container_id", "")
	v.SetDefault("analytics_debug", false)
}

func (c *Config) normalize() error {
	c.Port = strings.TrimSpace(c.Port)
	if c.Port == "" {
		c.Port = "8080"
	}
	if strings.TrimSpace(c.Addr) == "" {
		c.Addr = ":" + c.Port
	}
	c.BaseURL = strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if c.BaseURL != "" {
		u, err := url.Parse(c.BaseURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return errBadURL
		}
	}
	c.FormEndpoint = strings.TrimSpace(c.FormEndpoint)
	if c.FormTimeout <= 0 {
		c.FormTimeout = 8 * time.Second
	}
	if c.MaxUpload <= 0 {
		c.MaxUpload = 10 << 20
	}
	return nil
}

// Secure reports whether cookies should be marked Secure.
func (c Config) Secure() bool {
	return !c.Dev && strings.HasPrefix(c.BaseURL, "https://")
}

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
