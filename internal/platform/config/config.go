package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/juju/errors"
	"gopkg.in/yaml.v3"
)

// Config se arma en tres capas: defaults, archivo YAML opcional
// (PETCLINIC_CONFIG) y variables de entorno, que siempre ganan.
type Config struct {
	Port    string `yaml:"port"`
	AppName string `yaml:"app_name"`

	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`

	DB struct {
		// Driver vacío => repos en memoria con datos de ejemplo.
		Driver string `yaml:"driver"`
		DSN    string `yaml:"dsn"`
	} `yaml:"db"`

	Photos struct {
		Backend   string `yaml:"backend"` // memory | local | gcs
		LocalPath string `yaml:"local_path"`
		GCSBucket string `yaml:"gcs_bucket"`
		GCSPrefix string `yaml:"gcs_prefix"`
	} `yaml:"photos"`

	Redis struct {
		// Addr vacío => sin cache de vets.
		Addr    string        `yaml:"addr"`
		VetsTTL time.Duration `yaml:"vets_ttl"`
	} `yaml:"redis"`

	Odin struct {
		// BaseURL vacío => modo dev (header X-Debug-User-ID).
		BaseURL string `yaml:"base_url"`
		APIKey  string `yaml:"api_key"`
	} `yaml:"odin"`
}

func Defaults() Config {
	var c Config
	c.Port = "8080"
	c.AppName = "petclinic"
	c.Log.Level = "info"
	c.Log.Format = "text"
	c.Photos.Backend = "local"
	c.Photos.LocalPath = "./data/photos"
	c.Redis.VetsTTL = 5 * time.Minute
	return c
}

// Load aplica defaults, el archivo de PETCLINIC_CONFIG si existe y el entorno.
func Load() (Config, error) {
	c := Defaults()

	if path := strings.TrimSpace(os.Getenv("PETCLINIC_CONFIG")); path != "" {
		if err := c.loadFile(path); err != nil {
			return Config{}, err
		}
	}
	if err := c.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := c.validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c *Config) loadFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return errors.Annotatef(err, "read config %s", path)
	}
	if err := yaml.Unmarshal(raw, c); err != nil {
		return errors.Annotatef(err, "parse config %s", path)
	}
	return nil
}

func (c *Config) applyEnv() error {
	setString(&c.Port, "PORT")
	setString(&c.AppName, "APP_NAME")
	setString(&c.Log.Level, "LOG_LEVEL")
	setString(&c.Log.Format, "LOG_FORMAT")
	setString(&c.DB.Driver, "DB_DRIVER")
	setString(&c.DB.DSN, "DB_DSN")
	setString(&c.Photos.Backend, "PHOTO_BACKEND")
	setString(&c.Photos.LocalPath, "PHOTO_LOCAL_PATH")
	setString(&c.Photos.GCSBucket, "PHOTO_GCS_BUCKET")
	setString(&c.Photos.GCSPrefix, "PHOTO_GCS_PREFIX")
	setString(&c.Redis.Addr, "REDIS_ADDR")
	setString(&c.Odin.BaseURL, "ODIN_BASE_URL")
	setString(&c.Odin.APIKey, "ODIN_API_KEY")

	if v, ok := lookup("VETS_CACHE_TTL"); ok {
		d, err := parseDuration(v)
		if err != nil {
			return errors.Annotate(err, "VETS_CACHE_TTL")
		}
		c.Redis.VetsTTL = d
	}
	return nil
}

func (c *Config) validate() error {
	if _, err := strconv.Atoi(c.Port); err != nil {
		return errors.NotValidf("port %q", c.Port)
	}
	switch c.Photos.Backend {
	case "memory", "local":
	case "gcs":
		if c.Photos.GCSBucket == "" {
			return errors.NotValidf("photo backend gcs without bucket")
		}
	default:
		return errors.NotValidf("photo backend %q", c.Photos.Backend)
	}
	if c.DB.Driver != "" && c.DB.DSN == "" {
		return errors.NotValidf("db driver %q without dsn", c.DB.Driver)
	}
	return nil
}

// Addr es la dirección de escucha del server.
func (c Config) Addr() string {
	return ":" + c.Port
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}

func setString(dst *string, key string) {
	if v, ok := lookup(key); ok {
		*dst = v
	}
}

// parseDuration acepta "90s"/"5m" o segundos sueltos ("300").
func parseDuration(v string) (time.Duration, error) {
	if n, err := strconv.Atoi(v); err == nil {
		return time.Duration(n) * time.Second, nil
	}
	return time.ParseDuration(v)
}
