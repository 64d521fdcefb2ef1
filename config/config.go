package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath = "."

	defaultAccountBaseURL        = "https://localhost:7059"
	defaultAccountTimeout        = 30 * time.Second
	defaultStoragePath           = "cabinet.db"
	defaultHeartbeatTimeout      = 3 * time.Second
	defaultDevServerPort         = 7059
	defaultDevServerTokenTTL     = time.Hour
	defaultDevServerNamePrefix   = "guest"
	defaultQRCodeCorrectionLevel = "M"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	// Account configures the remote account service the session talks to
	Account AccountConfig `json:"account" yaml:"account"`

	// Storage configures the local database holding the device identity
	Storage StorageConfig `json:"storage" yaml:"storage"`

	// Heartbeat configures the shutdown heartbeat
	Heartbeat HeartbeatConfig `json:"heartbeat" yaml:"heartbeat"`

	// QRCode configuration for the identity QR shown by the terminal UI
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// DevServer configures the in-memory account service used for local development
	DevServer DevServerConfig `json:"devServer" yaml:"devServer"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// AccountConfig defines how to reach the account service
type AccountConfig struct {
	BaseURL string        `json:"baseUrl" yaml:"baseUrl"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// Disables certificate validation. Development only, never enable against production.
	InsecureSkipVerify bool `json:"insecureSkipVerify" yaml:"insecureSkipVerify"`
}

// StorageConfig defines the local SQLite database location
type StorageConfig struct {
	Path string `json:"path" yaml:"path"`
}

// HeartbeatConfig defines the best-effort heartbeat sent on shutdown
type HeartbeatConfig struct {
	// Upper bound the shutdown waits for the heartbeat response
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// DevServerConfig defines the dev account service
type DevServerConfig struct {
	Port                  int           `json:"port" yaml:"port"`
	Secret                string        `json:"secret" yaml:"secret"`
	TokenTTL              time.Duration `json:"tokenTtl" yaml:"tokenTtl"`
	DefaultUsernamePrefix string        `json:"defaultUsernamePrefix" yaml:"defaultUsernamePrefix"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: ACCOUNT_BASEURL -> account.baseUrl (not account.baseurl)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()

	return cfg, nil
}

// ApplyDefaults fills every unset value with its default.
func (c *Config) ApplyDefaults() {
	if strings.TrimSpace(c.Env.ServiceName) == "" {
		c.Env.ServiceName = "cabinet"
	}
	if strings.TrimSpace(c.Env.Log.Level) == "" {
		c.Env.Log.Level = "info"
	}
	if strings.TrimSpace(c.Account.BaseURL) == "" {
		c.Account.BaseURL = defaultAccountBaseURL
	}
	c.Account.BaseURL = strings.TrimRight(c.Account.BaseURL, "/")
	if c.Account.Timeout <= 0 {
		c.Account.Timeout = defaultAccountTimeout
	}
	if strings.TrimSpace(c.Storage.Path) == "" {
		c.Storage.Path = defaultStoragePath
	}
	if c.Heartbeat.Timeout <= 0 {
		c.Heartbeat.Timeout = defaultHeartbeatTimeout
	}
	if c.QRCode == nil {
		c.QRCode = &QRCodeConfig{}
	}
	if c.QRCode.ErrorCorrectionLevel == "" {
		c.QRCode.ErrorCorrectionLevel = defaultQRCodeCorrectionLevel
	}
	if c.DevServer.Port == 0 {
		c.DevServer.Port = defaultDevServerPort
	}
	if c.DevServer.TokenTTL <= 0 {
		c.DevServer.TokenTTL = defaultDevServerTokenTTL
	}
	if c.DevServer.DefaultUsernamePrefix == "" {
		c.DevServer.DefaultUsernamePrefix = defaultDevServerNamePrefix
	}
}

// loadDotEnv exports variables from a .env file when one exists.
// Variables already present in the process environment win.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}

		return errors.Wrapf(err, "load %s failed", path)
	}

	return nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
