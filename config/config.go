package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"petfeeder/internal/domain/constants"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultOfflineThreshold   = 5 * time.Minute
	defaultSweepInterval      = time.Minute
	defaultDeviceTokenTTL     = 365 * 24 * time.Hour
	defaultPollInterval       = 30 * time.Second
	defaultBatchSize          = 5
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Database holds options applied on top of the connection.
	Database DatabaseConfig `json:"database" yaml:"database"`

	SecretKey struct {
		// Access signs user and device JWTs.
		Access string `json:"access" yaml:"access"`
		// Device keys the HMAC that derives per-binding device keys.
		Device string `json:"device" yaml:"device"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Feeder configures registration and health tracking.
	Feeder *FeederConfig `json:"feeder" yaml:"feeder"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// Pushover configuration for push notifications
	Pushover *PushoverConfig `json:"pushover" yaml:"pushover"`

	// QRCode configuration for activation QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// InfluxDB configuration for telemetry history
	InfluxDB *InfluxDBConfig `json:"influxdb" yaml:"influxdb"`

	// Worker configuration for the notifier
	Worker *WorkerConfig `json:"worker" yaml:"worker"`
}

// DatabaseConfig defines options applied after connecting.
type DatabaseConfig struct {
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`
	// SlowThreshold marks queries logged as slow; zero keeps the default.
	SlowThreshold time.Duration `json:"slowThreshold" yaml:"slowThreshold"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost     int           `json:"bcryptCost" yaml:"bcryptCost"`
	AccessTokenTTL time.Duration `json:"accessTokenTTL" yaml:"accessTokenTTL"`
}

// FeederConfig defines device registration and health tracking.
type FeederConfig struct {
	// RegistrationMode is "open" (self-registration on first contact) or "allowlist".
	RegistrationMode string `json:"registrationMode" yaml:"registrationMode"`

	// OfflineThreshold is the silence after which a device is reported offline.
	OfflineThreshold time.Duration `json:"offlineThreshold" yaml:"offlineThreshold"`

	// SweepInterval is how often the offline sweep runs.
	SweepInterval time.Duration `json:"sweepInterval" yaml:"sweepInterval"`

	// DefaultTimezone is used when neither the request nor the user settings carry one.
	DefaultTimezone string `json:"defaultTimezone" yaml:"defaultTimezone"`

	// ActivationURL is the page the activation QR code points to.
	ActivationURL string `json:"activationUrl" yaml:"activationUrl"`

	// DeviceTokenTTL is the lifetime of the api_key returned by verify.
	DeviceTokenTTL time.Duration `json:"deviceTokenTTL" yaml:"deviceTokenTTL"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// PushoverConfig defines the Pushover application used for notifications.
type PushoverConfig struct {
	AppToken string `json:"appToken" yaml:"appToken"`
	// RatePerSecond spaces consecutive sends.
	RatePerSecond float64 `json:"ratePerSecond" yaml:"ratePerSecond"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// Audience expected in push tokens (for google provider)
	PushAudience string `json:"pushAudience" yaml:"pushAudience"`
}

// InfluxDBConfig defines where heartbeat telemetry is written.
type InfluxDBConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	URL     string `json:"url" yaml:"url"`
	Token   string `json:"token" yaml:"token"`
	Org     string `json:"org" yaml:"org"`
	Bucket  string `json:"bucket" yaml:"bucket"`
}

// WorkerConfig defines the notifier dispatch loop.
type WorkerConfig struct {
	PollInterval time.Duration `json:"pollInterval" yaml:"pollInterval"`
	BatchSize    int           `json:"batchSize" yaml:"batchSize"`
}

// LoadWithEnv reads <currEnv>.yaml from the first directory that has it and
// overlays environment variables, e.g. FEEDER_OFFLINETHRESHOLD=10m.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	configFile, err := findConfigFile(currEnv+".yaml", configPath)
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s", configFile)
	}

	// Env keys are upper case; map them onto the camelCase keys of the file.
	fromFile := k.Raw()
	if err := k.Load(env.Provider(".", env.Opt{
		TransformFunc: func(key, value string) (string, any) {
			return canonicalizeEnvKey(key, fromFile), value
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load environment")
	}

	cfg := new(T)
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
			MatchName:        strings.EqualFold,
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "decode %s", configFile)
	}

	return cfg, nil
}

// findConfigFile looks in the working directory, then in dirs relative to it.
func findConfigFile(name string, dirs []string) (string, error) {
	candidates := []string{filepath.Join(defaultPath, name)}
	if len(dirs) > 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(err, "os.Getwd")
		}
		for _, dir := range dirs {
			candidates = append(candidates, filepath.Join(pwd, dir, name))
		}
	}

	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}

	return "", errors.Errorf("%s not found in %v", name, candidates)
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = replicasFromEnv(os.Getenv)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate rejects settings that would only fail later, at the first
// request that needs them.
func (cfg *Config) validate() error {
	switch cfg.Feeder.RegistrationMode {
	case constants.RegistrationModeOpen, constants.RegistrationModeAllowlist:
	default:
		return errors.Errorf("feeder.registrationMode must be %q or %q, got %q",
			constants.RegistrationModeOpen, constants.RegistrationModeAllowlist, cfg.Feeder.RegistrationMode)
	}

	if _, err := time.LoadLocation(cfg.Feeder.DefaultTimezone); err != nil {
		return errors.Wrap(err, "feeder.defaultTimezone")
	}

	if cfg.Env.Env == constants.EnvProduction {
		if cfg.SecretKey.Access == "" || cfg.SecretKey.Device == "" {
			return errors.New("secretKey.access and secretKey.device are required in production")
		}
	}

	return nil
}

func (cfg *Config) applyDefaults() {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Feeder == nil {
		cfg.Feeder = &FeederConfig{}
	}
	if cfg.Feeder.RegistrationMode == "" {
		cfg.Feeder.RegistrationMode = constants.RegistrationModeOpen
	}
	if cfg.Feeder.OfflineThreshold <= 0 {
		cfg.Feeder.OfflineThreshold = defaultOfflineThreshold
	}
	if cfg.Feeder.SweepInterval <= 0 {
		cfg.Feeder.SweepInterval = defaultSweepInterval
	}
	if cfg.Feeder.DefaultTimezone == "" {
		cfg.Feeder.DefaultTimezone = "UTC"
	}
	if cfg.Feeder.DeviceTokenTTL <= 0 {
		cfg.Feeder.DeviceTokenTTL = defaultDeviceTokenTTL
	}

	if cfg.Worker == nil {
		cfg.Worker = &WorkerConfig{}
	}
	if cfg.Worker.PollInterval <= 0 {
		cfg.Worker.PollInterval = defaultPollInterval
	}
	if cfg.Worker.BatchSize <= 0 {
		cfg.Worker.BatchSize = defaultBatchSize
	}
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

// replicasFromEnv reads POSTGRES_REPLICAS_{i}_{HOST,PORT,USERNAME,PASSWORD}
// for i = 0, 1, ... until a host or port is missing.
func replicasFromEnv(getenv func(string) string) []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"
		host, port := getenv(prefix+"HOST"), getenv(prefix+"PORT")
		if host == "" || port == "" {
			return replicas
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: getenv(prefix + "USERNAME"),
			Password: getenv(prefix + "PASSWORD"),
		})
	}
}
