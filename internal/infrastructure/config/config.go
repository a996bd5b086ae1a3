package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	StoreDriverSQLite   = "sqlite"
	StoreDriverDynamoDB = "dynamodb"
	StoreDriverMemory   = "memory"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Log        LogConfig        `mapstructure:"log"`
	Store      StoreConfig      `mapstructure:"store"`
	AWS        AWSConfig        `mapstructure:"aws"`
	Photos     PhotosConfig     `mapstructure:"photos"`
	Vision     VisionConfig     `mapstructure:"vision"`
	Evaluation EvaluationConfig `mapstructure:"evaluation"`
	Payments   PaymentsConfig   `mapstructure:"payments"`
	Auth       AuthConfig       `mapstructure:"auth"`
	CORS       CORSConfig       `mapstructure:"cors"`
}

type ServerConfig struct {
	Port            string        `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// StoreConfig selects the Template Store backend.
type StoreConfig struct {
	Driver         string `mapstructure:"driver"`
	SQLitePath     string `mapstructure:"sqlite_path"`
	TemplatesTable string `mapstructure:"templates_table"`
	OrdersTable    string `mapstructure:"orders_table"`
	PaymentsTable  string `mapstructure:"payments_table"`
}

type AWSConfig struct {
	Region           string `mapstructure:"region"`
	AccessKeyID      string `mapstructure:"access_key_id"`
	SecretAccessKey  string `mapstructure:"secret_access_key"`
	DynamoDBEndpoint string `mapstructure:"dynamodb_endpoint"`
	S3Endpoint       string `mapstructure:"s3_endpoint"`
}

// PhotosConfig configures photo uploads. An empty bucket disables them.
type PhotosConfig struct {
	Bucket string `mapstructure:"bucket"`
	Prefix string `mapstructure:"prefix"`
}

// VisionConfig configures vehicle-data extraction. An empty API key
// disables it.
type VisionConfig struct {
	APIKey  string        `mapstructure:"api_key"`
	Model   string        `mapstructure:"model"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type EvaluationConfig struct {
	RejectNegativePrices bool `mapstructure:"reject_negative_prices"`
}

// PaymentsConfig configures Mercado Pago. The test payer values map a
// sandbox user id to its e-mail when a TEST- token is used.
type PaymentsConfig struct {
	AccessToken     string `mapstructure:"access_token"`
	Mock            bool   `mapstructure:"mock"`
	TestPayerEmail  string `mapstructure:"test_payer_email"`
	TestPayerUserID string `mapstructure:"test_payer_user_id"`
}

// AuthConfig configures the session token. An empty secret disables auth.
type AuthConfig struct {
	JWTSecret string        `mapstructure:"jwt_secret"`
	TokenTTL  time.Duration `mapstructure:"token_ttl"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// envBindings maps config keys to the environment variables that set them.
var envBindings = map[string][]string{
	"server.port":                       {"PORT"},
	"server.mode":                       {"GIN_MODE"},
	"server.shutdown_timeout":           {"SHUTDOWN_TIMEOUT"},
	"log.level":                         {"LOG_LEVEL"},
	"store.driver":                      {"STORE_DRIVER"},
	"store.sqlite_path":                 {"SQLITE_PATH"},
	"store.templates_table":             {"TEMPLATES_TABLE"},
	"store.orders_table":                {"ORDERS_TABLE"},
	"store.payments_table":              {"PAYMENTS_TABLE"},
	"aws.region":                        {"AWS_REGION"},
	"aws.access_key_id":                 {"AWS_ACCESS_KEY_ID"},
	"aws.secret_access_key":             {"AWS_SECRET_ACCESS_KEY"},
	"aws.dynamodb_endpoint":             {"DYNAMODB_ENDPOINT"},
	"aws.s3_endpoint":                   {"S3_ENDPOINT"},
	"photos.bucket":                     {"PHOTOS_BUCKET"},
	"photos.prefix":                     {"PHOTOS_PREFIX"},
	"vision.api_key":                    {"GEMINI_API_KEY"},
	"vision.model":                      {"GEMINI_MODEL"},
	"vision.timeout":                    {"VISION_TIMEOUT"},
	"evaluation.reject_negative_prices": {"REJECT_NEGATIVE_PRICES"},
	"payments.access_token":             {"MERCADOPAGO_ACCESS_TOKEN"},
	"payments.mock":                     {"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"},
	"payments.test_payer_email":         {"MERCADOPAGO_TEST_PAYER_EMAIL"},
	"payments.test_payer_user_id":       {"MERCADOPAGO_TEST_PAYER_USER_ID"},
	"auth.jwt_secret":                   {"JWT_SECRET"},
	"auth.token_ttl":                    {"JWT_TTL"},
	"cors.allowed_origins":              {"CORS_ALLOWED_ORIGINS"},
}

// Load reads configuration from an optional file and the environment.
// Environment variables win over the file.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("log.level", "info")
	v.SetDefault("store.driver", StoreDriverSQLite)
	v.SetDefault("store.sqlite_path", "./data/checkmaster.db")
	v.SetDefault("store.templates_table", "checklist_templates")
	v.SetDefault("store.orders_table", "service_orders")
	v.SetDefault("store.payments_table", "order_payments")
	v.SetDefault("aws.region", "us-east-1")
	v.SetDefault("aws.access_key_id", "local")
	v.SetDefault("aws.secret_access_key", "local")
	v.SetDefault("photos.prefix", "photos")
	v.SetDefault("vision.model", "gemini-2.5-flash")
	v.SetDefault("vision.timeout", "30s")
	v.SetDefault("evaluation.reject_negative_prices", false)
	v.SetDefault("payments.mock", false)
	v.SetDefault("auth.token_ttl", "720h")
	v.SetDefault("cors.allowed_origins", []string{"*"})

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigParseError); ok {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
		}
	}

	for key, envs := range envBindings {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return nil, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) normalize() {
	c.Store.Driver = strings.ToLower(strings.TrimSpace(c.Store.Driver))
	c.Photos.Prefix = strings.Trim(strings.TrimSpace(c.Photos.Prefix), "/")

	origins := make([]string, 0, len(c.CORS.AllowedOrigins))
	for _, o := range c.CORS.AllowedOrigins {
		for _, part := range strings.Split(o, ",") {
			if part = strings.TrimSpace(part); part != "" {
				origins = append(origins, part)
			}
		}
	}
	c.CORS.AllowedOrigins = origins
}

func (c *Config) Validate() error {
	switch c.Store.Driver {
	case StoreDriverSQLite, StoreDriverDynamoDB, StoreDriverMemory:
	default:
		return fmt.Errorf("invalid STORE_DRIVER %q", c.Store.Driver)
	}
	if c.Store.Driver == StoreDriverSQLite && strings.TrimSpace(c.Store.SQLitePath) == "" {
		return fmt.Errorf("SQLITE_PATH is required for the sqlite store")
	}
	if c.Vision.Timeout <= 0 {
		return fmt.Errorf("VISION_TIMEOUT must be positive")
	}
	return nil
}

// AuthEnabled reports whether requests need a session token.
func (c *Config) AuthEnabled() bool {
	return strings.TrimSpace(c.Auth.JWTSecret) != ""
}
