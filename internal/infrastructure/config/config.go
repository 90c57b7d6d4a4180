package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
//
// Values come from the environment (a .env file is loaded by cmd/api before Load runs).
type Config struct {
	Port     int
	LogLevel string

	AWS       AWSConfig
	Tables    TablesConfig
	Directory DirectoryConfig
	Kafka     KafkaConfig
	Payments  PaymentsConfig
	Tracing   TracingConfig
}

// AWSConfig holds DynamoDB connection settings.
//
// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
type AWSConfig struct {
	Region           string
	AccessKeyID      string
	SecretAccessKey  string
	DynamoDBEndpoint string
}

type TablesConfig struct {
	Orders  string
	Reports string
}

// DirectoryConfig configures the technician directory client.
type DirectoryConfig struct {
	BaseURL string
	Timeout time.Duration
	Mock    bool
	MockID  string
}

type KafkaConfig struct {
	Brokers         []string
	CompletionTopic string
}

// PaymentsConfig configures the Mercado Pago payment-method catalog.
type PaymentsConfig struct {
	MercadoPagoAccessToken string
	CatalogMock            bool
}

// TracingConfig selects the span exporter ("none" or "stdout") and head sampling ratio.
type TracingConfig struct {
	Exporter    string
	SampleRatio float64
}

var envKeys = map[string]string{
	"port":                       "PORT",
	"log_level":                  "LOG_LEVEL",
	"aws.region":                 "AWS_REGION",
	"aws.access_key_id":          "AWS_ACCESS_KEY_ID",
	"aws.secret_access_key":      "AWS_SECRET_ACCESS_KEY",
	"aws.dynamodb_endpoint":      "DYNAMODB_ENDPOINT",
	"tables.orders":              "ORDERS_TABLE",
	"tables.reports":             "REPORTS_TABLE",
	"directory.base_url":         "TECHNICIAN_DIRECTORY_URL",
	"directory.timeout":          "TECHNICIAN_DIRECTORY_TIMEOUT",
	"directory.mock":             "TECHNICIAN_DIRECTORY_MOCK",
	"directory.mock_id":          "TECHNICIAN_DIRECTORY_MOCK_ID",
	"kafka.brokers":              "KAFKA_BROKERS",
	"kafka.completion_topic":     "KAFKA_COMPLETION_TOPIC",
	"payments.mercadopago_token": "MERCADOPAGO_ACCESS_TOKEN",
	"payments.catalog_mock":      "PAYMENT_METHOD_CATALOG_MOCK",
	"tracing.exporter":           "TRACING_EXPORTER",
	"tracing.sample_ratio":       "TRACING_SAMPLE_RATIO",
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg, err := read()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// LoadStorage reads configuration for commands that only touch DynamoDB.
func LoadStorage() (*Config, error) {
	cfg, err := read()
	if err != nil {
		return nil, err
	}
	if err := cfg.validateTables(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func read() (*Config, error) {
	v := viper.New()
	setDefaults(v)
	for key, env := range envKeys {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	cfg := &Config{
		Port:     v.GetInt("port"),
		LogLevel: v.GetString("log_level"),
		AWS: AWSConfig{
			Region:           v.GetString("aws.region"),
			AccessKeyID:      v.GetString("aws.access_key_id"),
			SecretAccessKey:  v.GetString("aws.secret_access_key"),
			DynamoDBEndpoint: v.GetString("aws.dynamodb_endpoint"),
		},
		Tables: TablesConfig{
			Orders:  v.GetString("tables.orders"),
			Reports: v.GetString("tables.reports"),
		},
		Directory: DirectoryConfig{
			BaseURL: strings.TrimRight(strings.TrimSpace(v.GetString("directory.base_url")), "/"),
			Timeout: v.GetDuration("directory.timeout"),
			Mock:    v.GetBool("directory.mock"),
			MockID:  strings.TrimSpace(v.GetString("directory.mock_id")),
		},
		Kafka: KafkaConfig{
			Brokers:         splitList(v.GetString("kafka.brokers")),
			CompletionTopic: v.GetString("kafka.completion_topic"),
		},
		Payments: PaymentsConfig{
			MercadoPagoAccessToken: strings.TrimSpace(v.GetString("payments.mercadopago_token")),
			CatalogMock:            v.GetBool("payments.catalog_mock"),
		},
		Tracing: TracingConfig{
			Exporter:    strings.ToLower(strings.TrimSpace(v.GetString("tracing.exporter"))),
			SampleRatio: v.GetFloat64("tracing.sample_ratio"),
		},
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", 8080)
	v.SetDefault("log_level", "info")

	v.SetDefault("aws.region", "us-east-1")
	v.SetDefault("aws.access_key_id", "local")
	v.SetDefault("aws.secret_access_key", "local")

	v.SetDefault("tables.orders", "repair_orders")
	v.SetDefault("tables.reports", "technician_reports")

	v.SetDefault("directory.timeout", 5*time.Second)
	v.SetDefault("directory.mock", false)

	v.SetDefault("kafka.completion_topic", "repair_completed")

	v.SetDefault("tracing.exporter", "none")
	v.SetDefault("tracing.sample_ratio", 1.0)
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535 (got %d)", c.Port)
	}
	if err := c.validateTables(); err != nil {
		return err
	}
	if c.Directory.Mock {
		if c.Directory.MockID == "" {
			return fmt.Errorf("TECHNICIAN_DIRECTORY_MOCK_ID is required when the directory mock is enabled")
		}
	} else if c.Directory.BaseURL == "" {
		return fmt.Errorf("TECHNICIAN_DIRECTORY_URL is required")
	}
	if c.Directory.Timeout <= 0 {
		return fmt.Errorf("technician directory timeout must be positive")
	}
	if len(c.Kafka.Brokers) > 0 && c.Kafka.CompletionTopic == "" {
		return fmt.Errorf("KAFKA_COMPLETION_TOPIC is required when KAFKA_BROKERS is set")
	}
	switch c.Tracing.Exporter {
	case "none", "stdout":
	default:
		return fmt.Errorf("TRACING_EXPORTER must be none or stdout (got %q)", c.Tracing.Exporter)
	}
	if c.Tracing.SampleRatio < 0 || c.Tracing.SampleRatio > 1 {
		return fmt.Errorf("TRACING_SAMPLE_RATIO must be between 0 and 1")
	}
	return nil
}

func (c *Config) validateTables() error {
	if c.Tables.Orders == "" || c.Tables.Reports == "" {
		return fmt.Errorf("orders and reports table names are required")
	}
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
