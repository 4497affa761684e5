package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	StoreDriverMemory   = "memory"
	StoreDriverPostgres = "postgres"
)

type Config struct {
	HTTPPort               string
	StoreDriver            string
	SeedMockOrders         bool
	DBHost                 string
	DBPort                 string
	DBUser                 string
	DBPassword             string
	DBName                 string
	DBSslMode              string
	KafkaHost              string
	KafkaOrderChangedTopic string
	InboxDigestSchedule    string
}

// LoadConfig reads the configuration from the environment after loading
// envFile into it. A missing file is not an error; variables already set in
// the environment win over the file.
func LoadConfig(envFile string) (Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", envFile, err)
	}

	seed, err := strconv.ParseBool(getEnv("SEED_MOCK_ORDERS", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("SEED_MOCK_ORDERS: %w", err)
	}

	config := Config{
		HTTPPort:               getEnv("HTTP_PORT", "8082"),
		StoreDriver:            strings.ToLower(getEnv("STORE_DRIVER", StoreDriverMemory)),
		SeedMockOrders:         seed,
		DBHost:                 getEnv("DB_HOST", "localhost"),
		DBPort:                 getEnv("DB_PORT", "5432"),
		DBUser:                 getEnv("DB_USER", "postgres"),
		DBPassword:             getEnv("DB_PASSWORD", ""),
		DBName:                 getEnv("DB_NAME", "loan_audit"),
		DBSslMode:              getEnv("DB_SSLMODE", "disable"),
		KafkaHost:              getEnv("KAFKA_HOST", ""),
		KafkaOrderChangedTopic: getEnv("KAFKA_ORDER_CHANGED_TOPIC", "order.status.changed"),
		InboxDigestSchedule:    getEnv("INBOX_DIGEST_SCHEDULE", "0 */5 * * * *"),
	}

	if err = config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

// Validate checks the values that cannot be defaulted.
func (c Config) Validate() error {
	var errList []error
	if c.HTTPPort == "" {
		errList = append(errList, errors.New("HTTP_PORT is required"))
	}
	switch c.StoreDriver {
	case StoreDriverMemory, StoreDriverPostgres:
	default:
		errList = append(errList, fmt.Errorf("STORE_DRIVER must be %q or %q, got %q",
			StoreDriverMemory, StoreDriverPostgres, c.StoreDriver))
	}
	if c.KafkaHost != "" && c.KafkaOrderChangedTopic == "" {
		errList = append(errList, errors.New("KAFKA_ORDER_CHANGED_TOPIC is required when KAFKA_HOST is set"))
	}
	return errors.Join(errList...)
}

// KafkaBrokers splits KAFKA_HOST on commas.
func (c Config) KafkaBrokers() []string {
	var brokers []string
	for _, b := range strings.Split(c.KafkaHost, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}
