package config

import (
	"crypto/rsa"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/joho/godotenv"
)

// Config aggregates all runtime configuration. It is built once in Load and
// passed by reference; nothing reads the environment after startup.
type Config struct {
	App      AppConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	Auth     AuthConfig
	S3       S3Config
}

type AppConfig struct {
	Env  string
	Port string
}

type PostgresConfig struct {
	Host     string
	User     string
	Password string
	Name     string
	Port     string
	SSLMode  string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type KafkaConfig struct {
	Broker        string
	ConsumerGroup string
}

// AuthConfig carries the token signing material. Tokens are signed with the
// private key and verified with the public key only, so verifiers never need
// the signing secret.
type AuthConfig struct {
	PrivateKey    *rsa.PrivateKey
	PublicKey     *rsa.PublicKey
	TokenTTL      time.Duration
	ManagerSecret string
	BcryptCost    int
}

type S3Config struct {
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
}

// Load reads configuration from the environment, applying defaults where a
// default is safe. Key material is mandatory.
func Load() (*Config, error) {
	_ = godotenv.Load()

	privateKey, err := jwt.ParseRSAPrivateKeyFromPEM(pemFromEnv("PRIVATE_KEY"))
	if err != nil {
		return nil, fmt.Errorf("parse PRIVATE_KEY: %w", err)
	}
	publicKey, err := jwt.ParseRSAPublicKeyFromPEM(pemFromEnv("PUBLIC_KEY"))
	if err != nil {
		return nil, fmt.Errorf("parse PUBLIC_KEY: %w", err)
	}

	ttlMinutes := getEnvAsInt("TOKEN_EXPIRE_TIME", 30)
	managerSecret := os.Getenv("MANAGER_SECRET_KEY")
	if managerSecret == "" {
		return nil, fmt.Errorf("MANAGER_SECRET_KEY is required")
	}

	cfg := &Config{
		App: AppConfig{
			Env:  getEnv("APP_ENV", "development"),
			Port: getEnv("PORT", "3000"),
		},
		Postgres: PostgresConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			User:     getEnv("DB_USER", "postgres"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     getEnv("DB_NAME", "attendance"),
			Port:     getEnv("DB_PORT", "5432"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Kafka: KafkaConfig{
			Broker:        os.Getenv("KAFKA_BROKER"),
			ConsumerGroup: getEnv("KAFKA_CONSUMER_GROUP", "attendance-backend"),
		},
		Auth: AuthConfig{
			PrivateKey:    privateKey,
			PublicKey:     publicKey,
			TokenTTL:      time.Duration(ttlMinutes) * time.Minute,
			ManagerSecret: managerSecret,
			BcryptCost:    getEnvAsInt("BCRYPT_COST", 12),
		},
		S3: S3Config{
			Region:          os.Getenv("AWS_REGION"),
			Bucket:          os.Getenv("AWS_S3_BUCKET_NAME"),
			AccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
			SecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		},
	}

	return cfg, nil
}

// pemFromEnv tolerates keys stored with literal \n sequences, which is how
// single-line env files usually carry PEM blocks.
func pemFromEnv(key string) []byte {
	return []byte(strings.ReplaceAll(os.Getenv(key), `\n`, "\n"))
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}
