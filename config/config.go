package config

import (
	"context"
	"database/sql"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
)

type Config struct {
	HTTPAddr string

	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string

	RedisHost string
	RedisPort string

	KafkaBroker string
	OrdersTopic string

	MenuCacheTTL time.Duration
	QRBaseURL    string

	OrderSvcURL string
	StatsSvcURL string

	LogLevel  string
	LogFormat string
}

// Load reads an optional .env file and then the process environment.
// Variables already set in the environment win over .env entries.
func Load(defaultAddr string) Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("failed to read .env file")
	}

	return Config{
		HTTPAddr: GetEnv("HTTP_ADDR", defaultAddr),

		DBHost:     GetEnv("DB_HOST", "localhost"),
		DBPort:     GetEnv("DB_PORT", "5432"),
		DBName:     GetEnv("DB_NAME", "overcooked"),
		DBUser:     GetEnv("DB_USER", "postgres"),
		DBPassword: GetEnv("DB_PASSWORD", "postgres"),

		RedisHost: GetEnv("REDIS_HOST", "localhost"),
		RedisPort: GetEnv("REDIS_PORT", "6379"),

		KafkaBroker: GetEnv("KAFKA_BROKER", "localhost:9092"),
		OrdersTopic: GetEnv("ORDERS_TOPIC", "orders"),

		MenuCacheTTL: GetDuration("MENU_CACHE_TTL", time.Minute),
		QRBaseURL:    GetEnv("QR_BASE_URL", "http://localhost:8080"),

		OrderSvcURL: GetEnv("ORDER_SVC_URL", "http://localhost:8081"),
		StatsSvcURL: GetEnv("STATS_SVC_URL", "http://localhost:8083"),

		LogLevel:  GetEnv("LOG_LEVEL", "info"),
		LogFormat: GetEnv("LOG_FORMAT", "console"),
	}
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetDuration accepts Go duration strings ("90s") or a bare number of seconds.
func GetDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	log.Warn().Str("key", key).Str("value", value).Msg("invalid duration, using default")
	return defaultValue
}

func (c Config) PostgresDSN() string {
	return "host=" + c.DBHost + " port=" + c.DBPort + " user=" + c.DBUser +
		" password=" + c.DBPassword + " dbname=" + c.DBName + " sslmode=disable"
}

func MustInitPostgres(c Config) *sql.DB {
	db, err := sql.Open("postgres", c.PostgresDSN())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	if err = db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("failed to ping database")
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis(c Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: c.RedisHost + ":" + c.RedisPort,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal().Err(err).Msg("failed to connect to Redis")
	}

	return client
}

func NewKafkaReader(c Config, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{c.KafkaBroker},
		Topic:   c.OrdersTopic,
		GroupID: groupID,
	})
}

func NewKafkaWriter(c Config) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(c.KafkaBroker),
		Topic:                  c.OrdersTopic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}
}
