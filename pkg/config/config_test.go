package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "")
	t.Setenv("DB_HOST", "")
	t.Setenv("JWT_EXPIRATION_HOURS", "")
	t.Setenv("KAFKA_BROKERS", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 24*time.Hour, cfg.JWT.Expiration)
	assert.Equal(t, 168*time.Hour, cfg.JWT.RefreshExp)
	assert.Empty(t, cfg.Kafka.Brokers)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("DB_NAME", "ledger_test")
	t.Setenv("DB_MAX_CONNS", "4")
	t.Setenv("JWT_EXPIRATION_HOURS", "2")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, "ledger_test", cfg.Database.DBName)
	assert.Equal(t, int32(4), cfg.Database.MaxConns)
	assert.Equal(t, 2*time.Hour, cfg.JWT.Expiration)
	assert.Equal(t, "debug", cfg.Logger.Level)
}

func TestLoad_InvalidInteger(t *testing.T) {
	t.Setenv("SERVER_READ_TIMEOUT", "soon")

	_, err := Load()
	assert.ErrorContains(t, err, "SERVER_READ_TIMEOUT")
}

func TestDatabaseConfig_ConnectionStrings(t *testing.T) {
	cfg := DatabaseConfig{
		Host: "db", Port: "5432", User: "app", Password: "secret", DBName: "finance", SSLMode: "disable",
	}

	assert.Equal(t, "host=db port=5432 user=app password=secret dbname=finance sslmode=disable", cfg.DSN())
	assert.Equal(t, "postgres://app:secret@db:5432/finance?sslmode=disable", cfg.URL())
}

func TestLoad_KafkaBrokers(t *testing.T) {
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092,,")
	t.Setenv("KAFKA_TOPIC", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "finance.transactions", cfg.Kafka.Topic)
}
