package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDSN(t *testing.T) {
	cfg := Config{
		Host:     "db.internal",
		Port:     5433,
		User:     "svc",
		Password: "secret",
		DBName:   "apt_market",
		SSLMode:  "require",
		TimeZone: "UTC",
	}
	assert.Equal(t,
		"host=db.internal user=svc password=secret dbname=apt_market port=5433 sslmode=require TimeZone=UTC",
		DSN(cfg))
}

func TestDSNDefaultsTimeZone(t *testing.T) {
	dsn := DSN(Config{Host: "localhost", Port: 5432, SSLMode: "disable"})
	assert.Contains(t, dsn, "TimeZone=Asia/Seoul")
}
