package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginationNormalize(t *testing.T) {
	p := PaginationConfig{DefaultPageSize: 10, ProductPageSize: 20, MaxPageSize: 100}

	assert.Equal(t, 20, p.Normalize(0, 20), "sin page_size usa el default del listado")
	assert.Equal(t, 10, p.Normalize(-5, 10), "valores negativos caen al default")
	assert.Equal(t, 30, p.Normalize(30, 20))
	assert.Equal(t, 100, p.Normalize(100, 20), "el máximo exacto se respeta")
	assert.Equal(t, 100, p.Normalize(500, 20), "por encima del máximo se acota")
}

func TestDBConfigDSN(t *testing.T) {
	cfg := DBConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "postgres",
		Password: "p@ss/word",
		DBName:   "despensa",
		SSLMode:  "disable",
	}
	dsn := cfg.DSN()
	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "localhost:5432")
	assert.Contains(t, dsn, "/despensa")
	assert.Contains(t, dsn, "sslmode=disable")
	assert.NotContains(t, dsn, "p@ss/word", "la contraseña va URL-encoded")
}

func TestDBConfigConnectionString(t *testing.T) {
	cfg := DBConfig{DatabaseURL: "postgresql://u:p@db:5432/x", Host: "ignorado"}
	assert.Equal(t, "postgresql://u:p@db:5432/x", cfg.ConnectionString(), "DATABASE_URL tiene prioridad")
}
