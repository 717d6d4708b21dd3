package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Caso 1: el DSN codifica caracteres especiales de la contraseña.
func TestDSN_CodificaPassword(t *testing.T) {
	cfg := DBConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "postgres",
		Password: "p@ss:w0rd/!",
		DBName:   "componentes",
		SSLMode:  "disable",
	}
	dsn := cfg.DSN()
	assert.Contains(t, dsn, "postgres://postgres:")
	assert.Contains(t, dsn, "@localhost:5432/componentes")
	assert.NotContains(t, dsn, "p@ss:w0rd/!", "la contraseña debe ir URL-encoded")
	assert.Contains(t, dsn, "sslmode=disable")
}

// Caso 2: DATABASE_URL tiene prioridad sobre los campos sueltos.
func TestConnectionString_PrioridadDatabaseURL(t *testing.T) {
	cfg := DBConfig{
		DatabaseURL: "postgresql://u:p@db:5432/otros?sslmode=require",
		Host:        "ignorado",
	}
	assert.Equal(t, cfg.DatabaseURL, cfg.ConnectionString())

	cfg.DatabaseURL = ""
	assert.Equal(t, cfg.DSN(), cfg.ConnectionString())
}

// Caso 3: dirección de escucha del servidor HTTP.
func TestHTTPAddr(t *testing.T) {
	cfg := HTTPConfig{Host: "0.0.0.0", Port: 8080}
	assert.Equal(t, "0.0.0.0:8080", cfg.Addr())
}
