// Package config resolves the server's network binding from the environment.
package config

import (
	"fmt"
	"net"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	defaultHost = "0.0.0.0"
	defaultPort = 5000
)

// Config holds the network binding for the HTTP server.
type Config struct {
	Host string
	Port int
}

// Addr returns the host:port listen address.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Load overlays a local .env file when present, then reads the environment.
// A missing .env is not an error; a malformed one is.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from the HOST and PORT environment variables,
// falling back to 0.0.0.0:5000.
func FromEnv() (Config, error) {
	cfg := Config{Host: defaultHost, Port: defaultPort}
	if host := os.Getenv("HOST"); host != "" {
		cfg.Host = host
	}
	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil || p < 1 || p > 65535 {
			return Config{}, fmt.Errorf("invalid PORT %q: must be a number between 1 and 65535", port)
		}
		cfg.Port = p
	}
	return cfg, nil
}
