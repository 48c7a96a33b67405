package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

const minSecretKeyLength = 32

var insecureSecretKeys = map[string]struct{}{
	"change_me_in_production":                    {},
	"replace_with_at_least_32_random_characters": {},
}

type serverConfig struct {
	secretKey       string
	dbPath          string
	port            string
	location        *time.Location
	defaultLanguage string
	cookieSecure    bool
}

func loadServerConfig() (serverConfig, error) {
	secretKey, err := resolveSecretKey()
	if err != nil {
		return serverConfig{}, err
	}
	port, err := resolvePort()
	if err != nil {
		return serverConfig{}, err
	}
	cookieSecure, err := resolveCookieSecure()
	if err != nil {
		return serverConfig{}, err
	}

	return serverConfig{
		secretKey:       secretKey,
		dbPath:          resolveDBPath(),
		port:            port,
		location:        resolveLocation(getEnv("TZ", "UTC")),
		defaultLanguage: getEnv("DEFAULT_LANGUAGE", "en"),
		cookieSecure:    cookieSecure,
	}, nil
}

func resolveSecretKey() (string, error) {
	secret := strings.TrimSpace(os.Getenv("SECRET_KEY"))
	if secret == "" {
		return "", errors.New("SECRET_KEY is required")
	}
	if _, insecure := insecureSecretKeys[strings.ToLower(secret)]; insecure {
		return "", errors.New("SECRET_KEY uses a placeholder value")
	}
	if len(secret) < minSecretKeyLength {
		return "", fmt.Errorf("SECRET_KEY must be at least %d characters", minSecretKeyLength)
	}
	return secret, nil
}

func resolvePort() (string, error) {
	raw := getEnv("PORT", "8080")
	port, err := strconv.Atoi(raw)
	if err != nil {
		return "", fmt.Errorf("invalid PORT %q: %w", raw, err)
	}
	if port < 1 || port > 65535 {
		return "", fmt.Errorf("invalid PORT %d: must be between 1 and 65535", port)
	}
	return strconv.Itoa(port), nil
}

func resolveCookieSecure() (bool, error) {
	raw := getEnv("COOKIE_SECURE", "false")
	secure, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid COOKIE_SECURE %q: %w", raw, err)
	}
	return secure, nil
}

func resolveDBPath() string {
	return getEnv("DB_PATH", filepath.Join("data", "myfit.db"))
}

func resolveLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		log.WithField("tz", name).Warn("invalid TZ, falling back to UTC")
		return time.UTC
	}
	return location
}

func getEnv(key string, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}
