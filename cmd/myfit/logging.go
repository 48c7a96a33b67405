package main

import (
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

// setupLogging switches logrus to JSON for "json" and parses the level name,
// defaulting to info.
func setupLogging(format string, level string) {
	if strings.EqualFold(strings.TrimSpace(format), "json") {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}

	parsed, err := log.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		parsed = log.InfoLevel
	}
	log.SetLevel(parsed)
	log.SetOutput(os.Stdout)
}
