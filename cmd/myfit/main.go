package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "load .env: %v\n", err)
	}
	setupLogging(getEnv("LOG_FORMAT", "text"), getEnv("LOG_LEVEL", "info"))

	if err := newRootCommand().Execute(); err != nil {
		log.WithError(err).Error("myfit exited")
		os.Exit(1)
	}
}
