package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// dotEnvFiles are read in order; a key set by an earlier file (or by the
// process environment) is not overridden by a later one.
var dotEnvFiles = []string{".env.local", ".env"}

// loadDotEnv loads whichever of files exist. Missing files are skipped.
func loadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = dotEnvFiles
	}

	for _, f := range files {
		err := godotenv.Load(f)
		if err == nil || errors.Is(err, os.ErrNotExist) {
			continue
		}
		return fmt.Errorf("load %s: %w", f, err)
	}
	return nil
}
