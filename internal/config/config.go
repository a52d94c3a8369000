// Package config loads allurecheck settings from the environment and an
// optional .env file. Command line flags override these values.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	EnvResultsDir = "ALLURE_RESULTS_DIR"
	EnvExpectFile = "ALLURE_EXPECT_FILE"
	EnvNoColor    = "ALLURE_NO_COLOR"
	EnvVerbose    = "ALLURE_VERBOSE"
	EnvFailedDir  = "ALLURE_FAILED_DIR"
)

const DefaultResultsDir = "allure-results"

type Config struct {
	ResultsDir string
	ExpectFile string
	NoColor    bool
	Verbose    bool

	// FailedDir receives a copy of every result that failed an expectation,
	// with its attachments. Empty disables the copy.
	FailedDir string
}

// Load reads the given .env files (".env" when none are given; a missing
// file is fine) and then the environment.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}

	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("godotenv.Load %s: %w", f, err)
		}
	}

	noColor, err := getBool(EnvNoColor)
	if err != nil {
		return nil, err
	}

	verbose, err := getBool(EnvVerbose)
	if err != nil {
		return nil, err
	}

	return &Config{
		ResultsDir: getEnv(EnvResultsDir, DefaultResultsDir),
		ExpectFile: getEnv(EnvExpectFile, ""),
		NoColor:    noColor,
		Verbose:    verbose,
		FailedDir:  getEnv(EnvFailedDir, ""),
	}, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}

	return fallback
}

func getBool(key string) (bool, error) {
	v := getEnv(key, "")
	if v == "" {
		return false, nil
	}

	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}

	return b, nil
}
