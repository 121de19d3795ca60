/*
Copyright 2024-2025 the Unikorn Authors.
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package api

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/unikorn-cloud/petfriends/pkg/petfriends"
)

const (
	// Credentials registered with the fake server when none are configured.
	fakeEmail    = "qa@petfriends.test"
	fakePassword = "petfriends"
)

type TestConfig struct {
	BaseURL         string
	ValidEmail      string
	ValidPassword   string
	InvalidEmail    string
	InvalidPassword string
	RequestTimeout  time.Duration
	TestTimeout     time.Duration
	UseFakeServer   bool
	LedgerPath      string
	LogLevel        string
	SkipIntegration bool
	LogRequests     bool
	LogResponses    bool
}

// ValidCredentials returns the account the suites act as.
func (c *TestConfig) ValidCredentials() petfriends.Credentials {
	return petfriends.Credentials{
		Email:    c.ValidEmail,
		Password: c.ValidPassword,
	}
}

// LoadTestConfig loads configuration from environment variables and .env files.
// Returns an error if required configuration values are missing.
func LoadTestConfig() (*TestConfig, error) {
	loadEnvFile()

	v := viper.New()

	v.SetDefault("API_BASE_URL", petfriends.DefaultBaseURL)
	v.SetDefault("VALID_EMAIL", "")
	v.SetDefault("VALID_PASSWORD", "")
	v.SetDefault("INVALID_EMAIL", "nobody@petfriends.invalid")
	v.SetDefault("INVALID_PASSWORD", "not-the-password")
	v.SetDefault("REQUEST_TIMEOUT", "30s")
	v.SetDefault("TEST_TIMEOUT", "2m")
	v.SetDefault("USE_FAKE_SERVER", "")
	v.SetDefault("LEDGER_PATH", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("SKIP_INTEGRATION", false)
	v.SetDefault("LOG_REQUESTS", false)
	v.SetDefault("LOG_RESPONSES", false)

	v.AutomaticEnv()

	config := &TestConfig{
		BaseURL:         v.GetString("API_BASE_URL"),
		ValidEmail:      v.GetString("VALID_EMAIL"),
		ValidPassword:   v.GetString("VALID_PASSWORD"),
		InvalidEmail:    v.GetString("INVALID_EMAIL"),
		InvalidPassword: v.GetString("INVALID_PASSWORD"),
		RequestTimeout:  durationWithDefault(v.GetDuration("REQUEST_TIMEOUT"), 30*time.Second),
		TestTimeout:     durationWithDefault(v.GetDuration("TEST_TIMEOUT"), 2*time.Minute),
		LedgerPath:      v.GetString("LEDGER_PATH"),
		LogLevel:        v.GetString("LOG_LEVEL"),
		SkipIntegration: v.GetBool("SKIP_INTEGRATION"),
		LogRequests:     v.GetBool("LOG_REQUESTS"),
		LogResponses:    v.GetBool("LOG_RESPONSES"),
	}

	// Without credentials there is nothing to talk to but the fake.
	if v.GetString("USE_FAKE_SERVER") == "" {
		config.UseFakeServer = config.ValidEmail == "" && config.ValidPassword == ""
	} else {
		config.UseFakeServer = v.GetBool("USE_FAKE_SERVER")
	}

	if config.UseFakeServer {
		if config.ValidEmail == "" {
			config.ValidEmail = fakeEmail
		}

		if config.ValidPassword == "" {
			config.ValidPassword = fakePassword
		}
	}

	// Validate required fields
	if err := validateRequiredFields(config); err != nil {
		return nil, err
	}

	return config, nil
}

// durationWithDefault replaces unset or unparsable durations with a default.
func durationWithDefault(value, defaultValue time.Duration) time.Duration {
	if value <= 0 {
		return defaultValue
	}

	return value
}

func loadEnvFile() {
	envPaths := []string{
		"../../../test/.env", // From test/api/suites directory
		"../../test/.env",    // From test/api directory
	}

	var envPath string

	for _, path := range envPaths {
		if _, err := os.Stat(path); err == nil {
			absPath, err := filepath.Abs(path)
			if err == nil {
				envPath = absPath
				break
			}
		}
	}

	if envPath == "" {
		// .env file not found - this is OK in CI/CD where env vars are set directly
		return
	}

	// Load .env file
	if err := godotenv.Load(envPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env file from %s: %v\n", envPath, err)
	}
}

// validateRequiredFields checks that all required configuration values are set.
func validateRequiredFields(config *TestConfig) error {
	var missing []string

	required := map[string]string{
		"API_BASE_URL":     config.BaseURL,
		"VALID_EMAIL":      config.ValidEmail,
		"VALID_PASSWORD":   config.ValidPassword,
		"INVALID_EMAIL":    config.InvalidEmail,
		"INVALID_PASSWORD": config.InvalidPassword,
	}

	for envVar, value := range required {
		if value == "" {
			missing = append(missing, envVar)
		}
	}

	if len(missing) > 0 {
		sort.Strings(missing)

		return fmt.Errorf("missing required configuration: %s. Please set these environment variables or add them to a .env file, or the gh secrets", strings.Join(missing, ", "))
	}

	return nil
}
