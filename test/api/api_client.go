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
	"github.com/onsi/ginkgo/v2"
	"go.uber.org/zap"

	"github.com/unikorn-cloud/petfriends/pkg/log"
	"github.com/unikorn-cloud/petfriends/pkg/petfriends"
	"github.com/unikorn-cloud/petfriends/pkg/petfriends/fake"
)

// NewLogger returns a console logger that writes through GinkgoWriter, so
// output is only shown for failing tests or with -v.
func NewLogger(config *TestConfig) (*zap.Logger, error) {
	return log.New(log.Options{
		Level:    config.LogLevel,
		Encoding: log.EncodingConsole,
		Output:   ginkgo.GinkgoWriter,
	})
}

// NewAPIClientWithConfig returns a client for the configured deployment.
func NewAPIClientWithConfig(config *TestConfig, logger *zap.Logger) *petfriends.Client {
	return petfriends.New(config.BaseURL,
		petfriends.WithTimeout(config.RequestTimeout),
		petfriends.WithLogger(logger),
		petfriends.WithRequestLogging(config.LogRequests),
		petfriends.WithResponseLogging(config.LogResponses),
	)
}

// StartFakeServer serves the in-memory fake with the configured valid account
// registered, and points the config at it. The server is stopped when the
// enclosing node's cleanups run.
func StartFakeServer(config *TestConfig) error {
	server, err := fake.New(fake.WithUser(config.ValidEmail, config.ValidPassword))
	if err != nil {
		return err
	}

	ts := server.Start()
	ginkgo.DeferCleanup(ts.Close)

	ginkgo.GinkgoWriter.Printf("Using fake PetFriends server at %s\n", ts.URL)

	config.BaseURL = ts.URL

	return nil
}
