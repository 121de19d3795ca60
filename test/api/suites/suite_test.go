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

//nolint:testpackage,revive // test package in suites is standard for these tests, dot imports standard for Ginkgo
package suites

import (
	"context"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"github.com/unikorn-cloud/petfriends/pkg/ledger"
	"github.com/unikorn-cloud/petfriends/pkg/petfriends"
	"github.com/unikorn-cloud/petfriends/test/api"
)

var (
	client *petfriends.Client
	ctx    context.Context
	config *api.TestConfig
	pets   ledger.Ledger
	logger *zap.Logger
)

var _ = BeforeSuite(func() {
	var err error

	config, err = api.LoadTestConfig()
	Expect(err).NotTo(HaveOccurred())

	if config.SkipIntegration {
		Skip("SKIP_INTEGRATION is set")
	}

	if config.UseFakeServer {
		Expect(api.StartFakeServer(config)).To(Succeed())
	}

	logger, err = api.NewLogger(config)
	Expect(err).NotTo(HaveOccurred())

	pets, err = ledger.Open(config.LedgerPath)
	Expect(err).NotTo(HaveOccurred())
	DeferCleanup(pets.Close)

	client = api.NewAPIClientWithConfig(config, logger)
	ctx = context.Background()

	// Remove whatever an interrupted earlier run left behind.
	swept, err := ledger.Sweep(ctx, pets, client, api.GetAuthKey(ctx, client, config), logger)
	Expect(err).NotTo(HaveOccurred())

	if len(swept) > 0 {
		GinkgoWriter.Printf("Swept %d pets left by a previous run\n", len(swept))
	}
})

// Each test, including its cleanups, gets TEST_TIMEOUT to finish.
var _ = BeforeEach(func() {
	var cancel context.CancelFunc

	ctx, cancel = context.WithTimeout(context.Background(), config.TestTimeout)
	DeferCleanup(cancel)
})

func TestSuites(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "PetFriends API Test Suites")
}
