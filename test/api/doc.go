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

// Package api provides end-to-end test utilities for the PetFriends API.
//
// # Targets
//
// The suites run against the public deployment when VALID_EMAIL and
// VALID_PASSWORD are configured, and against the in-memory fake from
// pkg/petfriends/fake otherwise (or when USE_FAKE_SERVER=true). The fake
// reproduces the status codes and error pages the suites assert on, so the
// suites double as a regression check of the fake itself.
//
// # Fixtures
//
// Every test creates the pets it needs through CreatePetWithCleanup and
// friends, which register a DeferCleanup to delete them again. No test
// depends on state left behind by another. Created pets are also written to
// a ledger (LEDGER_PATH) so that a run killed before its cleanups ran can be
// swept by the next one.
package api
