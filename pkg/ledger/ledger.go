/*
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

// Package ledger remembers which pets a test run created, so that pets left
// behind by an interrupted run can be removed by the next one.
package ledger

import (
	"context"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/unikorn-cloud/petfriends/pkg/petfriends"
)

// Ledger records pet IDs.
type Ledger interface {
	Record(ctx context.Context, petID string) error
	Forget(ctx context.Context, petID string) error
	List(ctx context.Context) ([]string, error)
	Close() error
}

// Open returns a bbolt backed ledger at path, or an in-memory one when path is empty.
func Open(path string) (Ledger, error) {
	if strings.TrimSpace(path) == "" {
		return NewMemory(), nil
	}

	return NewBolt(path)
}

type memory struct {
	lock sync.Mutex
	ids  map[string]struct{}
}

// NewMemory returns a ledger that lives as long as the process.
func NewMemory() Ledger {
	return &memory{
		ids: map[string]struct{}{},
	}
}

func (m *memory) Record(_ context.Context, petID string) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	m.ids[petID] = struct{}{}

	return nil
}

func (m *memory) Forget(_ context.Context, petID string) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	delete(m.ids, petID)

	return nil
}

func (m *memory) List(_ context.Context) ([]string, error) {
	m.lock.Lock()
	defer m.lock.Unlock()

	ids := make([]string, 0, len(m.ids))

	for id := range m.ids {
		ids = append(ids, id)
	}

	slices.Sort(ids)

	return ids, nil
}

func (m *memory) Close() error {
	return nil
}

// Gone reports whether a delete answered with status means the pet no longer
// exists, either because it was just deleted or because it was already gone.
func Gone(status int) bool {
	switch status {
	case http.StatusOK, http.StatusBadRequest, http.StatusNotFound:
		return true
	}

	return false
}

// Sweep deletes every recorded pet. IDs the service confirms deleted, or no
// longer knows about, are forgotten. Anything else stays for the next sweep.
// The IDs removed from the ledger are returned.
func Sweep(ctx context.Context, ledger Ledger, client petfriends.Interface, key petfriends.AuthKey, logger *zap.Logger) ([]string, error) {
	ids, err := ledger.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing recorded pets: %w", err)
	}

	var swept []string

	for _, id := range ids {
		result, err := client.DeletePet(ctx, key, id)
		if err != nil {
			return swept, fmt.Errorf("sweeping pet %s: %w", id, err)
		}

		if !Gone(result.StatusCode) {
			logger.Warn("pet left in ledger", zap.String("petID", id), zap.Int("status", result.StatusCode))
			continue
		}

		if err := ledger.Forget(ctx, id); err != nil {
			return swept, err
		}

		swept = append(swept, id)
	}

	return swept, nil
}
