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

//nolint:revive,staticcheck // dot imports are standard for Ginkgo/Gomega test code
package api

import (
	"context"
	"net/http"
	"slices"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spjmurray/go-util/pkg/set"

	"github.com/unikorn-cloud/petfriends/pkg/ledger"
	"github.com/unikorn-cloud/petfriends/pkg/petfriends"
)

const (
	// UserNotFoundMessage is the escaped text of the 403 page for bad credentials.
	UserNotFoundMessage = "This user wasn&#x27;t found in database"
	// MissingAuthKeyMessage is the escaped text of the 403 page for a bad auth key.
	MissingAuthKeyMessage = "Please provide &#x27;auth_key&#x27;"
)

// GetAuthKey logs in with the configured valid account and fails the test if that is refused.
func GetAuthKey(ctx context.Context, client petfriends.Interface, config *TestConfig) petfriends.AuthKey {
	result, err := client.GetAPIKey(ctx, config.ValidCredentials())
	Expect(err).NotTo(HaveOccurred())
	Expect(result.StatusCode).To(Equal(http.StatusOK), result.String())
	Expect(result.Value).NotTo(BeNil(), "api key response is not JSON: %s", result.Text)

	return *result.Value
}

// ListMyPets returns the pets owned by the key's user.
func ListMyPets(ctx context.Context, client petfriends.Interface, key petfriends.AuthKey) *petfriends.PetList {
	result, err := client.ListPets(ctx, key, petfriends.FilterMyPets)
	Expect(err).NotTo(HaveOccurred())
	Expect(result.StatusCode).To(Equal(http.StatusOK), result.String())
	Expect(result.Value).NotTo(BeNil())

	return result.Value
}

// TrackPet records a pet in the ledger and schedules its deletion. The cleanup
// runs whether the test passes or fails, and deleting a pet the test already
// deleted is harmless.
func TrackPet(ctx context.Context, client petfriends.Interface, pets ledger.Ledger, key petfriends.AuthKey, petID string) {
	Expect(pets.Record(ctx, petID)).To(Succeed())

	DeferCleanup(func() {
		GinkgoWriter.Printf("Cleaning up pet: %s\n", petID)

		result, err := client.DeletePet(ctx, key, petID)
		if err != nil {
			GinkgoWriter.Printf("Warning: Failed to delete pet %s: %v\n", petID, err)
			return
		}

		if !ledger.Gone(result.StatusCode) {
			GinkgoWriter.Printf("Warning: Failed to delete pet %s: %s\n", petID, result)
			return
		}

		if err := pets.Forget(ctx, petID); err != nil {
			GinkgoWriter.Printf("Warning: Failed to forget pet %s: %v\n", petID, err)
		}
	})
}

// CreatePetWithCleanup creates a pet without a photo and schedules automatic cleanup.
func CreatePetWithCleanup(ctx context.Context, client petfriends.Interface, pets ledger.Ledger, key petfriends.AuthKey, details petfriends.PetDetails) petfriends.Pet {
	result, err := client.CreatePetSimple(ctx, key, details)
	Expect(err).NotTo(HaveOccurred())
	Expect(result.StatusCode).To(Equal(http.StatusOK), result.String())
	Expect(result.Value).NotTo(BeNil())

	pet := *result.Value

	GinkgoWriter.Printf("Created pet with ID: %s\n", pet.ID)
	TrackPet(ctx, client, pets, key, pet.ID)

	return pet
}

// CreatePetWithPhotoWithCleanup creates a pet with a generated photo and schedules automatic cleanup.
func CreatePetWithPhotoWithCleanup(ctx context.Context, client petfriends.Interface, pets ledger.Ledger, key petfriends.AuthKey, details petfriends.PetDetails) petfriends.Pet {
	result, err := client.AddNewPet(ctx, key, details, WritePhoto())
	Expect(err).NotTo(HaveOccurred())
	Expect(result.StatusCode).To(Equal(http.StatusOK), result.String())
	Expect(result.Value).NotTo(BeNil())

	pet := *result.Value

	GinkgoWriter.Printf("Created pet with photo, ID: %s\n", pet.ID)
	TrackPet(ctx, client, pets, key, pet.ID)

	return pet
}

// RemovedPetIDs returns the IDs listed before but not after, sorted.
func RemovedPetIDs(before, after *petfriends.PetList) []string {
	removed := set.New[string](before.IDs()...).Difference(set.New[string](after.IDs()...))

	ids := []string{}

	for id := range removed.All() {
		ids = append(ids, id)
	}

	slices.Sort(ids)

	return ids
}
