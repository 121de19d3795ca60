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
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/unikorn-cloud/petfriends/pkg/petfriends"
	"github.com/unikorn-cloud/petfriends/test/api"
)

var _ = Describe("Error Handling and Edge Cases", func() {
	var key petfriends.AuthKey

	BeforeEach(func() {
		key = api.GetAuthKey(ctx, client, config)
	})

	Context("When a photo cannot be read", func() {
		var missing string

		BeforeEach(func() {
			missing = filepath.Join(GinkgoT().TempDir(), "missing.jpg")
		})

		Describe("Given a new pet", func() {
			It("should return a local error wrapping the file system error", func() {
				result, err := client.AddNewPet(ctx, key, api.NewPetPayload().Build(), missing)
				Expect(err).To(MatchError(petfriends.ErrPhotoUnreadable))
				Expect(err).To(MatchError(os.ErrNotExist))
				Expect(result).To(BeNil())
			})
		})

		Describe("Given an existing pet", func() {
			It("should leave the pet without a photo", func() {
				pet := api.CreatePetWithCleanup(ctx, client, pets, key, api.NewPetPayload().Build())

				_, err := client.SetPhoto(ctx, key, pet.ID, missing)
				Expect(err).To(MatchError(petfriends.ErrPhotoUnreadable))

				for _, listed := range api.ListMyPets(ctx, client, key).Pets {
					if listed.ID == pet.ID {
						Expect(listed.HasPhoto()).To(BeFalse())
					}
				}
			})
		})
	})

	Context("When operating on pets that do not exist", func() {
		const unknownID = "non-existent-pet-id"

		Describe("Given an update request", func() {
			It("should not report success", func() {
				result, err := client.UpdatePetInfo(ctx, key, unknownID, api.NewPetPayload().Build())
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Succeeded()).To(BeFalse(), result.String())
			})
		})

		Describe("Given a photo request", func() {
			It("should not report success", func() {
				result, err := client.SetPhoto(ctx, key, unknownID, api.WritePhoto())
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Succeeded()).To(BeFalse(), result.String())
			})
		})

		Describe("Given a delete request", func() {
			It("should leave the user's pets unchanged", func() {
				api.CreatePetWithCleanup(ctx, client, pets, key, api.NewPetPayload().Build())
				before := api.ListMyPets(ctx, client, key)

				_, err := client.DeletePet(ctx, key, unknownID)
				Expect(err).NotTo(HaveOccurred())

				Expect(api.RemovedPetIDs(before, api.ListMyPets(ctx, client, key))).To(BeEmpty())
			})
		})

		Describe("Given a pet that was already deleted", func() {
			It("should not list it again after a second delete", func() {
				pet := api.CreatePetWithCleanup(ctx, client, pets, key, api.NewPetPayload().Build())

				_, err := client.DeletePet(ctx, key, pet.ID)
				Expect(err).NotTo(HaveOccurred())

				_, err = client.DeletePet(ctx, key, pet.ID)
				Expect(err).NotTo(HaveOccurred())

				Expect(api.ListMyPets(ctx, client, key).Contains(pet.ID)).To(BeFalse())
			})
		})
	})

	Context("When the response body is not JSON", func() {
		Describe("Given a rejected key request", func() {
			It("should keep the raw text and leave the value empty", func() {
				result, err := client.GetAPIKey(ctx, petfriends.Credentials{Email: config.InvalidEmail, Password: config.InvalidPassword})
				Expect(err).NotTo(HaveOccurred())

				Expect(result.Succeeded()).To(BeFalse())
				Expect(result.Value).To(BeNil())
				Expect(result.Text).NotTo(BeEmpty())
			})
		})
	})
})
