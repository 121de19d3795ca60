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
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/unikorn-cloud/petfriends/pkg/petfriends"
	"github.com/unikorn-cloud/petfriends/test/api"
)

var _ = Describe("Core Pet Management", func() {
	var key petfriends.AuthKey

	BeforeEach(func() {
		key = api.GetAuthKey(ctx, client, config)
	})

	Context("When creating a new pet", func() {
		Describe("Given valid pet details without a photo", func() {
			It("should successfully create the pet", func() {
				details := api.NewPetPayload().
					WithName("Tom").
					WithAnimalType("Cat").
					WithAge(7).
					Build()

				result, err := client.CreatePetSimple(ctx, key, details)
				Expect(err).NotTo(HaveOccurred())
				Expect(result.StatusCode).To(Equal(http.StatusOK), result.String())
				Expect(result.Value).NotTo(BeNil())
				api.TrackPet(ctx, client, pets, key, result.Value.ID)

				Expect(result.Value.ID).NotTo(BeEmpty())
				Expect(result.Value.Name).To(Equal(details.Name))
				Expect(result.Value.AnimalType).To(Equal(details.AnimalType))
				Expect(string(result.Value.Age)).To(Equal(details.Age))
			})
		})

		Describe("Given valid pet details with a photo", func() {
			It("should successfully create the pet with its photo", func() {
				details := api.NewPetPayload().
					WithName("Барбоскин").
					WithAnimalType("двортерьер").
					WithAge(4).
					Build()

				result, err := client.AddNewPet(ctx, key, details, api.WritePhoto())
				Expect(err).NotTo(HaveOccurred())
				Expect(result.StatusCode).To(Equal(http.StatusOK), result.String())
				Expect(result.Value).NotTo(BeNil())
				api.TrackPet(ctx, client, pets, key, result.Value.ID)

				Expect(result.Value.Name).To(Equal(details.Name))
				Expect(result.Value.HasPhoto()).To(BeTrue())
			})
		})

		Describe("Given an unreadable photo", func() {
			It("should fail locally without contacting the service", func() {
				before := api.ListMyPets(ctx, client, key)

				_, err := client.AddNewPet(ctx, key, api.NewPetPayload().Build(), "img/does-not-exist.jpg")
				Expect(err).To(MatchError(petfriends.ErrPhotoUnreadable))

				Expect(api.ListMyPets(ctx, client, key).IDs()).To(Equal(before.IDs()))
			})
		})
	})

	Context("When setting the photo of a pet", func() {
		Describe("Given the pet exists", func() {
			It("should attach the photo", func() {
				pet := api.CreatePetWithCleanup(ctx, client, pets, key, api.NewPetPayload().Build())
				Expect(pet.HasPhoto()).To(BeFalse())

				result, err := client.SetPhoto(ctx, key, pet.ID, api.WritePhoto())
				Expect(err).NotTo(HaveOccurred())

				Expect(result.StatusCode).To(Equal(http.StatusOK), result.String())
				Expect(result.Value).NotTo(BeNil())
				Expect(result.Value.ID).To(Equal(pet.ID))
				Expect(result.Value.HasPhoto()).To(BeTrue())
			})
		})
	})

	Context("When listing pets", func() {
		Describe("Given pets exist", func() {
			It("should return a non-empty list of all pets", func() {
				api.CreatePetWithCleanup(ctx, client, pets, key, api.NewPetPayload().Build())

				result, err := client.ListPets(ctx, key, petfriends.FilterAll)
				Expect(err).NotTo(HaveOccurred())

				Expect(result.StatusCode).To(Equal(http.StatusOK))
				Expect(result.Value).NotTo(BeNil())
				Expect(result.Value.Pets).NotTo(BeEmpty())
				GinkgoWriter.Printf("Found %d pets\n", len(result.Value.Pets))
			})

			It("should include the user's own pets in my_pets", func() {
				pet := api.CreatePetWithPhotoWithCleanup(ctx, client, pets, key, api.NewPetPayload().Build())

				Expect(api.ListMyPets(ctx, client, key).Contains(pet.ID)).To(BeTrue())
			})
		})
	})

	Context("When updating a pet", func() {
		Describe("Given valid update parameters", func() {
			It("should change the returned name", func() {
				pet := api.CreatePetWithCleanup(ctx, client, pets, key, api.NewPetPayload().Build())

				details := api.NewPetPayload().
					WithName("Мурзик").
					WithAnimalType("Котэ").
					WithAge(5).
					Build()

				result, err := client.UpdatePetInfo(ctx, key, pet.ID, details)
				Expect(err).NotTo(HaveOccurred())

				Expect(result.StatusCode).To(Equal(http.StatusOK), result.String())
				Expect(result.Value).NotTo(BeNil())
				Expect(result.Value.ID).To(Equal(pet.ID))
				Expect(result.Value.Name).To(Equal(details.Name))
			})
		})
	})

	Context("When deleting a pet", func() {
		Describe("Given the pet exists and belongs to the user", func() {
			It("should remove it from my_pets", func() {
				pet := api.CreatePetWithPhotoWithCleanup(ctx, client, pets, key,
					api.NewPetPayload().
						WithName("Суперкот").
						WithAnimalType("кот").
						WithAge(3).
						Build())

				before := api.ListMyPets(ctx, client, key)
				Expect(before.Contains(pet.ID)).To(BeTrue())

				result, err := client.DeletePet(ctx, key, pet.ID)
				Expect(err).NotTo(HaveOccurred())
				Expect(result.StatusCode).To(Equal(http.StatusOK), result.String())

				after := api.ListMyPets(ctx, client, key)
				Expect(after.Contains(pet.ID)).To(BeFalse())
				Expect(api.RemovedPetIDs(before, after)).To(ContainElement(pet.ID))
			})
		})
	})
})
