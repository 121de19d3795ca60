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

var _ = Describe("Security and Authentication", func() {
	Context("When requesting an API key", func() {
		Describe("Given valid credentials", func() {
			It("should return a key", func() {
				result, err := client.GetAPIKey(ctx, config.ValidCredentials())
				Expect(err).NotTo(HaveOccurred())

				Expect(result.StatusCode).To(Equal(http.StatusOK))
				Expect(result.Text).To(ContainSubstring("key"))
				Expect(result.Value).NotTo(BeNil())
				Expect(result.Value.Key).NotTo(BeEmpty())
			})
		})

		Describe("Given invalid credentials", func() {
			DescribeTable("should reject the request with 403",
				func(credentials func() petfriends.Credentials) {
					result, err := client.GetAPIKey(ctx, credentials())
					Expect(err).NotTo(HaveOccurred())

					Expect(result.StatusCode).To(Equal(http.StatusForbidden))
					Expect(result.Text).To(ContainSubstring(api.UserNotFoundMessage))
				},
				Entry("with an unknown email", func() petfriends.Credentials {
					return petfriends.Credentials{Email: config.InvalidEmail, Password: config.ValidPassword}
				}),
				Entry("with a wrong password", func() petfriends.Credentials {
					return petfriends.Credentials{Email: config.ValidEmail, Password: config.InvalidPassword}
				}),
				Entry("with empty credentials", func() petfriends.Credentials {
					return petfriends.Credentials{}
				}),
			)
		})
	})

	Context("When accessing pets with an invalid auth key", func() {
		var invalidKey petfriends.AuthKey

		BeforeEach(func() {
			// Start from a real key so only its value is wrong.
			invalidKey = api.GetAuthKey(ctx, client, config)
			invalidKey.Key = "0x000000"
		})

		Describe("Given a listing request", func() {
			It("should reject the request with 403", func() {
				result, err := client.ListPets(ctx, invalidKey, petfriends.FilterAll)
				Expect(err).NotTo(HaveOccurred())

				Expect(result.StatusCode).To(Equal(http.StatusForbidden))
				Expect(result.Text).To(ContainSubstring(api.MissingAuthKeyMessage))
			})
		})

		Describe("Given a modification request", func() {
			It("should refuse to create a pet", func() {
				result, err := client.CreatePetSimple(ctx, invalidKey, api.NewPetPayload().Build())
				Expect(err).NotTo(HaveOccurred())

				Expect(result.StatusCode).To(Equal(http.StatusForbidden))
				Expect(result.Text).To(ContainSubstring(api.MissingAuthKeyMessage))
			})

			It("should refuse to delete a pet", func() {
				key := api.GetAuthKey(ctx, client, config)
				pet := api.CreatePetWithCleanup(ctx, client, pets, key, api.NewPetPayload().Build())

				result, err := client.DeletePet(ctx, invalidKey, pet.ID)
				Expect(err).NotTo(HaveOccurred())

				Expect(result.StatusCode).To(Equal(http.StatusForbidden))
				Expect(api.ListMyPets(ctx, client, key).Contains(pet.ID)).To(BeTrue())
			})
		})
	})
})
