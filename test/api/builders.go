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

package api

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/unikorn-cloud/petfriends/pkg/petfriends"
)

func generateRandomName(prefix string) string {
	bytes := make([]byte, 4) // 8 hex characters
	_, _ = rand.Read(bytes)

	return fmt.Sprintf("%s-%s", prefix, hex.EncodeToString(bytes))
}

func GenerateTestID() string {
	return generateRandomName("test")
}

// PetPayloadBuilder builds pet details for testing.
type PetPayloadBuilder struct {
	details petfriends.PetDetails
}

// NewPetPayload creates a builder with a unique name and a default cat.
func NewPetPayload() *PetPayloadBuilder {
	return &PetPayloadBuilder{
		details: petfriends.PetDetails{
			Name:       generateRandomName("testautomation"),
			AnimalType: "Cat",
			Age:        "7",
		},
	}
}

func (b *PetPayloadBuilder) WithName(name string) *PetPayloadBuilder {
	b.details.Name = name
	return b
}

func (b *PetPayloadBuilder) WithAnimalType(animalType string) *PetPayloadBuilder {
	b.details.AnimalType = animalType
	return b
}

func (b *PetPayloadBuilder) WithAge(age int) *PetPayloadBuilder {
	b.details.Age = strconv.Itoa(age)
	return b
}

// Build returns the completed pet details.
func (b *PetPayloadBuilder) Build() petfriends.PetDetails {
	return b.details
}
