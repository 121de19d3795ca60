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

package petfriends

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"slices"
)

// Filter selects which pets are returned by a listing.
type Filter string

const (
	// FilterAll returns every pet visible on the site.
	FilterAll Filter = ""
	// FilterMyPets returns only pets owned by the key's user.
	FilterMyPets Filter = "my_pets"
)

// Credentials identify a registered PetFriends user.
type Credentials struct {
	Email    string
	Password string
}

// AuthKey is the token issued by the key endpoint.
type AuthKey struct {
	Key string `json:"key"`
}

// FlexString accepts either a JSON string or a JSON number. The service is
// not consistent about how it encodes ages and timestamps.
type FlexString string

func (s *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	if data[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}

		*s = FlexString(v)

		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("decoding %s as string or number: %w", string(data), err)
	}

	*s = FlexString(n.String())

	return nil
}

// Pet is a pet record as returned by the service.
type Pet struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	AnimalType string     `json:"animal_type"`
	Age        FlexString `json:"age"`
	PetPhoto   string     `json:"pet_photo,omitempty"`
	UserID     string     `json:"user_id,omitempty"`
	CreatedAt  FlexString `json:"created_at,omitempty"`
}

// HasPhoto reports whether the service holds a photo for the pet.
func (p *Pet) HasPhoto() bool {
	return p.PetPhoto != ""
}

// PetList is the body of a pet listing.
type PetList struct {
	Pets []Pet `json:"pets"`
}

// IDs returns the identifiers of all listed pets in order.
func (l *PetList) IDs() []string {
	ids := make([]string, 0, len(l.Pets))

	for i := range l.Pets {
		ids = append(ids, l.Pets[i].ID)
	}

	return ids
}

// Contains reports whether a pet with the given ID is listed.
func (l *PetList) Contains(id string) bool {
	return slices.ContainsFunc(l.Pets, func(p Pet) bool {
		return p.ID == id
	})
}

// PetDetails are the user editable attributes of a pet.
type PetDetails struct {
	Name       string
	AnimalType string
	Age        string
}

func (d PetDetails) formData() map[string]string {
	return map[string]string{
		"name":        d.Name,
		"animal_type": d.AnimalType,
		"age":         d.Age,
	}
}

// Empty is the body type of calls whose success response carries no data.
type Empty struct{}

// Result is the outcome of a single API call. Text always holds the raw
// body; Value is only populated when the body decoded as JSON into T.
type Result[T any] struct {
	StatusCode int
	Text       string
	Value      *T
}

// Succeeded reports whether the service answered 200.
func (r *Result[T]) Succeeded() bool {
	return r.StatusCode == http.StatusOK
}

func (r *Result[T]) String() string {
	return fmt.Sprintf("status=%d body=%s", r.StatusCode, r.Text)
}

func newResult[T any](statusCode int, body []byte) *Result[T] {
	result := &Result[T]{
		StatusCode: statusCode,
		Text:       string(body),
	}

	if len(bytes.TrimSpace(body)) == 0 || !json.Valid(body) {
		return result
	}

	var value T
	if err := json.Unmarshal(body, &value); err != nil {
		return result
	}

	result.Value = &value

	return result
}
