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

// Package fake serves an in-memory stand-in for the PetFriends API with the
// same observable contract as the public deployment: status codes, JSON
// shapes and the HTML error pages.
package fake

import (
	"context"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/oapi-codegen/runtime"

	"github.com/unikorn-cloud/petfriends/pkg/petfriends"
)

const (
	MessageUserNotFound   = "This user wasn't found in database"
	MessageMissingAuthKey = "Please provide 'auth_key' Header"
	MessagePetNotFound    = "Pet with this id wasn't found"
	MessageBadPhoto       = "Photo is missing or unreadable"

	maxPhotoMemory = 32 << 20
)

//nolint:gochecknoglobals
var htmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;", "'", "&#x27;")

// writeError renders the plain HTML error page the service uses for aborts.
func writeError(w http.ResponseWriter, status int, message string) {
	text := http.StatusText(status)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)

	fmt.Fprintf(w, "<!doctype html>\n<html lang=en>\n<title>%d %s</title>\n<h1>%s</h1>\n<p>%s</p>\n",
		status, text, text, htmlEscaper.Replace(message))
}

func writeJSON(w http.ResponseWriter, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	_ = json.NewEncoder(w).Encode(value)
}

type user struct {
	id       string
	email    string
	password string
	key      string
}

type userKey struct{}

// Option configures a Server.
type Option func(*Server)

// WithUser registers an account that can obtain a key.
func WithUser(email, password string) Option {
	return func(s *Server) {
		s.users = append(s.users, &user{
			id:       newKey(),
			email:    email,
			password: password,
			key:      newKey(),
		})
	}
}

// WithClock overrides the time source used for created_at.
func WithClock(now func() time.Time) Option {
	return func(s *Server) {
		s.now = now
	}
}

// Server holds the fake's state. It is safe for concurrent use.
type Server struct {
	lock  sync.Mutex
	users []*user
	// pets are kept newest first, as the service lists them.
	pets []petfriends.Pet
	now  func() time.Time

	handler http.Handler
}

// New returns a fake with the given options applied.
func New(options ...Option) (*Server, error) {
	s := &Server{
		now: time.Now,
	}

	for _, o := range options {
		o(s)
	}

	validator, err := NewValidator()
	if err != nil {
		return nil, err
	}

	router := chi.NewRouter()
	router.Get("/api/key", s.getAPIKey)

	router.Group(func(r chi.Router) {
		r.Use(s.authenticate)
		r.Use(validator.Middleware)

		r.Get("/api/pets", s.listPets)
		r.Post("/api/pets", s.addNewPet)
		r.Post("/api/create_pet_simple", s.createPetSimple)
		r.Post("/api/pets/set_photo/{pet_id}", s.setPhoto)
		r.Put("/api/pets/{pet_id}", s.updatePet)
		r.Delete("/api/pets/{pet_id}", s.deletePet)
	})

	s.handler = router

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// Start serves the fake on a loopback listener. Close the returned server when done.
func (s *Server) Start() *httptest.Server {
	return httptest.NewServer(s)
}

// Pets returns a snapshot of every stored pet.
func (s *Server) Pets() []petfriends.Pet {
	s.lock.Lock()
	defer s.lock.Unlock()

	return slices.Clone(s.pets)
}

// Seed stores a pet owned by the given registered user and returns it.
func (s *Server) Seed(email string, details petfriends.PetDetails) (petfriends.Pet, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	for _, u := range s.users {
		if u.email == email {
			return s.insert(u, details, ""), nil
		}
	}

	return petfriends.Pet{}, fmt.Errorf("%w: %s", errUnknownUser, email)
}

var (
	errUnknownUser = errors.New("user not registered")
	errEmptyPhoto  = errors.New("empty photo")
)

func newKey() string {
	id := uuid.New()

	return hex.EncodeToString(id[:])
}

func (s *Server) createdAt() string {
	now := s.now()

	return strconv.FormatFloat(float64(now.UnixNano())/float64(time.Second), 'f', -1, 64)
}

// insert must be called with the lock held.
func (s *Server) insert(owner *user, details petfriends.PetDetails, photo string) petfriends.Pet {
	pet := petfriends.Pet{
		ID:         uuid.NewString(),
		Name:       details.Name,
		AnimalType: details.AnimalType,
		Age:        petfriends.FlexString(details.Age),
		PetPhoto:   photo,
		UserID:     owner.id,
		CreatedAt:  petfriends.FlexString(s.createdAt()),
	}

	s.pets = slices.Insert(s.pets, 0, pet)

	return pet
}

// owned returns the index of the pet if it exists and belongs to the user.
// It must be called with the lock held.
func (s *Server) owned(owner *user, petID string) (int, bool) {
	index := slices.IndexFunc(s.pets, func(p petfriends.Pet) bool {
		return p.ID == petID
	})

	if index < 0 || s.pets[index].UserID != owner.id {
		return -1, false
	}

	return index, true
}

func (s *Server) getAPIKey(w http.ResponseWriter, r *http.Request) {
	email := r.Header.Get("email")
	password := r.Header.Get("password")

	s.lock.Lock()
	defer s.lock.Unlock()

	for _, u := range s.users {
		if u.email == email && u.password == password {
			writeJSON(w, petfriends.AuthKey{Key: u.key})
			return
		}
	}

	writeError(w, http.StatusForbidden, MessageUserNotFound)
}

func (s *Server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Header.Get("auth_key")

		s.lock.Lock()
		index := slices.IndexFunc(s.users, func(u *user) bool {
			return key != "" && u.key == key
		})

		var owner *user
		if index >= 0 {
			owner = s.users[index]
		}
		s.lock.Unlock()

		if owner == nil {
			writeError(w, http.StatusForbidden, MessageMissingAuthKey)
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userKey{}, owner)))
	})
}

func userFromContext(r *http.Request) *user {
	//nolint:forcetypeassert // always set by authenticate
	return r.Context().Value(userKey{}).(*user)
}

func petID(r *http.Request) (string, error) {
	var id string

	options := runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	}

	if err := runtime.BindStyledParameterWithOptions("simple", "pet_id", chi.URLParam(r, "pet_id"), &id, options); err != nil {
		return "", err
	}

	return id, nil
}

func detailsFromForm(r *http.Request) petfriends.PetDetails {
	return petfriends.PetDetails{
		Name:       r.FormValue("name"),
		AnimalType: r.FormValue("animal_type"),
		Age:        r.FormValue("age"),
	}
}

// readPhoto returns the uploaded photo as a data URI.
func readPhoto(r *http.Request) (string, error) {
	if err := r.ParseMultipartForm(maxPhotoMemory); err != nil {
		return "", err
	}

	file, header, err := r.FormFile("pet_photo")
	if err != nil {
		return "", err
	}

	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}

	if len(data) == 0 {
		return "", errEmptyPhoto
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

func (s *Server) listPets(w http.ResponseWriter, r *http.Request) {
	owner := userFromContext(r)
	filter := petfriends.Filter(r.URL.Query().Get("filter"))

	s.lock.Lock()
	defer s.lock.Unlock()

	pets := make([]petfriends.Pet, 0, len(s.pets))

	for _, pet := range s.pets {
		if filter == petfriends.FilterMyPets && pet.UserID != owner.id {
			continue
		}

		pets = append(pets, pet)
	}

	writeJSON(w, petfriends.PetList{Pets: pets})
}

func (s *Server) createPetSimple(w http.ResponseWriter, r *http.Request) {
	owner := userFromContext(r)

	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	details := detailsFromForm(r)

	s.lock.Lock()
	defer s.lock.Unlock()

	writeJSON(w, s.insert(owner, details, ""))
}

func (s *Server) addNewPet(w http.ResponseWriter, r *http.Request) {
	owner := userFromContext(r)

	photo, err := readPhoto(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, MessageBadPhoto)
		return
	}

	details := detailsFromForm(r)

	s.lock.Lock()
	defer s.lock.Unlock()

	writeJSON(w, s.insert(owner, details, photo))
}

func (s *Server) setPhoto(w http.ResponseWriter, r *http.Request) {
	owner := userFromContext(r)

	id, err := petID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	photo, err := readPhoto(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, MessageBadPhoto)
		return
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	index, ok := s.owned(owner, id)
	if !ok {
		writeError(w, http.StatusBadRequest, MessagePetNotFound)
		return
	}

	s.pets[index].PetPhoto = photo

	writeJSON(w, s.pets[index])
}

func (s *Server) updatePet(w http.ResponseWriter, r *http.Request) {
	owner := userFromContext(r)

	id, err := petID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	details := detailsFromForm(r)

	s.lock.Lock()
	defer s.lock.Unlock()

	index, ok := s.owned(owner, id)
	if !ok {
		writeError(w, http.StatusBadRequest, MessagePetNotFound)
		return
	}

	pet := &s.pets[index]

	if details.Name != "" {
		pet.Name = details.Name
	}

	if details.AnimalType != "" {
		pet.AnimalType = details.AnimalType
	}

	if details.Age != "" {
		pet.Age = petfriends.FlexString(details.Age)
	}

	writeJSON(w, pet)
}

func (s *Server) deletePet(w http.ResponseWriter, r *http.Request) {
	owner := userFromContext(r)

	id, err := petID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	index, ok := s.owned(owner, id)
	if !ok {
		writeError(w, http.StatusBadRequest, MessagePetNotFound)
		return
	}

	s.pets = slices.Delete(s.pets, index, index+1)

	w.WriteHeader(http.StatusOK)
}
