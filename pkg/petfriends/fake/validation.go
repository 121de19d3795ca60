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

package fake

import (
	_ "embed"
	"fmt"
	"net/http"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"
)

//go:embed openapi.yaml
var schemaDocument []byte

//nolint:gochecknoglobals
var registerPhotoDecoders sync.Once

// Validator checks requests against the embedded API description.
type Validator struct {
	router routers.Router
}

// NewValidator parses and validates the API description.
func NewValidator() (*Validator, error) {
	registerPhotoDecoders.Do(func() {
		for _, contentType := range []string{"image/jpeg", "image/png", "image/gif"} {
			openapi3filter.RegisterBodyDecoder(contentType, openapi3filter.FileBodyDecoder)
		}
	})

	loader := openapi3.NewLoader()

	doc, err := loader.LoadFromData(schemaDocument)
	if err != nil {
		return nil, fmt.Errorf("loading api description: %w", err)
	}

	if err := doc.Validate(loader.Context); err != nil {
		return nil, fmt.Errorf("validating api description: %w", err)
	}

	// Match any host, the fake is mounted wherever httptest puts it.
	doc.Servers = nil

	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("building api router: %w", err)
	}

	return &Validator{
		router: router,
	}, nil
}

// Middleware rejects requests that do not conform with a 400. Requests to
// routes the description does not know about are passed through.
func (v *Validator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		route, pathParams, err := v.router.FindRoute(r)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		input := &openapi3filter.RequestValidationInput{
			Request:    r,
			PathParams: pathParams,
			Route:      route,
			Options: &openapi3filter.Options{
				AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
			},
		}

		if err := openapi3filter.ValidateRequest(r.Context(), input); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		next.ServeHTTP(w, r)
	})
}
