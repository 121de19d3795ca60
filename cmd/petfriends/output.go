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

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"

	"github.com/unikorn-cloud/petfriends/pkg/petfriends"
)

var errInvalidOutput = errors.New("invalid output format")

type outputFormat string

const (
	outputJSON  outputFormat = "json"
	outputYAML  outputFormat = "yaml"
	outputTable outputFormat = "table"
)

func parseOutputFormat(s string) (outputFormat, error) {
	switch f := outputFormat(s); f {
	case outputJSON, outputYAML, outputTable:
		return f, nil
	}

	return "", fmt.Errorf("%w %q", errInvalidOutput, s)
}

// document is what json and yaml output print. Body is the decoded value,
// or the raw text when the service did not answer with JSON.
type document struct {
	Status int `json:"status" yaml:"status"`
	Body   any `json:"body"   yaml:"body"`
}

func newDocument[T any](result *petfriends.Result[T]) (*document, error) {
	doc := &document{
		Status: result.StatusCode,
		Body:   result.Text,
	}

	if result.Value == nil {
		return doc, nil
	}

	// Go through JSON so YAML keys are the wire names.
	data, err := json.Marshal(result.Value)
	if err != nil {
		return nil, err
	}

	var body any
	if err := json.Unmarshal(data, &body); err != nil {
		return nil, err
	}

	doc.Body = body

	return doc, nil
}

func render[T any](w io.Writer, format outputFormat, result *petfriends.Result[T]) error {
	if format == outputTable {
		return renderTable(w, result)
	}

	doc, err := newDocument(result)
	if err != nil {
		return err
	}

	if format == outputYAML {
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)

		if err := encoder.Encode(doc); err != nil {
			return err
		}

		return encoder.Close()
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	return encoder.Encode(doc)
}

func petRow(pet *petfriends.Pet) []string {
	photo := "no"
	if pet.HasPhoto() {
		photo = "yes"
	}

	return []string{pet.ID, pet.Name, pet.AnimalType, string(pet.Age), photo}
}

func renderTable[T any](w io.Writer, result *petfriends.Result[T]) error {
	if _, err := fmt.Fprintf(w, "Status: %d\n", result.StatusCode); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	petHeader := []string{"ID", "Name", "Type", "Age", "Photo"}

	switch value := any(result.Value).(type) {
	case *petfriends.PetList:
		if value == nil {
			break
		}

		table.SetHeader(petHeader)

		for i := range value.Pets {
			table.Append(petRow(&value.Pets[i]))
		}

		table.Render()

		return nil
	case *petfriends.Pet:
		if value == nil {
			break
		}

		table.SetHeader(petHeader)
		table.Append(petRow(value))
		table.Render()

		return nil
	case *petfriends.AuthKey:
		if value == nil {
			break
		}

		table.SetHeader([]string{"Key"})
		table.Append([]string{value.Key})
		table.Render()

		return nil
	}

	if result.Text == "" {
		return nil
	}

	table.SetHeader([]string{"Body"})
	table.Append([]string{result.Text})
	table.Render()

	return nil
}

// report prints the result and turns anything but 200 into an error.
func report[T any](w io.Writer, format outputFormat, result *petfriends.Result[T]) error {
	if err := render(w, format, result); err != nil {
		return fmt.Errorf("printing result: %w", err)
	}

	if !result.Succeeded() {
		return fmt.Errorf("%w: status %d", errUnsuccessful, result.StatusCode)
	}

	return nil
}
