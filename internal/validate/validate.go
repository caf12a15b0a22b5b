// Package validate provides JSON schema validation for the solve service's
// request and response bodies.
package validate

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schemas/*.json
var schemasFS embed.FS

var (
	solveRequestSchema *jsonschema.Schema
	solveResultSchema  *jsonschema.Schema
)

func init() {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020

	solveRequestSchema = mustCompile(compiler, "solve_request.schema.json")
	solveResultSchema = mustCompile(compiler, "solve_result.schema.json")
}

func mustCompile(compiler *jsonschema.Compiler, name string) *jsonschema.Schema {
	data, err := schemasFS.ReadFile("schemas/" + name)
	if err != nil {
		panic(fmt.Sprintf("validate: read schema %s: %v", name, err))
	}
	if err := compiler.AddResource(name, strings.NewReader(string(data))); err != nil {
		panic(fmt.Sprintf("validate: add schema %s: %v", name, err))
	}
	schema, err := compiler.Compile(name)
	if err != nil {
		panic(fmt.Sprintf("validate: compile schema %s: %v", name, err))
	}
	return schema
}

// ValidationError is one schema violation, with its location in the
// document.
type ValidationError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	if e.Path == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// ValidationErrors is a collection of ValidationError, itself an error.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "no errors"
	}
	msgs := make([]string, len(ve))
	for i, e := range ve {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}

// SolveRequestJSON validates a POST /v1/solve request body.
func SolveRequestJSON(data []byte) ValidationErrors {
	return validateAgainst(solveRequestSchema, data)
}

// SolveResultJSON validates a solve response body. The HTTP handlers run
// every single-run response (POST /v1/solve, GET /v1/solves/{id}) through
// this before writing it, so such a response that doesn't match its own
// schema never reaches a client. List and error responses are not checked.
func SolveResultJSON(data []byte) ValidationErrors {
	return validateAgainst(solveResultSchema, data)
}

func validateAgainst(schema *jsonschema.Schema, data []byte) ValidationErrors {
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return ValidationErrors{{Message: fmt.Sprintf("invalid JSON: %v", err)}}
	}
	if err := schema.Validate(doc); err != nil {
		return schemaErrorToValidationErrors(err)
	}
	return nil
}

func schemaErrorToValidationErrors(err error) ValidationErrors {
	if ve, ok := err.(*jsonschema.ValidationError); ok {
		return extractValidationErrors(ve)
	}
	return ValidationErrors{{Message: err.Error()}}
}

func extractValidationErrors(ve *jsonschema.ValidationError) ValidationErrors {
	var errors ValidationErrors
	if ve.Message != "" {
		errors = append(errors, ValidationError{
			Path:    ve.InstanceLocation,
			Message: ve.Message,
		})
	}
	for _, cause := range ve.Causes {
		errors = append(errors, extractValidationErrors(cause)...)
	}
	return errors
}
