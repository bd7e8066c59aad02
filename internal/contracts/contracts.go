// Package contracts validates published documents against their JSON Schemas.
package contracts

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/preston-bernstein/bruins-live-service/internal/domain"
)

const (
	GameStateContract  = "game-state.json"
	TodayStateContract = "today-state.json"
)

const schemaBaseURL = "https://bruins-live.local/contracts/"

//go:embed schemas/*.json
var schemaFS embed.FS

var (
	compileOnce sync.Once
	compiled    map[string]*jsonschema.Schema
	compileErr  error
)

// ValidationError reports a document that does not satisfy its contract.
type ValidationError struct {
	Contract string
	Err      error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("contract %s: %v", e.Contract, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// IsValidationError reports whether err wraps a ValidationError.
func IsValidationError(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr)
}

// ValidateGameState checks a GameState against game-state.json.
func ValidateGameState(state domain.GameState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return ValidateGameStateJSON(raw)
}

// ValidateTodayState checks a TodayState against today-state.json.
func ValidateTodayState(state domain.TodayState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return ValidateTodayStateJSON(raw)
}

// ValidateGameStateJSON checks raw JSON against game-state.json.
func ValidateGameStateJSON(raw []byte) error {
	return validate(GameStateContract, raw)
}

// ValidateTodayStateJSON checks raw JSON against today-state.json.
func ValidateTodayStateJSON(raw []byte) error {
	return validate(TodayStateContract, raw)
}

// Schema returns the embedded schema source for a contract name.
func Schema(name string) ([]byte, error) {
	return schemaFS.ReadFile("schemas/" + name)
}

func validate(name string, raw []byte) error {
	schemas, err := load()
	if err != nil {
		return err
	}
	schema, ok := schemas[name]
	if !ok {
		return fmt.Errorf("contracts: unknown contract %q", name)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return &ValidationError{Contract: name, Err: err}
	}
	if err := schema.Validate(doc); err != nil {
		return &ValidationError{Contract: name, Err: err}
	}
	return nil
}

func load() (map[string]*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiled, compileErr = compileAll()
	})
	return compiled, compileErr
}

func compileAll() (map[string]*jsonschema.Schema, error) {
	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft2020
	c.AssertFormat = true

	names := []string{GameStateContract, TodayStateContract}
	for _, name := range names {
		src, err := Schema(name)
		if err != nil {
			return nil, fmt.Errorf("contracts: read %s: %w", name, err)
		}
		if err := c.AddResource(schemaBaseURL+name, bytes.NewReader(src)); err != nil {
			return nil, fmt.Errorf("contracts: add %s: %w", name, err)
		}
	}

	out := make(map[string]*jsonschema.Schema, len(names))
	for _, name := range names {
		schema, err := c.Compile(schemaBaseURL + name)
		if err != nil {
			return nil, fmt.Errorf("contracts: compile %s: %w", name, err)
		}
		out[name] = schema
	}
	return out, nil
}
