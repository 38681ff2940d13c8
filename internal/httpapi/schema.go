package httpapi

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed detect_request.schema.json
var detectRequestSchemaJSON string

type detectRequest struct {
	Text string `json:"text"`
}

var (
	compileOnce       sync.Once
	compiledSchema    *jsonschema.Schema
	compiledSchemaErr error
)

// decodeDetectRequest validates a request body against the detect request
// schema. An empty "text" passes; emptiness is the service's decision.
func decodeDetectRequest(payload []byte) (detectRequest, error) {
	value, err := decodeStrictJSON(payload)
	if err != nil {
		return detectRequest{}, fmt.Errorf("decode request JSON: %w", err)
	}

	schema, err := loadSchema()
	if err != nil {
		return detectRequest{}, fmt.Errorf("load schema: %w", err)
	}
	if err := schema.Validate(value); err != nil {
		return detectRequest{}, fmt.Errorf("schema validation failed: %w", err)
	}

	var req detectRequest
	if err := json.Unmarshal(payload, &req); err != nil {
		return detectRequest{}, fmt.Errorf("unmarshal request: %w", err)
	}
	return req, nil
}

func loadSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020

		if err := compiler.AddResource("detect_request.schema.json", strings.NewReader(detectRequestSchemaJSON)); err != nil {
			compiledSchemaErr = fmt.Errorf("add schema resource: %w", err)
			return
		}

		schema, err := compiler.Compile("detect_request.schema.json")
		if err != nil {
			compiledSchemaErr = fmt.Errorf("compile schema: %w", err)
			return
		}
		compiledSchema = schema
	})

	if compiledSchemaErr != nil {
		return nil, compiledSchemaErr
	}
	if compiledSchema == nil {
		return nil, fmt.Errorf("schema not initialized")
	}
	return compiledSchema, nil
}

func decodeStrictJSON(raw []byte) (any, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("body is empty")
	}

	decoder := json.NewDecoder(bytes.NewReader(trimmed))
	decoder.UseNumber()

	var value any
	if err := decoder.Decode(&value); err != nil {
		return nil, err
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		return nil, fmt.Errorf("body contains trailing content")
	}
	return value, nil
}
