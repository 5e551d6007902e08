package todo

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed store.schema.json
var storeSchemaSource string

const storeSchemaURL = "https://github.com/amonks/rtodo/store.schema.json"

var storeSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true
	if err := compiler.AddResource(storeSchemaURL, strings.NewReader(storeSchemaSource)); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}
	return compiler.Compile(storeSchemaURL)
})

// schemaViolation is the first leaf failure of a schema validation.
type schemaViolation struct {
	Location string
	Message  string
}

func (v *schemaViolation) Error() string {
	return v.Message
}

// validateDocument checks raw store content against the embedded schema.
func validateDocument(data []byte) error {
	schema, err := storeSchema()
	if err != nil {
		return fmt.Errorf("compile store schema: %w", err)
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	var doc any
	if err := decoder.Decode(&doc); err != nil {
		return err
	}
	if decoder.More() {
		return fmt.Errorf("unexpected content after JSON document")
	}

	if err := schema.Validate(doc); err != nil {
		return firstViolation(err)
	}
	return nil
}

func firstViolation(err error) error {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return err
	}
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	return &schemaViolation{Location: ve.InstanceLocation, Message: ve.Message}
}
