package complaints

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// FormValidator checks a complaint form before anything is sent.
type FormValidator interface {
	Validate(form ComplaintForm) error
}

const complaintFormSchema = `{
  "type": "object",
  "required": ["place", "description"],
  "properties": {
    "category": {"type": "string"},
    "place": {"type": "string", "minLength": 1},
    "description": {"type": "string", "minLength": 1}
  }
}`

const formSchemaName = "complaint-form.json"

// JSONSchemaFormValidator validates forms against a compiled JSON schema.
type JSONSchemaFormValidator struct {
	once      sync.Once
	schema    *jsonschema.Schema
	schemaErr error
	source    string
}

// NewJSONSchemaFormValidator builds a validator backed by jsonschema v5. An
// empty source selects the built-in form schema.
func NewJSONSchemaFormValidator(source string) *JSONSchemaFormValidator {
	if source == "" {
		source = complaintFormSchema
	}
	return &JSONSchemaFormValidator{source: source}
}

// Validate reports a ValidationError when place or description is empty.
// Whitespace-only values are accepted.
func (v *JSONSchemaFormValidator) Validate(form ComplaintForm) error {
	schema, err := v.compiled()
	if err != nil {
		return err
	}
	data, err := json.Marshal(form)
	if err != nil {
		return fmt.Errorf("complaints: marshal form: %w", err)
	}
	var payload map[string]any
	if err := json.Unmarshal(data, &payload); err != nil {
		return fmt.Errorf("complaints: normalize form: %w", err)
	}
	if err := schema.Validate(payload); err != nil {
		return &ValidationError{Field: "form", Message: msgFillPlaceAndDescription, Cause: err}
	}
	return nil
}

func (v *JSONSchemaFormValidator) compiled() (*jsonschema.Schema, error) {
	v.once.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(formSchemaName, bytes.NewReader([]byte(v.source))); err != nil {
			v.schemaErr = fmt.Errorf("complaints: load form schema: %w", err)
			return
		}
		schema, err := compiler.Compile(formSchemaName)
		if err != nil {
			v.schemaErr = fmt.Errorf("complaints: compile form schema: %w", err)
			return
		}
		v.schema = schema
	})
	return v.schema, v.schemaErr
}
