package invoice

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// BuildRecordJSONSchema returns a JSON-Schema (draft 2020-12 subset) for the
// output record as a generic map. Debug mode validates the assembled record
// against it and logs a warning on mismatch; the output is never altered.
func BuildRecordJSONSchema() map[string]any {
	amountProp := func() map[string]any {
		// number when normalized, original string when not
		return map[string]any{"type": []string{"number", "string", "null"}}
	}
	nullableString := func() map[string]any {
		return map[string]any{"type": []string{"string", "null"}}
	}

	lineItem := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"description":    map[string]any{"type": "string"},
			"quantity":       amountProp(),
			"unit_price":     amountProp(),
			"total_amount":   amountProp(),
			"service_period": map[string]any{"type": "string"},
		},
	}

	vendorInfo := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"email":   map[string]any{"type": "string"},
			"phone":   map[string]any{"type": "string"},
			"address": map[string]any{"type": "string"},
		},
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": true, // debug payloads ride along
		"properties": map[string]any{
			"invoice_number": nullableString(),
			"date":           nullableString(),
			"due_date":       nullableString(),
			"total":          amountProp(),
			"subtotal":       amountProp(),
			"tax":            amountProp(),
			"vendor_name":    nullableString(),
			"customer_name":  nullableString(),
			"vendor_info":    vendorInfo,
			"line_items":     map[string]any{"type": "array", "items": lineItem},
			"po_number":      map[string]any{"type": "string"},
			"payment_terms":  map[string]any{"type": "string"},
			"currency":       map[string]any{"type": "string", "minLength": 3, "maxLength": 3},
			"extraction_date": map[string]any{
				"type": "string", "minLength": 1,
			},
			"source_file": map[string]any{"type": "string", "minLength": 1},
		},
		"required": []string{"extraction_date", "source_file"},
	}
}

// ValidateRecordJSON validates encoded record bytes against the schema map.
func ValidateRecordJSON(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("record.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("record.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal record: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("record does not match schema: %w", err)
	}
	return nil
}
