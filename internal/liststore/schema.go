package liststore

import (
	"encoding/json"
	"errors"
	"fmt"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/idilsaglam/todolist/internal/model"
)

// listSchema describes the persisted slot: an array of {id, content} strings.
// Extra fields on an item are tolerated.
const listSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "content"],
    "properties": {
      "id":      {"type": "string"},
      "content": {"type": "string"}
    }
  }
}`

var compiledListSchema = jsonschema.MustCompileString("list.schema.json", listSchema)

// errCorrupt marks a stored value that does not decode to a list.
var errCorrupt = errors.New("corrupt list data")

// decodeList parses raw and checks its shape before building the list.
func decodeList(raw string) (model.List, error) {
	var doc any
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", errCorrupt, err)
	}
	if err := compiledListSchema.Validate(doc); err != nil {
		return nil, fmt.Errorf("%w: %s", errCorrupt, schemaMessage(err))
	}
	var l model.List
	if err := json.Unmarshal([]byte(raw), &l); err != nil {
		return nil, fmt.Errorf("%w: %v", errCorrupt, err)
	}
	if l == nil {
		l = model.List{}
	}
	return l, nil
}

func encodeList(l model.List) (string, error) {
	if l == nil {
		l = model.List{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return "", fmt.Errorf("json marshal: %w", err)
	}
	return string(b), nil
}

// schemaMessage flattens a validation error to its first leaf cause.
func schemaMessage(err error) string {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return err.Error()
	}
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	if ve.InstanceLocation == "" {
		return ve.Message
	}
	return ve.InstanceLocation + ": " + ve.Message
}
