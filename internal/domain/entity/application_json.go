package entity

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strconv"
)

// UnmarshalJSON accepts numbers and booleans wherever a field is expected to
// be text, since form clients often send a GPA or student id unquoted.
// Numbers keep their JSON spelling; false and null count as absent.
func (a *Application) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return err
	}

	flat := make(map[string]string, len(raw))
	for k, v := range raw {
		switch x := v.(type) {
		case nil:
		case string:
			flat[k] = x
		case json.Number:
			flat[k] = x.String()
		case bool:
			if x {
				flat[k] = strconv.FormatBool(x)
			}
		case []any:
			return &json.UnmarshalTypeError{Value: "array", Type: reflect.TypeOf(""), Field: k}
		default:
			return &json.UnmarshalTypeError{Value: "object", Type: reflect.TypeOf(""), Field: k}
		}
	}

	text, err := json.Marshal(flat)
	if err != nil {
		return err
	}
	type plain Application
	var p plain
	if err := json.Unmarshal(text, &p); err != nil {
		return err
	}
	*a = Application(p)
	return nil
}
