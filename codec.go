// codec.go
// --------
// Record decoding. A Codec maps one raw JSON record from a response envelope
// to a typed resource; the default codec decodes the known fields of the
// target struct and collects everything the struct does not name into its
// Extra map, so new provider fields pass through unchanged.
package helixbridge

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"time"
)

// Codec converts one raw record into a typed resource. Pure mapping, no I/O.
type Codec[T any] func(raw json.RawMessage) (T, error)

// Timestamp layouts accepted by the provider, with and without fractional
// seconds.
const (
	timestampLayout           = "2006-01-02T15:04:05Z"
	timestampLayoutFractional = "2006-01-02T15:04:05.999999999Z"
)

// Timestamp is a provider timestamp. It unmarshals from either accepted
// layout and compares equal to the second across them.
type Timestamp struct {
	time.Time
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		t.Time = time.Time{}
		return nil
	}
	parsed, err := time.Parse(timestampLayout, s)
	if err != nil {
		parsed, err = time.Parse(timestampLayoutFractional, s)
	}
	if err != nil {
		return fmt.Errorf("parsing timestamp %q: %w", s, err)
	}
	t.Time = parsed
	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`""`), nil
	}
	return json.Marshal(t.UTC().Format(timestampLayout))
}

// DecodeRecord is the default codec for any resource struct. Fields the
// struct does not declare land in its Extra map when it has one.
func DecodeRecord[T any](raw json.RawMessage) (T, error) {
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return v, err
	}
	collectExtra(raw, &v)
	return v, nil
}

// collectExtra fills the record's Extra field, when present, with every JSON
// key the struct type does not map.
func collectExtra(raw json.RawMessage, v interface{}) {
	rv := reflect.ValueOf(v).Elem()
	if rv.Kind() != reflect.Struct {
		return
	}
	extraField := rv.FieldByName("Extra")
	if !extraField.IsValid() || !extraField.CanSet() ||
		extraField.Type() != reflect.TypeOf(map[string]interface{}(nil)) {
		return
	}

	var all map[string]json.RawMessage
	if err := json.Unmarshal(raw, &all); err != nil {
		return
	}

	known := jsonFieldNames(rv.Type())
	var extra map[string]interface{}
	for key, val := range all {
		if _, ok := known[key]; ok {
			continue
		}
		var decoded interface{}
		if err := json.Unmarshal(val, &decoded); err != nil {
			continue
		}
		if extra == nil {
			extra = make(map[string]interface{})
		}
		extra[key] = decoded
	}
	if extra != nil {
		extraField.Set(reflect.ValueOf(extra))
	}
}

func jsonFieldNames(t reflect.Type) map[string]struct{} {
	names := make(map[string]struct{}, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		tag := f.Tag.Get("json")
		if tag == "-" {
			continue
		}
		name, _, _ := strings.Cut(tag, ",")
		if name == "" {
			name = f.Name
		}
		names[name] = struct{}{}
	}
	return names
}
