package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"
)

var jsonNull = []byte("null")

// FlexFloat is a number the backend may encode natively, as a quoted string,
// or not at all. Valid is false when the field was absent, null, or not
// numeric, which lets alias resolution tell "missing" from a real zero.
type FlexFloat struct {
	Value float64
	Valid bool
}

// F builds a populated FlexFloat.
func F(v float64) FlexFloat {
	return FlexFloat{Value: v, Valid: true}
}

// UnmarshalJSON never fails on a type mismatch; unusable values stay invalid.
func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	*f = FlexFloat{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, jsonNull) {
		return nil
	}

	// Fast path: native JSON number
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*f = F(n)
		return nil
	}

	// Slow path: string-encoded number
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		s = strings.TrimSuffix(strings.TrimSpace(s), "%")
		if s == "" {
			return nil
		}
		if n, err := strconv.ParseFloat(s, 64); err == nil {
			*f = F(n)
		}
	}
	return nil
}

func (f FlexFloat) MarshalJSON() ([]byte, error) {
	if !f.Valid {
		return jsonNull, nil
	}
	return json.Marshal(f.Value)
}

// Or returns the value, or fallback when the field was not populated.
func (f FlexFloat) Or(fallback float64) float64 {
	if f.Valid {
		return f.Value
	}
	return fallback
}

// Int truncates the value toward zero, clamping negatives to zero.
func (f FlexFloat) Int() int {
	if !f.Valid || f.Value < 0 {
		return 0
	}
	return int(f.Value)
}

// Ptr returns nil for an unpopulated value.
func (f FlexFloat) Ptr() *float64 {
	if !f.Valid {
		return nil
	}
	v := f.Value
	return &v
}

// FirstFloat returns the first populated candidate in priority order.
func FirstFloat(candidates ...FlexFloat) FlexFloat {
	for _, c := range candidates {
		if c.Valid {
			return c
		}
	}
	return FlexFloat{}
}

// FlexString accepts identifiers sent as JSON strings or numbers.
type FlexString string

func (s *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, jsonNull) {
		*s = ""
		return nil
	}
	if data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return fmt.Errorf("flex string: %w", err)
		}
		*s = FlexString(strings.TrimSpace(str))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		// Objects, arrays and booleans are not identifiers
		*s = ""
		return nil
	}
	*s = FlexString(n.String())
	return nil
}

func (s FlexString) String() string {
	return string(s)
}

// FirstString returns the first non-empty candidate in priority order.
func FirstString(candidates ...string) string {
	for _, c := range candidates {
		if strings.TrimSpace(c) != "" {
			return c
		}
	}
	return ""
}

// RoundCount is an economy bucket that arrives either as a bare round count
// or as a {won,total,winRate} object.
type RoundCount struct {
	Won     FlexFloat `json:"won"`
	Total   FlexFloat `json:"total"`
	WinRate FlexFloat `json:"winRate"`
}

func (r *RoundCount) UnmarshalJSON(data []byte) error {
	*r = RoundCount{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, jsonNull) {
		return nil
	}
	if data[0] != '{' {
		return r.Total.UnmarshalJSON(data)
	}
	type Alias RoundCount
	if err := json.Unmarshal(data, (*Alias)(r)); err != nil {
		return fmt.Errorf("round count: %w", err)
	}
	return nil
}

// TextList accepts a list whose items are plain strings or objects carrying
// a text field.
type TextList []string

func (l *TextList) UnmarshalJSON(data []byte) error {
	*l = nil
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		// Not a list: treat as absent
		return nil
	}
	out := make(TextList, 0, len(raw))
	for _, item := range raw {
		var s string
		if err := json.Unmarshal(item, &s); err == nil {
			if s != "" {
				out = append(out, s)
			}
			continue
		}
		var obj struct {
			Text        string `json:"text"`
			Title       string `json:"title"`
			Description string `json:"description"`
		}
		if err := json.Unmarshal(item, &obj); err == nil {
			if t := FirstString(obj.Text, obj.Title, obj.Description); t != "" {
				out = append(out, t)
			}
		}
	}
	*l = out
	return nil
}

// fieldMaps caches JSON tag -> struct field index mappings per struct type
var fieldMaps sync.Map

var unmarshalerType = reflect.TypeOf((*json.Unmarshaler)(nil)).Elem()

func fieldMapFor(t reflect.Type) map[string]int {
	if cached, ok := fieldMaps.Load(t); ok {
		return cached.(map[string]int)
	}
	m := make(map[string]int, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.PkgPath != "" {
			continue
		}
		tag := f.Tag.Get("json")
		if tag == "-" {
			continue
		}
		name := strings.Split(tag, ",")[0]
		if name == "" {
			name = f.Name
		}
		m[name] = i
	}
	fieldMaps.Store(t, m)
	return m
}

// UnmarshalFlex decodes a backend payload into v, accepting both native and
// string-encoded scalars. A value of the wrong shape leaves only its own
// field zeroed instead of failing the whole document. Syntactically invalid
// JSON is still an error.
func UnmarshalFlex(data []byte, v any) error {
	if !json.Valid(data) {
		return fmt.Errorf("flex unmarshal: invalid JSON")
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("flex unmarshal: non-nil pointer required, got %T", v)
	}

	// Fast path: standard unmarshal works when all types match natively
	if err := json.Unmarshal(data, v); err == nil {
		return nil
	}

	// Slow path: field-by-field with coercion, starting from a clean value
	rv.Elem().SetZero()
	flexInto(rv.Elem(), data)
	return nil
}

func flexInto(v reflect.Value, data json.RawMessage) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, jsonNull) {
		return
	}

	// Types that already tolerate mixed encodings decode themselves
	if reflect.PointerTo(v.Type()).Implements(unmarshalerType) {
		ptr := reflect.New(v.Type())
		if err := json.Unmarshal(data, ptr.Interface()); err == nil {
			v.Set(ptr.Elem())
		}
		return
	}

	switch v.Kind() {
	case reflect.Pointer:
		elem := reflect.New(v.Type().Elem())
		flexInto(elem.Elem(), data)
		v.Set(elem)
	case reflect.Struct:
		var raw map[string]json.RawMessage
		if err := json.Unmarshal(data, &raw); err != nil {
			return
		}
		fields := fieldMapFor(v.Type())
		for key, val := range raw {
			idx, ok := fields[key]
			if !ok {
				continue
			}
			flexInto(v.Field(idx), val)
		}
	case reflect.Slice:
		var items []json.RawMessage
		if err := json.Unmarshal(data, &items); err != nil {
			return
		}
		out := reflect.MakeSlice(v.Type(), 0, len(items))
		for _, item := range items {
			elem := reflect.New(v.Type().Elem()).Elem()
			flexInto(elem, item)
			out = reflect.Append(out, elem)
		}
		v.Set(out)
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return
		}
		var entries map[string]json.RawMessage
		if err := json.Unmarshal(data, &entries); err != nil {
			return
		}
		out := reflect.MakeMapWithSize(v.Type(), len(entries))
		for k, item := range entries {
			elem := reflect.New(v.Type().Elem()).Elem()
			flexInto(elem, item)
			out.SetMapIndex(reflect.ValueOf(k).Convert(v.Type().Key()), elem)
		}
		v.Set(out)
	default:
		ptr := reflect.New(v.Type())
		if err := json.Unmarshal(data, ptr.Interface()); err == nil {
			v.Set(ptr.Elem())
			return
		}
		coerceScalar(v, data)
	}
}

// coerceScalar converts a mismatched JSON scalar to the field's native type.
func coerceScalar(fv reflect.Value, data json.RawMessage) {
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil || s == "" {
			return
		}
		coerceStringToField(fv, s)
		return
	}
	// Numbers and booleans landing in string fields keep their literal text
	if fv.Kind() == reflect.String && (data[0] == '-' || data[0] == 't' || data[0] == 'f' || (data[0] >= '0' && data[0] <= '9')) {
		fv.SetString(string(data))
	}
}

// coerceStringToField converts a string value to the field's native type.
func coerceStringToField(fv reflect.Value, s string) {
	switch fv.Kind() {
	case reflect.Float32, reflect.Float64:
		if n, err := strconv.ParseFloat(s, 64); err == nil {
			fv.SetFloat(n)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		// ParseFloat handles "28.5" → truncate to int
		if n, err := strconv.ParseFloat(s, 64); err == nil {
			fv.SetInt(int64(n))
		}
	case reflect.Bool:
		if b, err := strconv.ParseBool(s); err == nil {
			fv.SetBool(b)
		}
	}
}
