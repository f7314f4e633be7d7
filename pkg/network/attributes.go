package network

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"github.com/elbamos/ggally/pkg/errors"
)

// =============================================================================
// Value - Tagged Attribute Scalar
// =============================================================================

// ValueKind discriminates the scalar type stored in a Value.
type ValueKind int

// Supported attribute scalar kinds.
const (
	KindNumber ValueKind = iota
	KindString
	KindBool
)

// Value is a tagged scalar attribute value.
// The zero value is the number 0.
type Value struct {
	kind ValueKind
	num  float64
	str  string
	b    bool
}

// Number creates a numeric attribute value.
func Number(v float64) Value { return Value{kind: KindNumber, num: v} }

// String creates a string attribute value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Bool creates a boolean attribute value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Kind returns the scalar kind stored in the value.
func (v Value) Kind() ValueKind { return v.kind }

// Float returns the numeric content and whether the value is numeric.
func (v Value) Float() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	return v.num, true
}

// Text renders the value as a string regardless of kind.
func (v Value) Text() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindBool:
		return strconv.FormatBool(v.b)
	default:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	}
}

// MarshalJSON serializes the value as a bare JSON scalar.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindString:
		return json.Marshal(v.str)
	case KindBool:
		return json.Marshal(v.b)
	default:
		return json.Marshal(v.num)
	}
}

// UnmarshalJSON restores a value from a bare JSON scalar.
func (v *Value) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*v = Bool(b)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*v = Number(f)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = String(s)
		return nil
	}
	return fmt.Errorf("attribute value %s is not a scalar", data)
}

// =============================================================================
// Attributes - Typed Per-Vertex Store
// =============================================================================

// Attributes is a typed attribute store keyed by name.
//
// Getters return structured errors: ErrCodeAttributeNotFound when the name
// is absent, ErrCodeInvalidAttribute when the stored kind cannot satisfy
// the request.
type Attributes struct {
	values map[string]Value
}

// NewAttributes creates an empty attribute store.
func NewAttributes() *Attributes {
	return &Attributes{values: make(map[string]Value)}
}

// Set stores a value under name, replacing any previous value.
func (a *Attributes) Set(name string, v Value) {
	if a.values == nil {
		a.values = make(map[string]Value)
	}
	a.values[name] = v
}

// SetNumber stores a numeric attribute.
func (a *Attributes) SetNumber(name string, v float64) { a.Set(name, Number(v)) }

// SetString stores a string attribute.
func (a *Attributes) SetString(name, s string) { a.Set(name, String(s)) }

// SetBool stores a boolean attribute.
func (a *Attributes) SetBool(name string, b bool) { a.Set(name, Bool(b)) }

// Has reports whether an attribute with the given name exists.
func (a *Attributes) Has(name string) bool {
	if a == nil {
		return false
	}
	_, ok := a.values[name]
	return ok
}

// Get returns the raw tagged value for name.
func (a *Attributes) Get(name string) (Value, error) {
	if a == nil {
		return Value{}, errors.New(errors.ErrCodeAttributeNotFound, "attribute %q not found", name)
	}
	v, ok := a.values[name]
	if !ok {
		return Value{}, errors.New(errors.ErrCodeAttributeNotFound, "attribute %q not found", name)
	}
	return v, nil
}

// Number returns the numeric attribute stored under name.
func (a *Attributes) Number(name string) (float64, error) {
	v, err := a.Get(name)
	if err != nil {
		return 0, err
	}
	f, ok := v.Float()
	if !ok {
		return 0, errors.New(errors.ErrCodeInvalidAttribute, "attribute %q is not numeric", name)
	}
	return f, nil
}

// Text returns the attribute stored under name rendered as a string.
// Any scalar kind satisfies the request.
func (a *Attributes) Text(name string) (string, error) {
	v, err := a.Get(name)
	if err != nil {
		return "", err
	}
	return v.Text(), nil
}

// Names returns the attribute names in sorted order.
func (a *Attributes) Names() []string {
	if a == nil {
		return nil
	}
	names := make([]string, 0, len(a.values))
	for name := range a.values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of stored attributes.
func (a *Attributes) Len() int {
	if a == nil {
		return 0
	}
	return len(a.values)
}

// Clone returns a deep copy of the store.
func (a *Attributes) Clone() *Attributes {
	out := NewAttributes()
	if a == nil {
		return out
	}
	for name, v := range a.values {
		out.values[name] = v
	}
	return out
}

// MarshalJSON serializes the store as a flat name→scalar object.
func (a *Attributes) MarshalJSON() ([]byte, error) {
	if a == nil || len(a.values) == 0 {
		return []byte("{}"), nil
	}
	return json.Marshal(a.values)
}

// UnmarshalJSON restores the store from a flat name→scalar object.
func (a *Attributes) UnmarshalJSON(data []byte) error {
	values := make(map[string]Value)
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	a.values = values
	return nil
}
