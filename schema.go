package prefixarg

import (
	"encoding"
	"fmt"
	"reflect"
	"strings"
	"time"

	"golang.org/x/text/cases"
)

const (
	tagName     = "arg-name"
	tagRequired = "arg-required"
	tagDefault  = "arg-default"
	tagFormat   = "arg-format"
	tagIgnore   = "arg-ignore"
)

// Kind is the closed set of value kinds a Field may hold. Each kind has
// exactly one coercion rule, see Coerce.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindString
	KindInt
	KindUint
	KindFloat
	KindBool
	KindTime
	KindDuration
	KindText // encoding.TextUnmarshaler, used for enum-like types
)

var kindNames = [...]string{
	KindInvalid:  "invalid",
	KindString:   "string",
	KindInt:      "int",
	KindUint:     "uint",
	KindFloat:    "float",
	KindBool:     "bool",
	KindTime:     "time",
	KindDuration: "duration",
	KindText:     "text",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

var (
	timeType            = reflect.TypeOf(time.Time{})
	durationType        = reflect.TypeOf(time.Duration(0))
	textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
)

// -----

// Field describes one bindable field of a target record.
type Field struct {
	Name     string
	Kind     Kind
	Required bool

	Default string // used when the field receives no binding
	Format  string // time layout, KindTime only

	typ   reflect.Type // Go type of the struct field; nil for declared schemas
	index int          // struct field index; -1 for declared schemas
}

// Schema is the ordered, immutable list of fields of a target record.
// Order is declaration order and drives positional binding.
type Schema struct {
	fields []Field
}

// Len returns the number of fields in the schema.
func (s Schema) Len() int { return len(s.fields) }

// Field returns the i-th field in declaration order.
func (s Schema) Field(i int) Field { return s.fields[i] }

// Fields returns a copy of the schema's fields.
func (s Schema) Fields() []Field {
	return append([]Field(nil), s.fields...)
}

// NewSchema builds a schema from explicitly declared fields, for callers
// that do not bind into a struct. Returns an error if a name is empty or
// duplicated, or if a kind is invalid. Names that differ only in case
// count as duplicates. KindText needs a Go type and can only be derived
// from a struct, see SchemaOf.
func NewSchema(fields ...Field) (Schema, error) {
	folder := cases.Fold()
	seen := map[string]struct{}{}
	out := make([]Field, 0, len(fields))

	for _, f := range fields {
		if strings.TrimSpace(f.Name) == "" {
			return Schema{}, fmt.Errorf("%w: empty field name", ErrInvalidSchema)
		}
		folded := folder.String(f.Name)
		if _, ok := seen[folded]; ok {
			return Schema{}, fmt.Errorf("%w: duplicate field %s", ErrInvalidSchema, f.Name)
		}
		seen[folded] = struct{}{}

		if f.Kind == KindInvalid || f.Kind == KindText || f.Kind > KindText {
			return Schema{}, fmt.Errorf("%w: field %s has unsupported kind %v",
				ErrInvalidSchema, f.Name, f.Kind)
		}

		f.typ = nil
		f.index = -1
		out = append(out, f)
	}

	return Schema{fields: out}, nil
}

// SchemaOf takes a pointer to a struct and derives its schema from the
// struct's exported fields and their tags.
//
// Returns an error if the argument is not a pointer to a struct, or if a
// field that is not ignored has an unsupported type.
func SchemaOf(data any) (Schema, error) {
	v, err := unwrap(data)
	if err != nil {
		return Schema{}, err
	}
	return analyzeStruct(v.Type())
}

// Unwrap takes an argument, which must be a pointer to a struct, and
// returns a reflect.Value of the pointed to struct. It returns an error
// if the argument is not a pointer to a struct.
func unwrap(s any) (reflect.Value, error) {
	v := reflect.ValueOf(s)

	if v.Kind() != reflect.Pointer || v.IsNil() {
		return reflect.Value{}, ErrInvalidTarget
	}
	v = v.Elem()

	if v.Kind() != reflect.Struct {
		return reflect.Value{}, ErrInvalidTarget
	}

	return v, nil
}

// AnalyzeStruct walks the fields of a struct type in declaration order
// and returns the schema. Unexported fields and fields tagged arg-ignore
// are skipped. Names must be unique ignoring case.
func analyzeStruct(t reflect.Type) (Schema, error) {
	folder := cases.Fold()
	fields := []Field{}
	seen := map[string]string{}

	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)

		if !sf.IsExported() {
			continue
		}
		if _, ok := sf.Tag.Lookup(tagIgnore); ok {
			continue
		}

		f, err := makeField(sf)
		if err != nil {
			return Schema{}, err
		}
		f.index = i

		folded := folder.String(f.Name)
		if prev, ok := seen[folded]; ok {
			return Schema{}, fmt.Errorf("%w: fields %s and %s share the name %s",
				ErrInvalidSchema, prev, sf.Name, f.Name)
		}
		seen[folded] = sf.Name

		fields = append(fields, f)
	}

	return Schema{fields: fields}, nil
}

// MakeField reads a struct field's type and tags and returns the matching
// Field. Returns an error for field types outside the supported kinds.
func makeField(sf reflect.StructField) (Field, error) {
	kind := kindOf(sf.Type)
	if kind == KindInvalid {
		return Field{}, fmt.Errorf("%w: %s not permitted in struct (field %s), maybe use %s tag",
			ErrInvalidSchema, sf.Type.String(), sf.Name, tagIgnore)
	}

	name := sf.Name
	if n := strings.TrimSpace(sf.Tag.Get(tagName)); n != "" {
		name = n
	}

	_, required := sf.Tag.Lookup(tagRequired)

	return Field{
		Name:     name,
		Kind:     kind,
		Required: required,
		Default:  sf.Tag.Get(tagDefault),
		Format:   sf.Tag.Get(tagFormat),
		typ:      sf.Type,
	}, nil
}

// KindOf maps a Go type onto a Kind. The order of checks matters:
// time.Time and time.Duration are matched before the generic rules.
func kindOf(t reflect.Type) Kind {
	switch {
	case t == timeType:
		return KindTime
	case t == durationType:
		return KindDuration
	case t.Kind() != reflect.Pointer && reflect.PointerTo(t).Implements(textUnmarshalerType):
		return KindText
	}

	switch t.Kind() {
	case reflect.String:
		return KindString
	case reflect.Bool:
		return KindBool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return KindInt
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return KindUint
	case reflect.Float32, reflect.Float64:
		return KindFloat
	default:
		return KindInvalid
	}
}
