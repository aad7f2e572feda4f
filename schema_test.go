package prefixarg

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// color is an enum-like type, parsed through UnmarshalText.
type color int

const (
	red color = iota + 1
	green
	blue
)

func (c *color) UnmarshalText(b []byte) error {
	switch string(b) {
	case "red":
		*c = red
	case "green":
		*c = green
	case "blue":
		*c = blue
	default:
		return errors.New("unknown color")
	}
	return nil
}

func Test_unwrap(t *testing.T) {
	i := 1
	s := struct{}{}
	var nilPtr *struct{}

	tests := []struct {
		data      any
		wantError bool
		text      string
	}{
		{i, true, "int"},
		{&i, true, "*int"},
		{s, true, "struct"},
		{nilPtr, true, "nil *struct"},
		{nil, true, "nil"},
		{&s, false, "*struct"},
	}

	for _, test := range tests {
		_, err := unwrap(test.data)
		if (err != nil) != test.wantError {
			t.Error(test.text)
		}
		if err != nil && !errors.Is(err, ErrInvalidTarget) {
			t.Errorf("%s: got=%v", test.text, err)
		}
	}
}

func Test_kindOf(t *testing.T) {
	type port uint16
	type name string

	f := func(i any) reflect.Type { return reflect.TypeOf(i) }

	tests := []struct {
		typ  reflect.Type
		want Kind
	}{
		{f(""), KindString},
		{f(name("")), KindString},
		{f(true), KindBool},
		{f(0), KindInt},
		{f(int8(0)), KindInt},
		{f(int64(0)), KindInt},
		{f(uint(0)), KindUint},
		{f(port(0)), KindUint},
		{f(float32(0)), KindFloat},
		{f(0.0), KindFloat},
		{f(time.Time{}), KindTime},
		{f(time.Duration(0)), KindDuration},
		{f(color(0)), KindText},

		{f(new(int)), KindInvalid},
		{f([]int{}), KindInvalid},
		{f(map[string]int{}), KindInvalid},
		{f(struct{}{}), KindInvalid},
		{f(uintptr(0)), KindInvalid},
		{f(complex(1, 1)), KindInvalid},
		{f(new(color)), KindInvalid},
	}

	for _, test := range tests {
		if got := kindOf(test.typ); got != test.want {
			t.Errorf("%v: got=%v want=%v", test.typ, got, test.want)
		}
	}
}

func Test_analyzeStructErr(t *testing.T) {
	tests := []struct {
		data any
		text string
	}{
		{&struct{ P *int }{}, "pointer"},
		{&struct{ S []string }{}, "slice"},
		{&struct{ M map[string]int }{}, "map"},
		{&struct{ A struct{} }{}, "struct"},
		{&struct {
			A int `arg-name:"X"`
			B int `arg-name:"X"`
		}{}, "duplicate name"},
		{&struct {
			A int
			B int `arg-name:"A"`
		}{}, "name clashes with field"},
		{&struct {
			Name string
			Nick string `arg-name:"name"`
		}{}, "name differs only in case"},
		{&struct {
			Strasse string
			Street  string `arg-name:"STRASSE"`
		}{}, "tag differs only in case"},
	}

	for _, test := range tests {
		_, err := SchemaOf(test.data)
		if !errors.Is(err, ErrInvalidSchema) {
			t.Errorf("%s: expected ErrInvalidSchema, got %v", test.text, err)
		}
	}
}

func Test_analyzeStructOk(t *testing.T) {
	tests := []struct {
		data  any
		names []string
	}{
		{&struct{}{}, []string{}},
		{&struct{ A, B int }{}, []string{"A", "B"}},
		{&struct {
			B int
			A int
		}{}, []string{"B", "A"}},
		{&struct {
			A int
			b int
			C int
		}{}, []string{"A", "C"}},
		{&struct {
			A int `arg-ignore:""`
			B int
			P *int `arg-ignore:""`
		}{}, []string{"B"}},
		{&struct {
			A int `arg-name:"alpha"`
			B int `arg-name:"  "`
		}{}, []string{"alpha", "B"}},
	}

	for j, test := range tests {
		s, err := SchemaOf(test.data)
		if err != nil {
			t.Errorf("%d: Unexpected error: %v", j, err)
			continue
		}

		got := []string{}
		for _, f := range s.Fields() {
			got = append(got, f.Name)
		}
		if !reflect.DeepEqual(got, test.names) {
			t.Errorf("%d: got=%v want=%v", j, got, test.names)
		}
	}
}

func Test_makeFieldTags(t *testing.T) {
	s := struct {
		Name  string    `arg-required:""`
		Count int       `arg-default:"7"`
		When  time.Time `arg-format:"2006-01-02" arg-required:"yes"`
		Plain float64
	}{}

	schema, err := SchemaOf(&s)
	require.NoError(t, err)
	require.Equal(t, 4, schema.Len())

	tests := []struct {
		name     string
		kind     Kind
		required bool
		def      string
		format   string
		index    int
	}{
		{"Name", KindString, true, "", "", 0},
		{"Count", KindInt, false, "7", "", 1},
		{"When", KindTime, true, "", "2006-01-02", 2},
		{"Plain", KindFloat, false, "", "", 3},
	}

	for j, test := range tests {
		f := schema.Field(j)
		assert.Equal(t, test.name, f.Name)
		assert.Equal(t, test.kind, f.Kind, f.Name)
		assert.Equal(t, test.required, f.Required, f.Name)
		assert.Equal(t, test.def, f.Default, f.Name)
		assert.Equal(t, test.format, f.Format, f.Name)
		assert.Equal(t, test.index, f.index, f.Name)
	}
}

func Test_NewSchema(t *testing.T) {
	s, err := NewSchema(
		Field{Name: "Name", Kind: KindString, Required: true},
		Field{Name: "Age", Kind: KindInt},
	)
	require.NoError(t, err)
	require.Equal(t, 2, s.Len())
	assert.Equal(t, "Name", s.Field(0).Name)
	assert.Equal(t, -1, s.Field(1).index)

	// Fields returns a copy
	fields := s.Fields()
	fields[0].Name = "Other"
	assert.Equal(t, "Name", s.Field(0).Name)

	bad := [][]Field{
		{{Name: "", Kind: KindString}},
		{{Name: " ", Kind: KindString}},
		{{Name: "A", Kind: KindString}, {Name: "A", Kind: KindInt}},
		{{Name: "Name", Kind: KindString}, {Name: "name", Kind: KindString}},
		{{Name: "AGE", Kind: KindInt}, {Name: "age", Kind: KindString}},
		{{Name: "A"}},
		{{Name: "A", Kind: KindText}},
		{{Name: "A", Kind: Kind(99)}},
	}

	for _, fields := range bad {
		_, err := NewSchema(fields...)
		assert.ErrorIs(t, err, ErrInvalidSchema, "%v", fields)
	}
}

func Test_KindString(t *testing.T) {
	assert.Equal(t, "duration", KindDuration.String())
	assert.Equal(t, "text", KindText.String())
	assert.Equal(t, "Kind(42)", Kind(42).String())
}
