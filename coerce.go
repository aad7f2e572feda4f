package prefixarg

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"
	"time"
)

// Layouts tried, in order, for time fields without arg-format. None of
// them depends on the locale; layouts without zone parse as UTC.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	time.RFC1123Z,
	time.RFC1123,
	time.RFC822Z,
	time.RFC822,
	"01/02/2006 15:04:05",
	"01/02/2006",
}

// Coerce converts a raw string to the value kind of f.
//
// For fields derived from a struct, the returned value has the Go type of
// the struct field. For declared fields it is one of string, int64,
// uint64, float64, bool, time.Time or time.Duration.
//
// Returns an *ArgumentError wrapping the parse error if the string cannot
// be converted, including numbers that overflow the field's size.
func Coerce(f Field, raw string) (any, error) {
	v, err := convertToKind(f, raw)
	if err != nil {
		return nil, &ArgumentError{Kind: ErrTypeConversion, Field: f.Name, Value: raw, Err: err}
	}
	return v, nil
}

// ConvertToKind does the actual conversion for Coerce.
func convertToKind(f Field, raw string) (any, error) {
	switch f.Kind {
	case KindString:
		return convertValue(raw, f.typ), nil

	case KindInt:
		i, err := strconv.ParseInt(raw, 10, bitSize(f))
		if err != nil {
			return nil, err
		}
		return convertValue(i, f.typ), nil

	case KindUint:
		u, err := strconv.ParseUint(raw, 10, bitSize(f))
		if err != nil {
			return nil, err
		}
		return convertValue(u, f.typ), nil

	case KindFloat:
		x, err := strconv.ParseFloat(raw, bitSize(f))
		if err != nil {
			return nil, err
		}
		return convertValue(x, f.typ), nil

	case KindBool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, err
		}
		return convertValue(b, f.typ), nil

	case KindTime:
		return parseTime(raw, f.Format)

	case KindDuration:
		return time.ParseDuration(raw)

	case KindText:
		if f.typ == nil {
			return nil, fmt.Errorf("no type for text field")
		}
		ptr := reflect.New(f.typ)
		if err := ptr.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(raw)); err != nil {
			return nil, err
		}
		return ptr.Elem().Interface(), nil

	default:
		return nil, fmt.Errorf("invalid kind %v", f.Kind)
	}
}

// ParseTime parses s with the given layout or, if the layout is empty,
// with the first of timeLayouts that accepts it.
func parseTime(s, layout string) (time.Time, error) {
	if layout != "" {
		return time.Parse(layout, s)
	}

	for _, l := range timeLayouts {
		if t, err := time.Parse(l, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse %q as date-time", s)
}

// BitSize returns the size of the field's Go type, or 64 for declared
// fields.
func bitSize(f Field) int {
	if f.typ == nil {
		return 64
	}
	return f.typ.Bits()
}

// ConvertValue converts v to typ (a named or sized type of the same
// kind). With a nil typ, v is returned as is.
func convertValue(v any, typ reflect.Type) any {
	if typ == nil {
		return v
	}
	return reflect.ValueOf(v).Convert(typ).Interface()
}
