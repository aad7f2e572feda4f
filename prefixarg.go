package prefixarg

import (
	"errors"
	"os"
	"reflect"
)

// PopulateFromSlice takes a slice of tokens, a pointer to a struct, and
// the parse options, and populates the struct from the tokens.
//
// Every argument is converted as soon as it is bound, so a bad value
// fails even if a later argument replaces it. The values are built up in
// a copy of the struct; the struct itself is only written once every
// field has been bound and converted. Fields in the schema that receive
// no binding are set to their arg-default value, or to the zero value of
// their type. Ignored and unexported fields keep their current value.
func populateFromSlice(tokens []string, data any, opts Options) error {
	v, err := unwrap(data)
	if err != nil {
		return err
	}

	schema, err := analyzeStruct(v.Type())
	if err != nil {
		return err
	}

	log := opts.logger()
	log.Debug("Parsing arguments.", "type", v.Type().String(), "tokens", len(tokens))

	values := map[int]any{}
	onBind := func(i int, arg RawArgument) error {
		val, err := coerceArgument(schema.fields[i], arg)
		if err != nil {
			return err
		}
		values[i] = val
		return nil
	}

	if _, err := bind(schema, Tokenize(tokens), opts, onBind); err != nil {
		return err
	}

	out := reflect.New(v.Type()).Elem()
	out.Set(v)

	for i, f := range schema.fields {
		val, ok := values[i]
		if !ok {
			if f.Default != "" {
				log.Debug("Applying default.", "field", f.Name, "default", f.Default)
			}
			if val, err = defaultValue(f); err != nil {
				return err
			}
		}
		out.Field(f.index).Set(reflect.ValueOf(val))
	}

	v.Set(out)
	log.Debug("Arguments parsed.", "bound", len(values), "fields", schema.Len())

	return nil
}

// CoerceArgument converts a bound argument to the type of f. A conversion
// error carries the argument's key.
func coerceArgument(f Field, arg RawArgument) (any, error) {
	val, err := Coerce(f, arg.Value)
	if err != nil {
		var argErr *ArgumentError
		if errors.As(err, &argErr) {
			argErr.Key = arg.Key
		}
		return nil, err
	}
	return val, nil
}

// DefaultValue returns the value of an unbound field: its arg-default,
// converted, or the zero value of its type.
func defaultValue(f Field) (any, error) {
	if f.Default == "" {
		return reflect.Zero(f.typ).Interface(), nil
	}
	return Coerce(f, f.Default)
}

// FromSlice takes a slice of tokens and a pointer to a struct, and
// populates the struct from the tokens with the default Options.
//
// Returns an error if the struct contains unsupported data types, if a
// key matches no field or several fields, if there are more positional
// arguments than fields, if a required field is not supplied, or if any
// of the type conversions fails. The struct is left unchanged on error.
func FromSlice(tokens []string, data any) error {
	return populateFromSlice(tokens, data, Options{})
}

// FromSliceWithOptions is like FromSlice, using the given options.
func FromSliceWithOptions(tokens []string, data any, opts Options) error {
	return populateFromSlice(tokens, data, opts)
}

// FromCommandLine takes a pointer to a struct and populates the struct
// with the command-line arguments, see FromSlice.
func FromCommandLine(data any) error {
	return populateFromSlice(os.Args[1:], data, Options{})
}

// FromCommandLineWithOptions is like FromCommandLine, using the given
// options.
func FromCommandLineWithOptions(data any, opts Options) error {
	return populateFromSlice(os.Args[1:], data, opts)
}
