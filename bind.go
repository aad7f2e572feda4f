package prefixarg

import (
	"iter"
	"log/slog"
	"strings"

	"golang.org/x/text/cases"
)

// PositionalMode selects how arguments without key are assigned to fields.
type PositionalMode uint8

const (
	// PositionalByIndex assigns the i-th positional argument to the i-th
	// field of the schema, whether or not that field was already bound by
	// key. A positional argument replaces an earlier keyed binding.
	PositionalByIndex PositionalMode = iota

	// PositionalSkipBound assigns the i-th positional argument to the i-th
	// field that was not bound by key.
	PositionalSkipBound
)

// Options configures a parse. The zero value is the default behavior.
type Options struct {
	Positionals PositionalMode

	// Logger receives debug records. If nil, slog.Default() is used.
	Logger *slog.Logger
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

// -----

// Binding maps schema indices to the raw argument bound to that field.
type Binding map[int]RawArgument

// BindFunc is called for every argument as it is bound to field i,
// including arguments that are later replaced.
type bindFunc func(i int, arg RawArgument) error

// Bind assigns raw arguments to the fields of a schema.
//
// Keyed arguments are resolved first, in input order: a key selects the
// one field whose name starts with the key, ignoring case. Arguments
// without key are then assigned in input order according to
// opts.Positionals. Finally every required field must have been bound.
//
// Returns an *ArgumentError if a key matches no field or more than one
// field, if there are more positional arguments than fields to receive
// them, or if a required field is left unbound.
func Bind(schema Schema, args iter.Seq[RawArgument], opts Options) (Binding, error) {
	return bind(schema, args, opts, nil)
}

// With a non-nil onBind, bind calls it each time an argument is bound to
// a field. An error from onBind stops binding and is returned as is.
func bind(schema Schema, args iter.Seq[RawArgument], opts Options, onBind bindFunc) (Binding, error) {
	log := opts.logger()

	folder := cases.Fold()
	names := make([]string, schema.Len())
	for i, f := range schema.fields {
		names[i] = folder.String(f.Name)
	}

	binding := Binding{}
	keyed := map[int]struct{}{}
	positionals := []RawArgument{}

	for arg := range args {
		if !arg.HasKey() {
			positionals = append(positionals, arg)
			continue
		}

		i, err := resolveKey(schema, names, folder.String(arg.Key), arg.Key)
		if err != nil {
			return nil, err
		}

		log.Debug("Bound keyed argument.", "key", arg.Key, "field", schema.fields[i].Name)
		if onBind != nil {
			if err := onBind(i, arg); err != nil {
				return nil, err
			}
		}
		binding[i] = arg
		keyed[i] = struct{}{}
	}

	// Slots for positional arguments, in schema order
	slots := make([]int, 0, schema.Len())
	for i := range schema.fields {
		if _, ok := keyed[i]; ok && opts.Positionals == PositionalSkipBound {
			continue
		}
		slots = append(slots, i)
	}

	for j, arg := range positionals {
		if j >= len(slots) {
			return nil, &ArgumentError{Kind: ErrMissingPositionalSlot, Value: arg.Value}
		}

		i := slots[j]
		if prev, ok := binding[i]; ok {
			log.Debug("Positional argument replaces keyed binding.",
				"field", schema.fields[i].Name, "key", prev.Key)
		}

		log.Debug("Bound positional argument.", "position", j, "field", schema.fields[i].Name)
		if onBind != nil {
			if err := onBind(i, arg); err != nil {
				return nil, err
			}
		}
		binding[i] = arg
	}

	for i, f := range schema.fields {
		if _, ok := binding[i]; !ok && f.Required {
			return nil, &ArgumentError{Kind: ErrRequiredArgumentMissing, Field: f.Name}
		}
	}

	return binding, nil
}

// ResolveKey returns the index of the single field whose folded name
// starts with the folded key.
func resolveKey(schema Schema, names []string, folded, key string) (int, error) {
	matches := []int{}
	for i, name := range names {
		if strings.HasPrefix(name, folded) {
			matches = append(matches, i)
		}
	}

	switch len(matches) {
	case 0:
		return 0, &ArgumentError{Kind: ErrUnrecognizedArgument, Key: key}

	case 1:
		return matches[0], nil

	default:
		candidates := make([]string, len(matches))
		for j, i := range matches {
			candidates[j] = schema.fields[i].Name
		}
		return 0, &ArgumentError{Kind: ErrAmbiguousArgument, Key: key,
			Candidates: candidates}
	}
}
