/*
Package prefixarg implements a minimal command-line parser. Given a
struct definition, the package populates the fields of the struct with
data read from the command line. Arguments are matched to fields by a
prefix of the field name, or by position.


# Named Arguments

A token starting with "-" is a key; the following token is its value:

	type Config struct {
		Name      string
		Namespace string
		Count     int
	}

	c := Config{}
	err := prefixarg.FromSlice([]string{"-co", "3", "-namesp", "prod"}, &c)

A key selects the field whose name starts with the key, ignoring case
(the comparison uses Unicode case folding and does not depend on the
locale). The key must match exactly one field: with the struct above,
"-c" selects Count, while "-nam" matches both Name and Namespace and is
rejected with ErrAmbiguousArgument. Note that "-name" is ambiguous as
well, since "Namespace" also starts with "name". A key that matches no
field is rejected with ErrUnrecognizedArgument.

A key must be followed by its value. A key that is directly followed by
another key, or that ends the command line, is dropped silently. Since
every token starting with "-" is a key, negative numbers can only be
passed as part of a longer token, never on their own.


# Positional Arguments

Tokens that do not belong to a key are positional arguments. They are
assigned to the fields in declaration order: the first positional
argument to the first field, and so on. By default this uses the full
list of fields, so a positional argument replaces a value that was set
by key for the same field:

	// Name = "a", Namespace = "b", Count = 3
	prefixarg.FromSlice([]string{"-co", "3", "a", "b"}, &c)

	// Name = "a", Namespace = "b", Count = 4: "4" replaces "3"
	prefixarg.FromSlice([]string{"-co", "3", "a", "b", "4"}, &c)

Set Options.Positionals to PositionalSkipBound to assign positional
arguments only to fields that were not set by key.

More positional arguments than fields is an error
(ErrMissingPositionalSlot).

An empty token ("") is a placeholder. It takes up a positional slot,
and the field in that slot receives the empty string, which must then
convert to the field's type. It does not consume a pending key.


# Supported Data Types

The following data types can be used as struct fields, and command-line
tokens will automatically be converted to the appropriate type:

	string
	bool
	int, int8, int16, int32, int64
	uint, uint8, uint16, uint32, uint64
	float32, float64
	time.Time
	time.Duration
	any type whose pointer implements encoding.TextUnmarshaler

Named types with one of these underlying types are accepted too. Numbers
that do not fit the size of the field are rejected. The last rule is
meant for enumerations: implement UnmarshalText to map names to values.

Times are parsed with the layout in the arg-format tag, if present.
Otherwise the following layouts are tried in order: RFC 3339 (with and
without fractional seconds), "2006-01-02T15:04:05", "2006-01-02
15:04:05Z07:00", "2006-01-02 15:04:05", "2006-01-02 15:04",
"2006-01-02", RFC 1123, RFC 822, "01/02/2006 15:04:05" and
"01/02/2006". Times without zone are UTC.

Any other field type is an error, unless the field is ignored.
Remember that struct fields must be public (ie. upper-case) to be
populated; unexported fields are skipped.


# Struct Tags

The following struct tags may be used:

	arg-name     : The name keys are matched against (default: the field name).
	arg-required : The field must be set, by key or by position.
	arg-default  : A value for the field, used when it is not set on the command line.
	arg-format   : A layout for time.Parse (only used for fields of type time.Time).
	arg-ignore   : Ignore this field, do not populate it, do not treat it as positional argument.


# Errors

Every error aborts the parse and leaves the struct unchanged. Parse
errors are of type *ArgumentError and match one of ErrUnrecognizedArgument,
ErrAmbiguousArgument, ErrMissingPositionalSlot, ErrRequiredArgumentMissing
or ErrTypeConversion with errors.Is. A struct that cannot be parsed into
at all yields ErrInvalidTarget or ErrInvalidSchema.


# Stages

FromSlice combines three steps, which are also available on their own:
Tokenize splits the tokens into raw arguments, Bind assigns them to the
fields of a Schema, and Coerce converts each bound value. FromSlice
converts every value as it is bound, so a bad value is reported even if
a later argument replaces it. A Schema can be
derived from a struct with SchemaOf, or declared with NewSchema.
*/
package prefixarg
