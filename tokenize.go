package prefixarg

import (
	"iter"
	"strings"
)

const keyPrefix = "-"

// RawArgument is a value from the command line, together with the key
// that introduced it (if any).
type RawArgument struct {
	Key   string
	Value string
}

// HasKey reports whether the argument was introduced by a key. A key that
// is empty or consists of whitespace only does not count.
func (a RawArgument) HasKey() bool {
	return strings.TrimSpace(a.Key) != ""
}

// Tokenize turns command-line tokens into raw arguments.
//
// A token starting with "-" is a key: the rest of the token is held until
// the next value token, which is emitted together with it. A key that is
// followed by another key, or by the end of the tokens, is dropped.
// Every non-empty token that is not a key is emitted as a value.
//
// An empty token is emitted as an argument without key and with an empty
// value. It does not consume a pending key.
func Tokenize(tokens []string) iter.Seq[RawArgument] {
	return func(yield func(RawArgument) bool) {
		key := ""

		for _, token := range tokens {
			switch {
			case strings.HasPrefix(token, keyPrefix):
				key = token[len(keyPrefix):]

			case token != "":
				if !yield(RawArgument{Key: key, Value: token}) {
					return
				}
				key = ""

			default:
				// Placeholder: occupies a positional slot
				if !yield(RawArgument{}) {
					return
				}
			}
		}
	}
}
