package prefixarg

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-runewidth"
)

// PrintValues takes a pointer to a populated struct and writes the names
// and types of its fields, together with their current values, to standard
// error.
func PrintValues(data any) error {
	return writeValues(os.Stderr, data, false)
}

// WriteValues takes a pointer to a populated struct and writes the names
// and types of its fields, together with their current values, to w.
func WriteValues(w io.Writer, data any) error {
	return writeValues(w, data, false)
}

// WriteValuesWithTags is like WriteValues, but also writes the struct tags
// of each field.
func WriteValuesWithTags(w io.Writer, data any) error {
	return writeValues(w, data, true)
}

// Columns are padded to their display width, so values with wide or
// combining characters stay aligned.
func writeValues(w io.Writer, data any, withTags bool) error {
	v, err := unwrap(data)
	if err != nil {
		return err
	}

	typeInfo := v.Type()

	type row struct{ name, typ, val, tag string }
	rows := make([]row, 0, v.NumField())

	mxName, mxType, mxVal := 0, 0, 0
	for i := 0; i < v.NumField(); i++ {
		field := typeInfo.Field(i)

		r := row{
			name: field.Name,
			typ:  field.Type.String(),
			val:  fmt.Sprintf("%v", v.Field(i)),
		}
		if withTags {
			r.tag = string(field.Tag)
		}
		rows = append(rows, r)

		mxName = max(mxName, runewidth.StringWidth(r.name))
		mxType = max(mxType, runewidth.StringWidth(r.typ))
		mxVal = max(mxVal, runewidth.StringWidth(r.val))
	}

	for _, r := range rows {
		_, err := fmt.Fprintf(w, "%s   %s   %s   %s\n",
			runewidth.FillRight(r.name, mxName),
			runewidth.FillRight(r.typ, mxType),
			runewidth.FillRight(r.val, mxVal), r.tag)
		if err != nil {
			return err
		}
	}

	return nil
}
