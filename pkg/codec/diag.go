package codec

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tagpack/tagpack/pkg/value"
)

// Diagnose renders every value in data in a human-readable diagnostic
// notation, one value per line. It is a debugging aid for inspecting
// wire buffers, not a serialization format.
func Diagnose(data []byte) (string, error) {
	var out strings.Builder
	dec := NewDecoder(data)
	for dec.More() {
		start := dec.Offset()
		v, err := dec.Decode()
		if err != nil {
			return out.String(), err
		}
		fmt.Fprintf(&out, "%6d: ", start)
		writeDiag(&out, v)
		out.WriteByte('\n')
	}
	return out.String(), nil
}

func writeDiag(out *strings.Builder, v value.Value) {
	switch v.Kind() {
	case value.KindNil:
		out.WriteString("nil")
	case value.KindBool:
		out.WriteString(strconv.FormatBool(v.Bool()))
	case value.KindInt:
		out.WriteString(strconv.FormatInt(v.Int(), 10))
	case value.KindFloat:
		out.WriteString(strconv.FormatFloat(v.Float(), 'g', -1, 64))
	case value.KindText:
		out.WriteString(strconv.Quote(v.Text()))
	case value.KindBytes:
		fmt.Fprintf(out, "h'%x'", v.Bytes())
	case value.KindList:
		out.WriteByte('[')
		for i, el := range v.Elems() {
			if i > 0 {
				out.WriteString(", ")
			}
			writeDiag(out, el)
		}
		out.WriteByte(']')
	case value.KindMap:
		out.WriteByte('{')
		for i, p := range v.Pairs() {
			if i > 0 {
				out.WriteString(", ")
			}
			writeDiag(out, p.Key)
			out.WriteString(": ")
			writeDiag(out, p.Value)
		}
		out.WriteByte('}')
	}
}
