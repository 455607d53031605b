package value

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

// FromJSON parses a JSON document into a Value. Object member order is
// preserved, which is why this walks the token stream instead of
// unmarshaling into a Go map. Numbers become Int when they parse as a
// signed 64-bit integer and Float otherwise.
func FromJSON(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	v, err := fromJSONToken(dec)
	if err != nil {
		return Value{}, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return Value{}, fmt.Errorf("value: trailing data after JSON document")
	}
	return v, nil
}

func fromJSONToken(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, fmt.Errorf("value: invalid JSON: %w", err)
	}
	return fromToken(dec, tok)
}

func fromToken(dec *json.Decoder, tok json.Token) (Value, error) {
	switch t := tok.(type) {
	case nil:
		return Nil(), nil
	case bool:
		return Bool(t), nil
	case string:
		return Text(t), nil
	case json.Number:
		if i, err := strconv.ParseInt(t.String(), 10, 64); err == nil {
			return Int(i), nil
		}
		f, err := t.Float64()
		if err != nil {
			return Value{}, fmt.Errorf("value: invalid JSON number %q: %w", t, err)
		}
		return Float(f), nil
	case json.Delim:
		switch t {
		case '[':
			var elems []Value
			for dec.More() {
				e, err := fromJSONToken(dec)
				if err != nil {
					return Value{}, err
				}
				elems = append(elems, e)
			}
			if _, err := dec.Token(); err != nil {
				return Value{}, fmt.Errorf("value: invalid JSON: %w", err)
			}
			return List(elems...), nil
		case '{':
			var pairs []Pair
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return Value{}, fmt.Errorf("value: invalid JSON: %w", err)
				}
				key, ok := keyTok.(string)
				if !ok {
					return Value{}, fmt.Errorf("value: invalid JSON object key %v", keyTok)
				}
				val, err := fromJSONToken(dec)
				if err != nil {
					return Value{}, err
				}
				pairs = append(pairs, Pair{Key: Text(key), Value: val})
			}
			if _, err := dec.Token(); err != nil {
				return Value{}, fmt.Errorf("value: invalid JSON: %w", err)
			}
			return Map(pairs...), nil
		}
	}
	return Value{}, fmt.Errorf("value: unexpected JSON token %v", tok)
}

// ToJSON renders a Value as a JSON document, preserving map pair order.
// Bytes values encode as base64 strings. Map keys must be text: JSON
// objects cannot express other key kinds, so non-text keys are rejected
// here even though the codec itself supports them.
func ToJSON(v Value) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSON(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeJSON(buf *bytes.Buffer, v Value) error {
	switch v.Kind() {
	case KindNil:
		buf.WriteString("null")
	case KindBool:
		buf.WriteString(strconv.FormatBool(v.Bool()))
	case KindInt:
		buf.WriteString(strconv.FormatInt(v.Int(), 10))
	case KindFloat:
		out, err := json.Marshal(v.Float())
		if err != nil {
			return fmt.Errorf("value: float %v has no JSON form: %w", v.Float(), err)
		}
		buf.Write(out)
	case KindText:
		out, err := json.Marshal(v.Text())
		if err != nil {
			return err
		}
		buf.Write(out)
	case KindBytes:
		buf.WriteByte('"')
		buf.WriteString(base64.StdEncoding.EncodeToString(v.Bytes()))
		buf.WriteByte('"')
	case KindList:
		buf.WriteByte('[')
		for i, e := range v.Elems() {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, e); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case KindMap:
		buf.WriteByte('{')
		for i, p := range v.Pairs() {
			if i > 0 {
				buf.WriteByte(',')
			}
			if p.Key.Kind() != KindText {
				return fmt.Errorf("value: JSON object key must be text, got %s", p.Key.Kind())
			}
			key, err := json.Marshal(p.Key.Text())
			if err != nil {
				return err
			}
			buf.Write(key)
			buf.WriteByte(':')
			if err := writeJSON(buf, p.Value); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		return fmt.Errorf("value: unknown kind %d", v.Kind())
	}
	return nil
}
