package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"unicode/utf16"
	"unicode/utf8"
)

var (
	// ErrTrailingData is returned by [ParseValue] when the input holds more
	// than one JSON document.
	ErrTrailingData = errors.New("unexpected data after top-level value")

	// ErrInvalidEncoding is returned by [ParseValue] when the input is not
	// strict UTF-8: invalid byte sequences, a leading byte order mark, or a
	// \u escape naming an unpaired surrogate.
	ErrInvalidEncoding = errors.New("input is not valid UTF-8")
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ParseValue decodes exactly one JSON document from data.
//
// The input must be strict UTF-8. encoding/json would otherwise replace bad
// bytes and unpaired surrogate escapes with U+FFFD, so a re-serialized
// document would silently differ from its source.
func ParseValue(data []byte) (Value, error) {
	if err := checkEncoding(data); err != nil {
		return Value{}, err
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := decodeValue(dec)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Value{}, io.ErrUnexpectedEOF
		}
		return Value{}, err
	}

	if _, err = dec.Token(); !errors.Is(err, io.EOF) {
		if err != nil {
			return Value{}, err
		}
		return Value{}, fmt.Errorf("%w at offset %d", ErrTrailingData, dec.InputOffset())
	}

	return v, nil
}

func checkEncoding(data []byte) error {
	if bytes.HasPrefix(data, utf8BOM) {
		return fmt.Errorf("%w: unexpected byte order mark", ErrInvalidEncoding)
	}

	if !utf8.Valid(data) {
		return fmt.Errorf("%w: invalid byte sequence at offset %d", ErrInvalidEncoding, invalidUTF8Offset(data))
	}

	return checkSurrogateEscapes(data)
}

func invalidUTF8Offset(data []byte) int {
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}

// checkSurrogateEscapes rejects \u escapes that encode half of a surrogate
// pair without its other half. Backslashes only appear inside strings in
// well-formed JSON; anything else is left to the decoder.
func checkSurrogateEscapes(data []byte) error {
	for i := 0; i < len(data); i++ {
		if data[i] != '\\' {
			continue
		}
		if i+1 >= len(data) || data[i+1] != 'u' {
			// skip the escaped character, so "\\u" is not an escape
			i++
			continue
		}

		r, ok := hexEscape(data, i)
		if !ok {
			return nil
		}

		switch {
		case utf16.IsSurrogate(r) && r < 0xDC00:
			low, ok := hexEscape(data, i+6)
			if !ok || low < 0xDC00 || low > 0xDFFF {
				return fmt.Errorf("%w: unpaired surrogate escape at offset %d", ErrInvalidEncoding, i)
			}
			i += 11
		case utf16.IsSurrogate(r):
			return fmt.Errorf("%w: unpaired surrogate escape at offset %d", ErrInvalidEncoding, i)
		default:
			i += 5
		}
	}
	return nil
}

// hexEscape decodes the \uXXXX escape starting at data[i].
func hexEscape(data []byte, i int) (rune, bool) {
	if i+6 > len(data) || data[i] != '\\' || data[i+1] != 'u' {
		return 0, false
	}
	n, err := strconv.ParseUint(string(data[i+2:i+6]), 16, 32)
	if err != nil {
		return 0, false
	}
	return rune(n), true
}

func decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, err
	}

	switch t := tok.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(t), nil
	case json.Number:
		return Number(t), nil
	case string:
		return String(t), nil
	case json.Delim:
		switch t {
		case '[':
			return decodeArray(dec)
		case '{':
			return decodeObject(dec)
		}
	}

	return Value{}, fmt.Errorf("unexpected token %v at offset %d", tok, dec.InputOffset())
}

func decodeArray(dec *json.Decoder) (Value, error) {
	items := make([]Value, 0)
	for dec.More() {
		item, err := decodeValue(dec)
		if err != nil {
			return Value{}, err
		}
		items = append(items, item)
	}

	// closing ']'
	if _, err := dec.Token(); err != nil {
		return Value{}, err
	}
	return Array(items...), nil
}

func decodeObject(dec *json.Decoder) (Value, error) {
	obj := Object()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return Value{}, err
		}
		key, ok := tok.(string)
		if !ok {
			return Value{}, fmt.Errorf("unexpected object key %v at offset %d", tok, dec.InputOffset())
		}

		val, err := decodeValue(dec)
		if err != nil {
			return Value{}, err
		}
		obj.Set(key, val)
	}

	// closing '}'
	if _, err := dec.Token(); err != nil {
		return Value{}, err
	}
	return obj, nil
}

// MarshalJSON implements [json.Marshaler]. The output is compact, keeps
// object members in document order and does not escape HTML characters.
func (v Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := v.encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (v Value) encode(buf *bytes.Buffer) error {
	switch v.kind {
	case KindNull:
		buf.WriteString("null")
	case KindBool:
		if v.boolean {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case KindNumber:
		buf.WriteString(v.text)
	case KindString:
		return encodeString(buf, v.text)
	case KindArray:
		buf.WriteByte('[')
		for i, item := range v.items {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := item.encode(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case KindObject:
		buf.WriteByte('{')
		for i, m := range v.members {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := encodeString(buf, m.Key); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := m.Value.encode(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		return fmt.Errorf("cannot encode value of kind %d", v.kind)
	}
	return nil
}

func encodeString(buf *bytes.Buffer, s string) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	// Encode terminates every document with a newline
	buf.Write(bytes.TrimSuffix(tmp.Bytes(), []byte{'\n'}))
	return nil
}
