package model

import (
	"bytes"
	"encoding/json"

	"github.com/rotisserie/eris"
)

// Attribute is one named scalar attribute of a QueryResult. Attributes keep
// the key order of the source document so display listings are stable.
type Attribute struct {
	Key   string
	Value any
}

// QueryResult is a single row returned by the query service: a numeric id, a
// geometry, and an open-ended ordered set of extra attributes. Results are
// immutable once decoded.
type QueryResult struct {
	ID         int64
	Geometry   Geometry
	Attributes []Attribute
}

// Attr returns the value of the named attribute and whether it was present.
func (r QueryResult) Attr(key string) (any, bool) {
	for _, a := range r.Attributes {
		if a.Key == key {
			return a.Value, true
		}
	}
	return nil, false
}

// UnmarshalJSON decodes a result object, routing "geojson" to Geometry and
// "id" to ID while preserving the source order of every other key. The id is
// also kept in Attributes so attribute listings match the wire document.
func (r *QueryResult) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return eris.Wrap(err, "model: decode result")
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return eris.New("model: result is not an object")
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return eris.Wrap(err, "model: decode result key")
		}
		key := keyTok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return eris.Wrapf(err, "model: decode result value %q", key)
		}

		switch key {
		case "geojson":
			if err := json.Unmarshal(raw, &r.Geometry); err != nil {
				return eris.Wrap(err, "model: decode result geometry")
			}
			continue
		case "id":
			var id json.Number
			if err := json.Unmarshal(raw, &id); err != nil {
				return eris.Wrap(err, "model: decode result id")
			}
			n, err := id.Int64()
			if err != nil {
				return eris.Wrap(err, "model: result id is not an integer")
			}
			r.ID = n
		}

		var value any
		vdec := json.NewDecoder(bytes.NewReader(raw))
		vdec.UseNumber()
		if err := vdec.Decode(&value); err != nil {
			return eris.Wrapf(err, "model: decode result attribute %q", key)
		}
		r.Attributes = append(r.Attributes, Attribute{Key: key, Value: value})
	}

	return nil
}

// MarshalJSON re-emits the result with attributes in their original order and
// the geometry under its wire key.
func (r QueryResult) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	first := true
	write := func(key string, value []byte) {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		k, _ := json.Marshal(key)
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(value)
	}

	for _, a := range r.Attributes {
		v, err := json.Marshal(a.Value)
		if err != nil {
			return nil, eris.Wrapf(err, "model: encode result attribute %q", a.Key)
		}
		write(a.Key, v)
	}

	g, err := json.Marshal(r.Geometry)
	if err != nil {
		return nil, eris.Wrap(err, "model: encode result geometry")
	}
	write("geojson", g)

	buf.WriteByte('}')
	return buf.Bytes(), nil
}
