package handler

import (
	"bytes"
	"encoding/json"
)

var emptyObject = []byte("{}")

// normalizePayload turns an inbound body into the JSON document sent upstream.
// A JSON string is treated as serialized JSON and parsed. An empty body, or a
// top-level null, false or 0, becomes {}. Anything else is passed through
// with insignificant whitespace removed.
func normalizePayload(raw []byte) ([]byte, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return emptyObject, nil
	}

	if raw[0] == '"' {
		var text string
		if err := json.Unmarshal(raw, &text); err != nil {
			return nil, err
		}
		if text == "" {
			return emptyObject, nil
		}
		return compact([]byte(text))
	}

	out, err := compact(raw)
	if err != nil {
		return nil, err
	}
	if isFalsy(out) {
		return emptyObject, nil
	}
	return out, nil
}

func compact(doc []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := json.Compact(&buf, doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func isFalsy(doc []byte) bool {
	switch doc[0] {
	case '{', '[', '"', 't':
		return false
	}
	var v any
	if err := json.Unmarshal(doc, &v); err != nil {
		return false
	}
	switch v := v.(type) {
	case nil:
		return true
	case bool:
		return !v
	case float64:
		return v == 0
	}
	return false
}
