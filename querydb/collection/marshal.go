package collection

import (
	"bytes"
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

// The containers marshal to plain JSON shapes: Dict to an object with keys in
// ascending order, List and Array to arrays. This keeps log output and golden
// fixtures deterministic.

// MarshalJSON implements json.Marshaler.
// Keys are rendered with their default formatting and emitted in ascending order.
func (d Dict[K, V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	first := true
	for key, value := range d.All() {
		if !first {
			buf.WriteByte(',')
		}
		first = false

		keyJSON, err := jsoniter.ConfigFastest.Marshal(fmt.Sprint(key))
		if err != nil {
			return nil, fmt.Errorf("marshal dict key: %w", err)
		}
		buf.Write(keyJSON)
		buf.WriteByte(':')

		valueJSON, err := jsoniter.ConfigFastest.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("marshal dict value: %w", err)
		}
		buf.Write(valueJSON)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// MarshalJSON implements json.Marshaler.
func (l List[A]) MarshalJSON() ([]byte, error) {
	return marshalItems(l.ToSlice())
}

// MarshalJSON implements json.Marshaler.
func (a Array[A]) MarshalJSON() ([]byte, error) {
	return marshalItems(a.items)
}

func marshalItems[A any](items []A) ([]byte, error) {
	if items == nil {
		items = []A{}
	}

	data, err := jsoniter.ConfigFastest.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("marshal items: %w", err)
	}

	return data, nil
}
