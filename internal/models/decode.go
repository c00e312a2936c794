package models

import (
	"bytes"
	"errors"
	"io"
	"reflect"
	"strings"

	"gopkg.in/yaml.v3"
)

var numberType = reflect.TypeOf(Number(""))

// DecodeYAML decodes a YAML document from r into v, which must be a pointer
// to a struct. Unknown keys are rejected. A null Number field is cleared the
// way a JSON null is, instead of keeping the value v already held. Empty
// input leaves v unchanged.
func DecodeYAML(r io.Reader, v interface{}) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return err
	}
	if doc.Kind == 0 {
		return nil
	}

	target := reflect.TypeOf(v).Elem()

	// Node.Decode has no strict mode, so unknown keys are checked against a
	// scratch value first
	strict := yaml.NewDecoder(bytes.NewReader(data))
	strict.KnownFields(true)
	if err := strict.Decode(reflect.New(target).Interface()); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	clearNullNumbers(&doc, target)
	return doc.Decode(v)
}

// clearNullNumbers rewrites null scalars that land on Number fields as empty
// strings. yaml.v3 skips unmarshalers for null nodes and leaves string kinds
// untouched.
func clearNullNumbers(n *yaml.Node, t reflect.Type) {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	switch n.Kind {
	case yaml.DocumentNode:
		for _, c := range n.Content {
			clearNullNumbers(c, t)
		}
	case yaml.SequenceNode:
		if t.Kind() != reflect.Slice {
			return
		}
		for _, c := range n.Content {
			clearNullNumbers(c, t.Elem())
		}
	case yaml.MappingNode:
		if t.Kind() != reflect.Struct {
			return
		}
		for i := 0; i+1 < len(n.Content); i += 2 {
			field, ok := fieldByYAMLName(t, n.Content[i].Value)
			if !ok {
				continue
			}
			value := n.Content[i+1]
			if field.Type == numberType && value.Kind == yaml.ScalarNode && value.ShortTag() == "!!null" {
				value.Tag = "!!str"
				value.Value = ""
				value.Style = yaml.DoubleQuotedStyle
				continue
			}
			clearNullNumbers(value, field.Type)
		}
	}
}

func fieldByYAMLName(t reflect.Type, key string) (reflect.StructField, bool) {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "" {
			name = strings.ToLower(f.Name)
		}
		if name == key {
			return f, true
		}
	}
	return reflect.StructField{}, false
}
