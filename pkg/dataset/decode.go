package dataset

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/ajxudir/creatordash/pkg/creators"
	"github.com/ajxudir/creatordash/pkg/warnings"
	"github.com/iancoleman/orderedmap"
	"gopkg.in/yaml.v3"
)

// recordFields are the keys a record may carry.
var recordFields = map[string]bool{
	"id":        true,
	"name":      true,
	"followers": true,
	"revenue":   true,
	"active":    true,
	"createdAt": true,
}

// envelopeKey wraps the record list in object-shaped documents.
const envelopeKey = "creators"

func warnUnknownFields(source string, index int, keys []string) {
	for _, key := range keys {
		if !recordFields[key] {
			warnings.Warnf("%s: record %d: unknown field %q ignored", source, index, key)
		}
	}
}

// decodeJSON accepts a record array or {"creators": [...]}.
func decodeJSON(data []byte, source string) ([]creators.Creator, error) {
	raw, err := jsonRecords(data)
	if err != nil {
		return nil, err
	}

	records := make([]creators.Creator, 0, len(raw))
	for i, msg := range raw {
		fields := orderedmap.New()
		if err := json.Unmarshal(msg, fields); err != nil {
			return nil, fmt.Errorf("invalid JSON: record %d: %w", i, err)
		}
		warnUnknownFields(source, i, fields.Keys())

		c, err := decodeKnownFields(msg)
		if err != nil {
			return nil, fmt.Errorf("invalid JSON: record %d: %w", i, err)
		}
		records = append(records, c)
	}
	return records, nil
}

// decodeKnownFields decodes only the keys in recordFields. encoding/json
// matches struct fields case-insensitively, so "Followers" would otherwise be
// applied even though it was reported as ignored.
func decodeKnownFields(msg json.RawMessage) (creators.Creator, error) {
	var c creators.Creator

	var values map[string]json.RawMessage
	if err := json.Unmarshal(msg, &values); err != nil {
		return c, err
	}
	for key := range values {
		if !recordFields[key] {
			delete(values, key)
		}
	}

	known, err := json.Marshal(values)
	if err != nil {
		return c, err
	}
	err = json.Unmarshal(known, &c)
	return c, err
}

func jsonRecords(data []byte) ([]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("invalid JSON: empty document")
	}

	var raw []json.RawMessage
	if trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			return nil, fmt.Errorf("invalid JSON: %w", err)
		}
		return raw, nil
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	list, ok := envelope[envelopeKey]
	if !ok {
		return nil, fmt.Errorf("invalid JSON: expected an array or an object with a %q key", envelopeKey)
	}
	if err := json.Unmarshal(list, &raw); err != nil {
		return nil, fmt.Errorf("invalid JSON: %s: %w", envelopeKey, err)
	}
	return raw, nil
}

// decodeYAML accepts the same shapes as decodeJSON. Mapping keys are read
// from the node tree so unknown fields are reported in document order.
func decodeYAML(data []byte, source string) ([]creators.Creator, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	if len(doc.Content) == 0 {
		return nil, fmt.Errorf("invalid YAML: empty document")
	}

	list := doc.Content[0]
	if list.Kind == yaml.MappingNode {
		list = mappingValue(list, envelopeKey)
		if list == nil {
			return nil, fmt.Errorf("invalid YAML: expected a sequence or a mapping with a %q key", envelopeKey)
		}
	}
	if list.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("invalid YAML: line %d: expected a sequence of records", list.Line)
	}

	records := make([]creators.Creator, 0, len(list.Content))
	for i, item := range list.Content {
		if item.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("invalid YAML: record %d (line %d): expected a mapping", i, item.Line)
		}
		warnUnknownFields(source, i, mappingKeys(item))

		var c creators.Creator
		if err := item.Decode(&c); err != nil {
			return nil, fmt.Errorf("invalid YAML: record %d: %w", i, err)
		}
		records = append(records, c)
	}
	return records, nil
}

func mappingKeys(node *yaml.Node) []string {
	keys := make([]string, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		keys = append(keys, node.Content[i].Value)
	}
	return keys
}

func mappingValue(node *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}
