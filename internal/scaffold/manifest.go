package scaffold

import (
	"bytes"
	"encoding/json"
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

type rawObject = orderedmap.OrderedMap[string, json.RawMessage]

// manifest is a package.json document whose key order survives a rewrite.
type manifest struct {
	doc *rawObject
}

func parseManifest(data []byte) (*manifest, error) {
	doc := orderedmap.New[string, json.RawMessage]()
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("parsing package.json: %w", err)
	}
	return &manifest{doc: doc}, nil
}

func (m *manifest) setString(key, value string) error {
	raw, err := encodeString(value)
	if err != nil {
		return err
	}
	m.doc.Set(key, raw)
	return nil
}

// addDependency sets name@version in section, creating the section when
// absent. Existing entries keep their position.
func (m *manifest) addDependency(section, name, version string) error {
	deps := orderedmap.New[string, json.RawMessage]()
	if raw, ok := m.doc.Get(section); ok {
		if err := json.Unmarshal(raw, deps); err != nil {
			return fmt.Errorf("parsing %s: %w", section, err)
		}
	}
	v, err := encodeString(version)
	if err != nil {
		return err
	}
	deps.Set(name, v)

	encoded, err := encodeObject(deps)
	if err != nil {
		return err
	}
	m.doc.Set(section, encoded)
	return nil
}

// bytes renders the manifest with two-space indentation and a trailing newline.
func (m *manifest) bytes() ([]byte, error) {
	compact, err := encodeObject(m.doc)
	if err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, compact, "", "  "); err != nil {
		return nil, fmt.Errorf("formatting package.json: %w", err)
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

// encodeObject writes the pairs in insertion order. Values are emitted as
// stored so existing entries are not re-escaped.
func encodeObject(obj *rawObject) (json.RawMessage, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for pair := obj.Oldest(); pair != nil; pair = pair.Next() {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		key, err := encodeString(pair.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(pair.Value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func encodeString(s string) (json.RawMessage, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, fmt.Errorf("encoding %q: %w", s, err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
