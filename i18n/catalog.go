package i18n

import (
	"errors"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// Catalog holds message templates per language, keyed by machine code.
// Catalogs are immutable after construction.
type Catalog struct {
	messages map[string]map[string]string
}

// ParseYAML parses a YAML document whose top-level keys are language codes
// and whose values map machine codes to message templates. Nested maps are
// flattened into dotted codes, so "validation: {required: ...}" and
// "validation.required: ..." are equivalent.
func ParseYAML(content []byte) (*Catalog, error) {
	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}

	messages := make(map[string]map[string]string, len(data))
	for lang, val := range data {
		if lang == "" {
			return nil, fmt.Errorf("%w: empty language code", ErrInvalidLanguage)
		}
		langMap, ok := val.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: expected map for language %q, got %T", ErrFailedToParseYAML, lang, val)
		}
		flat := make(map[string]string)
		flatten("", langMap, flat)
		messages[lang] = flat
	}

	if len(messages) == 0 {
		return nil, ErrEmptyCatalog
	}

	return &Catalog{messages: messages}, nil
}

// NewCatalog builds a catalog from already-flattened messages: language code
// to machine code to template.
func NewCatalog(messages map[string]map[string]string) (*Catalog, error) {
	if len(messages) == 0 {
		return nil, ErrEmptyCatalog
	}
	copied := make(map[string]map[string]string, len(messages))
	for lang, m := range messages {
		if lang == "" {
			return nil, fmt.Errorf("%w: empty language code", ErrInvalidLanguage)
		}
		inner := make(map[string]string, len(m))
		for code, msg := range m {
			inner[code] = msg
		}
		copied[lang] = inner
	}
	return &Catalog{messages: copied}, nil
}

// Languages returns the language codes present in the catalog, sorted.
func (c *Catalog) Languages() []string {
	langs := make([]string, 0, len(c.messages))
	for lang := range c.messages {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// Lookup returns the template for a code in a language, and whether it exists.
func (c *Catalog) Lookup(lang, code string) (string, bool) {
	m, ok := c.messages[lang]
	if !ok {
		return "", false
	}
	msg, ok := m[code]
	return msg, ok
}

// flatten collapses nested maps into dotted keys. Non-string leaves are
// rendered with fmt to tolerate YAML scalars like numbers.
func flatten(prefix string, m map[string]any, out map[string]string) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case map[string]any:
			flatten(key, val, out)
		case string:
			out[key] = val
		default:
			out[key] = fmt.Sprintf("%v", val)
		}
	}
}
