package schema

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/confex/pkg/errors"
	"github.com/arthur-debert/confex/pkg/generator"
	"github.com/arthur-debert/confex/pkg/logging"
	"github.com/arthur-debert/confex/pkg/node"
)

// Format is the syntax of a schema document.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

var (
	documentOptions = []string{"examples"}
	exampleOptions  = []string{"title", "nodes"}
	valueKeys       = []string{"comment", "empty", "integer", "float"}
	nodeOptions     = []string{"name", "tabs", "comments"}
	commentOptions  = []string{"top", "right"}
)

// FormatForPath picks the document format from the file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml", ".tml":
		return FormatTOML, nil
	}
	return "", errors.Newf(errors.ErrSchemaLoad, "cannot tell the format of %q from its extension", path).
		WithDetail("path", path).
		WithDetail("supported", []string{".yaml", ".yml", ".toml", ".tml"})
}

// Warning reports an option or node that was skipped while decoding.
type Warning struct {
	// Path locates the offending value, e.g. examples[0].nodes[2].tabs.
	Path    string
	Message string
}

func (w Warning) String() string {
	return w.Path + ": " + w.Message
}

// Decoder turns schema documents into generator schemas.
type Decoder struct {
	logger zerolog.Logger
}

// NewDecoder returns a Decoder logging through the "schema" component
// logger.
func NewDecoder() *Decoder {
	return &Decoder{logger: logging.GetLogger("schema")}
}

// WithLogger returns a copy of d logging warnings to logger.
func (d *Decoder) WithLogger(logger zerolog.Logger) *Decoder {
	return &Decoder{logger: logger}
}

// Load reads the document at path, picking its format from the extension.
func Load(path string) (generator.Schema, []Warning, error) {
	return NewDecoder().Load(path)
}

// Load reads the document at path, picking its format from the extension.
func (d *Decoder) Load(path string) (generator.Schema, []Warning, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, errors.ErrSchemaLoad, "failed to read schema %s", path).
			WithDetail("path", path)
	}

	d.logger.Debug().Str("path", path).Str("format", string(format)).Msg("Loading schema")
	return d.Decode(data, format)
}

// Decode parses data as a document in format.
func (d *Decoder) Decode(data []byte, format Format) (generator.Schema, []Warning, error) {
	var doc map[string]interface{}

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, nil, errors.Wrap(err, errors.ErrSchemaParse, "invalid YAML schema").
				WithDetail("format", string(format))
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, nil, errors.Wrap(err, errors.ErrSchemaParse, "invalid TOML schema").
				WithDetail("format", string(format))
		}
	default:
		return nil, nil, errors.Newf(errors.ErrSchemaLoad, "unsupported schema format %q", format).
			WithDetail("format", string(format))
	}

	st := &decodeState{logger: d.logger}
	s := st.document(doc)

	d.logger.Debug().
		Int("examples", len(s)).
		Int("warnings", len(st.warnings)).
		Msg("Schema decoded")
	return s, st.warnings, nil
}

type decodeState struct {
	logger   zerolog.Logger
	warnings []Warning
}

func (st *decodeState) warn(path, format string, args ...interface{}) {
	w := Warning{Path: path, Message: fmt.Sprintf(format, args...)}
	st.warnings = append(st.warnings, w)
	st.logger.Warn().Str("path", w.Path).Msg(w.Message)
}

func (st *decodeState) unknownOption(path, option string, options []string) {
	st.warn(path, "Unknown option '%s' used. Available options: %v", option, options)
}

func (st *decodeState) document(doc map[string]interface{}) generator.Schema {
	s := generator.Schema{}

	for _, key := range sortedKeys(doc) {
		if key != "examples" {
			st.unknownOption(key, key, documentOptions)
		}
	}

	raw, ok := doc["examples"]
	if !ok || raw == nil {
		return s
	}
	list, ok := raw.([]interface{})
	if !ok {
		st.warn("examples", "expected a list of examples, got %s", typeName(raw))
		return s
	}

	for i, item := range list {
		path := fmt.Sprintf("examples[%d]", i)
		if ex, ok := st.example(path, item); ok {
			s = append(s, ex)
		}
	}
	return s
}

func (st *decodeState) example(path string, raw interface{}) (generator.Example, bool) {
	m, ok := asMap(raw)
	if !ok {
		st.warn(path, "expected an example table, got %s", typeName(raw))
		return generator.Example{}, false
	}

	ex := generator.NewExample()
	for _, key := range sortedKeys(m) {
		val := m[key]
		switch key {
		case "title":
			title, ok := val.(string)
			if !ok {
				st.warn(path+".title", "expected a string, got %s", typeName(val))
				continue
			}
			ex = ex.WithTitle(title)
		case "nodes":
		default:
			st.unknownOption(path+"."+key, key, exampleOptions)
		}
	}

	raw, ok = m["nodes"]
	if !ok || raw == nil {
		return ex, true
	}
	list, ok := raw.([]interface{})
	if !ok {
		st.warn(path+".nodes", "expected a list of nodes, got %s", typeName(raw))
		return ex, true
	}

	for i, item := range list {
		if n, ok := st.node(fmt.Sprintf("%s.nodes[%d]", path, i), item); ok {
			ex = ex.Add(n)
		}
	}
	return ex, true
}

func (st *decodeState) node(path string, raw interface{}) (node.Node, bool) {
	m, ok := asMap(raw)
	if !ok {
		st.warn(path, "expected a node table, got %s", typeName(raw))
		return node.Node{}, false
	}

	var found []string
	for _, key := range valueKeys {
		if _, ok := m[key]; ok {
			found = append(found, key)
		}
	}
	switch len(found) {
	case 0:
		st.warn(path, "node has no value, expected one of %v", valueKeys)
		return node.Node{}, false
	case 1:
	default:
		st.warn(path, "node has several values %v, expected exactly one", found)
		return node.Node{}, false
	}

	valueKey := found[0]
	value, ok := st.value(path+"."+valueKey, valueKey, m[valueKey])
	if !ok {
		return node.Node{}, false
	}

	var opts []Option
	for _, key := range sortedKeys(m) {
		if key == valueKey {
			continue
		}
		val := m[key]
		optPath := path + "." + key

		switch key {
		case "name":
			name, ok := val.(string)
			if !ok {
				st.warn(optPath, "expected a string, got %s", typeName(val))
				continue
			}
			num, isNumber := value.(node.Number)
			if !isNumber {
				st.warn(optPath, "only integer and float values take a name")
				continue
			}
			value = num.Named(name)
		case "tabs":
			tabs, ok := asInt(val)
			if !ok || tabs < 0 || tabs > math.MaxInt32 {
				st.warn(optPath, "expected a non-negative integer, got %v", val)
				continue
			}
			opts = append(opts, Tabs(int(tabs)))
		case "comments":
			opts = append(opts, st.comments(optPath, val)...)
		default:
			st.unknownOption(optPath, key, nodeOptions)
		}
	}

	return Node(value, opts...), true
}

func (st *decodeState) value(path, key string, raw interface{}) (node.Value, bool) {
	switch key {
	case "comment":
		lines, ok := asLines(raw)
		if !ok {
			st.warn(path, "expected a string or a list of strings, got %s", typeName(raw))
			return nil, false
		}
		return node.NewComment(lines...).Value, true

	case "empty":
		if b, ok := raw.(bool); ok {
			if !b {
				st.warn(path, "empty: false renders nothing")
				return nil, false
			}
			return node.Blank{}, true
		}
		count, ok := asInt(raw)
		if !ok || count < 0 || count > math.MaxInt32 {
			st.warn(path, "expected true or a non-negative line count, got %v", raw)
			return nil, false
		}
		if count == 1 {
			return node.Blank{}, true
		}
		return node.BlankRun{Count: int(count)}, true

	case "integer":
		i, ok := asInt(raw)
		if !ok {
			st.warn(path, "expected an integer, got %s", typeName(raw))
			return nil, false
		}
		return node.IntegerValue(i), true

	case "float":
		f, ok := asFloat(raw)
		if !ok {
			st.warn(path, "expected a number, got %s", typeName(raw))
			return nil, false
		}
		return node.FloatValue(f), true
	}
	return nil, false
}

func (st *decodeState) comments(path string, raw interface{}) []Option {
	m, ok := asMap(raw)
	if !ok {
		st.warn(path, "expected a table with %v, got %s", commentOptions, typeName(raw))
		return nil
	}
	if len(m) == 0 {
		st.warn(path, "Please provide at least one of the options: %v", commentOptions)
		return nil
	}

	var opts []Option
	for _, key := range sortedKeys(m) {
		val := m[key]
		optPath := path + "." + key

		switch key {
		case "top", "right":
			lines, ok := asLines(val)
			if !ok {
				st.warn(optPath, "expected a string or a list of strings, got %s", typeName(val))
				continue
			}
			if key == "top" {
				opts = append(opts, Top(lines...))
			} else {
				opts = append(opts, Right(lines...))
			}
		default:
			st.unknownOption(optPath, key, commentOptions)
		}
	}
	return opts
}

func asMap(v interface{}) (map[string]interface{}, bool) {
	m, ok := v.(map[string]interface{})
	return m, ok
}

// asInt accepts the integer types yaml.v3 and go-toml produce.
func asInt(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	}
	return 0, false
}

func asFloat(v interface{}) (float64, bool) {
	if f, ok := v.(float64); ok {
		return f, true
	}
	if i, ok := asInt(v); ok {
		return float64(i), true
	}
	return 0, false
}

func asLines(v interface{}) ([]string, bool) {
	switch val := v.(type) {
	case string:
		return []string{val}, true
	case []interface{}:
		lines := make([]string, 0, len(val))
		for _, item := range val {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			lines = append(lines, s)
		}
		return lines, true
	}
	return nil, false
}

func typeName(v interface{}) string {
	switch v.(type) {
	case nil:
		return "nothing"
	case string:
		return "a string"
	case bool:
		return "a boolean"
	case int, int64, uint64:
		return "an integer"
	case float64:
		return "a float"
	case []interface{}:
		return "a list"
	case map[string]interface{}:
		return "a table"
	}
	return fmt.Sprintf("%T", v)
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
