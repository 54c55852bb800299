package formatter

import (
	"sort"
	"strings"

	"github.com/arthur-debert/confex/pkg/errors"
	"github.com/arthur-debert/confex/pkg/registry"
)

var (
	dialects = registry.New[Dialect]()
	aliases  = map[string]string{
		"tml": "toml",
		"yml": "yaml",
		"cfg": "ini",
	}
)

func init() {
	for _, d := range []Dialect{TOML{}, YAML{}, INI{}, XML{}} {
		registry.MustRegister(dialects, d.Name(), d)
	}
}

// Register adds a dialect under its Name.
func Register(d Dialect) error {
	if d == nil {
		return errors.New(errors.ErrInvalidInput, "dialect cannot be nil")
	}
	return dialects.Register(strings.ToLower(d.Name()), d)
}

// Unregister removes a dialect added with Register.
func Unregister(name string) error {
	return dialects.Remove(strings.ToLower(name))
}

// Lookup finds a dialect by name or alias, ignoring case.
func Lookup(name string) (Dialect, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := aliases[key]; ok {
		key = canonical
	}

	d, err := dialects.Get(key)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrUnknownDialect, "unknown dialect %q", name).
			WithDetail("available", Names())
	}
	return d, nil
}

// Names lists the registered dialect names, sorted.
func Names() []string {
	return dialects.List()
}

// Aliases returns the aliases that resolve to name.
func Aliases(name string) []string {
	var out []string
	for alias, canonical := range aliases {
		if canonical == name {
			out = append(out, alias)
		}
	}
	sort.Strings(out)
	return out
}
