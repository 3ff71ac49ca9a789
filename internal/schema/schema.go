package schema

import (
	"fmt"
	"sort"

	"station-generator/internal/diagnostic"
	"station-generator/internal/match"
)

// Config is a validated, normalized configuration block.
type Config map[string]any

// GetString returns the string value of an option, or "" if absent.
func (c Config) GetString(name string) string {
	v, _ := c[name].(string)
	return v
}

// GetInt returns the int value of an option and whether it was set.
func (c Config) GetInt(name string) (int, bool) {
	v, ok := c[name].(int)
	return v, ok
}

// GetFloat returns the float value of an option and whether it was set.
func (c Config) GetFloat(name string) (float64, bool) {
	v, ok := c[name].(float64)
	return v, ok
}

// GetBool returns the bool value of an option and whether it was set.
func (c Config) GetBool(name string) (bool, bool) {
	v, ok := c[name].(bool)
	return v, ok
}

// GetBlock returns a nested block, or nil if absent.
func (c Config) GetBlock(name string) Config {
	v, _ := c[name].(Config)
	return v
}

// Validator checks and normalizes a single option value.
type Validator func(v any) (any, error)

// Field declares one option of a schema.
type Field struct {
	Name     string
	Required bool
	Default  any
	Check    Validator
	block    *Schema
}

// Required declares a mandatory option.
func Required(name string, check Validator) Field {
	return Field{Name: name, Required: true, Check: check}
}

// Optional declares an option that may be absent.
func Optional(name string, check Validator) Field {
	return Field{Name: name, Check: check}
}

// OptionalDefault declares an optional option with a default applied when absent.
func OptionalDefault(name string, def any, check Validator) Field {
	return Field{Name: name, Default: def, Check: check}
}

// OptionalBlock declares an optional nested block validated by its own schema.
func OptionalBlock(name string, s *Schema) Field {
	return Field{Name: name, block: s}
}

// Schema is an ordered set of option declarations.
type Schema struct {
	fields []Field
}

// New builds a schema from field declarations.
// It panics on duplicate option names to catch mistakes at start-up.
func New(fields ...Field) *Schema {
	s := &Schema{}
	return s.Extend(fields...)
}

// Extend returns a copy of the schema with additional fields.
// The receiver is not modified, so shared base schemas stay reusable.
func (s *Schema) Extend(fields ...Field) *Schema {
	out := &Schema{fields: append([]Field(nil), s.fields...)}

	seen := map[string]struct{}{}
	for _, f := range out.fields {
		seen[f.Name] = struct{}{}
	}

	for _, f := range fields {
		if f.Name == "" {
			panic("schema: empty option name")
		}

		if _, dup := seen[f.Name]; dup {
			panic(fmt.Sprintf("schema: duplicate option %q", f.Name))
		}

		seen[f.Name] = struct{}{}
		out.fields = append(out.fields, f)
	}

	return out
}

// Keys returns the declared option names in declaration order.
func (s *Schema) Keys() []string {
	keys := make([]string, 0, len(s.fields))
	for _, f := range s.fields {
		keys = append(keys, f.Name)
	}

	return keys
}

// Validate checks a raw YAML-decoded map against the schema and returns the
// normalized configuration. It never generates code; callers must check
// diagnostics before acting on the result.
func (s *Schema) Validate(raw map[string]any) (Config, *diagnostic.Diagnostics) {
	res := &diagnostic.Diagnostics{}
	conf := s.validateAt("", raw, res)

	return conf, res
}

func (s *Schema) validateAt(prefix string, raw map[string]any, res *diagnostic.Diagnostics) Config {
	known := s.Keys()
	conf := Config{}

	// Unknown options first, in stable order.
	var extra []string

	for k := range raw {
		if !s.declares(k) {
			extra = append(extra, k)
		}
	}

	sort.Strings(extra)

	for _, k := range extra {
		var suggestions []string
		if c := match.Closest(k, known); c != "" {
			suggestions = append(suggestions, c)
		}

		res.AddErrorWithSuggestions("unknown_option",
			fmt.Sprintf("unknown option %q", k), "", joinPath(prefix, k), suggestions)
	}

	for _, f := range s.fields {
		path := joinPath(prefix, f.Name)

		v, present := raw[f.Name]
		if !present {
			switch {
			case f.Required:
				res.AddError("missing_option",
					fmt.Sprintf("required option %q is missing", f.Name), "", path)
			case f.Default != nil:
				conf[f.Name] = f.Default
			}

			continue
		}

		if f.block != nil {
			m, ok := v.(map[string]any)
			if !ok {
				res.AddError("wrong_type",
					fmt.Sprintf("expected a block for %q, got %T", f.Name, v), "", path)

				continue
			}

			conf[f.Name] = f.block.validateAt(path, m, res)

			continue
		}

		nv, err := f.Check(v)
		if err != nil {
			res.AddError(errorCode(err), err.Error(), "", path)
			continue
		}

		conf[f.Name] = nv
	}

	return conf
}

func (s *Schema) declares(name string) bool {
	for _, f := range s.fields {
		if f.Name == name {
			return true
		}
	}

	return false
}

func joinPath(prefix, name string) string {
	if prefix == "" {
		return name
	}

	return prefix + "." + name
}
