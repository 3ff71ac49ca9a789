package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"station-generator/internal/diagnostic"
	"station-generator/internal/match"
	"station-generator/internal/registry"
	"station-generator/internal/schema"
)

// Block is one configuration unit: a component block or one entry of a
// platform list.
type Block struct {
	// Domain is the top-level key, e.g. "misol" or "text_sensor".
	Domain string
	// Platform is the platform name for list entries, "" for components.
	Platform string
	// Raw is the YAML-decoded block content, without the platform tag.
	Raw map[string]any

	handler registry.Component
	conf    schema.Config
}

// Label names the block in diagnostics and task names.
func (b *Block) Label() string {
	if b.Platform == "" {
		return b.Domain
	}

	return b.Domain + "." + b.Platform
}

// Document is a parsed configuration document with top-level order preserved.
type Document struct {
	entries []entry

	blocks []*Block
}

type entry struct {
	key  string
	node *yaml.Node
}

// LoadFile loads and parses a YAML configuration document from the given path.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Document. Structural and schema problems are
// reported by Validate, not here; Parse only fails on malformed YAML.
func Parse(data []byte) (*Document, error) {
	var root yaml.Node

	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse configuration YAML: %w", err)
	}

	doc := &Document{}

	if len(root.Content) == 0 {
		// Empty document; nothing configured.
		return doc, nil
	}

	top := root.Content[0]
	if top.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("configuration must be a mapping, got %v", top.Kind)
	}

	for i := 0; i+1 < len(top.Content); i += 2 {
		doc.entries = append(doc.entries, entry{
			key:  top.Content[i].Value,
			node: top.Content[i+1],
		})
	}

	return doc, nil
}

// Validate resolves every top-level block against the registry and its
// schema. It aggregates diagnostics across the whole document; Build must
// not be called when the result has errors.
func (d *Document) Validate() *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	d.blocks = nil

	for _, e := range d.entries {
		switch {
		case registry.IsPlatformDomain(e.key):
			d.validatePlatformList(e, res)
		default:
			d.validateComponent(e, res)
		}
	}

	return res
}

func (d *Document) validateComponent(e entry, res *diagnostic.Diagnostics) {
	comp, ok := registry.LookupComponent(e.key)
	if !ok {
		var suggestions []string
		if c := match.Closest(e.key, registry.Domains()); c != "" {
			suggestions = append(suggestions, c)
		}

		res.AddErrorWithSuggestions("unknown_component",
			fmt.Sprintf("unknown component %q", e.key), e.key, "", suggestions)

		return
	}

	var raw map[string]any
	if err := e.node.Decode(&raw); err != nil {
		res.AddError("wrong_type",
			fmt.Sprintf("component %q expects a block: %v", e.key, err), e.key, "")

		return
	}

	conf, diags := comp.Schema().Validate(raw)
	diags.SetComponent(e.key)
	res.Merge(*diags)

	d.blocks = append(d.blocks, &Block{
		Domain:  e.key,
		Raw:     raw,
		handler: comp,
		conf:    conf,
	})
}

func (d *Document) validatePlatformList(e entry, res *diagnostic.Diagnostics) {
	var items []map[string]any
	if err := e.node.Decode(&items); err != nil {
		res.AddError("wrong_type",
			fmt.Sprintf("%q expects a list of platform blocks: %v", e.key, err), e.key, "")

		return
	}

	for _, raw := range items {
		name, _ := raw["platform"].(string)
		if name == "" {
			res.AddError("missing_option",
				"platform block without a \"platform\" tag", e.key, "platform")

			continue
		}

		p, ok := registry.LookupPlatform(e.key, name)
		if !ok {
			var suggestions []string
			if c := match.Closest(name, registry.Platforms(e.key)); c != "" {
				suggestions = append(suggestions, c)
			}

			res.AddErrorWithSuggestions("unknown_platform",
				fmt.Sprintf("unknown platform %q", name), e.key, "platform", suggestions)

			continue
		}

		// The platform tag is routing, not an option.
		opts := make(map[string]any, len(raw)-1)
		for k, v := range raw {
			if k != "platform" {
				opts[k] = v
			}
		}

		b := &Block{
			Domain:   e.key,
			Platform: name,
			Raw:      opts,
			handler:  p,
		}

		conf, diags := p.Schema().Validate(opts)
		diags.SetComponent(b.Label())
		res.Merge(*diags)

		b.conf = conf
		d.blocks = append(d.blocks, b)
	}
}
