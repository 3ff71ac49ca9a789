// Package registry holds the component and platform tables. Integration
// packages install themselves from init(), and the document layer looks
// them up by their configuration domain.
package registry

import (
	"fmt"
	"sort"

	"station-generator/internal/gen"
	"station-generator/internal/schema"
)

// Component handles one top-level configuration domain (e.g. "misol").
type Component interface {
	// Schema declares the options the component accepts.
	Schema() *schema.Schema
	// Priority orders the component's generation task.
	Priority() gen.SetupPriority
	// ToCode emits the setup statements for a validated configuration.
	ToCode(tc *gen.TaskContext, conf schema.Config) error
}

// Platform handles one entry of a list-valued domain
// (e.g. platform "misol" under "text_sensor").
type Platform = Component

var (
	components = map[string]Component{}
	platforms  = map[string]map[string]Platform{}
)

// RegisterComponent installs a component for a configuration domain.
// It panics on duplicate registration to catch mistakes at start-up.
func RegisterComponent(domain string, c Component) {
	if domain == "" {
		panic("registry: empty component domain")
	}

	if _, exists := components[domain]; exists {
		panic(fmt.Sprintf("registry: component already registered for domain %q", domain))
	}

	components[domain] = c
}

// RegisterPlatform installs a platform under a list-valued domain.
func RegisterPlatform(domain, platform string, p Platform) {
	if domain == "" || platform == "" {
		panic("registry: empty platform domain or name")
	}

	if _, exists := platforms[domain][platform]; exists {
		panic(fmt.Sprintf("registry: platform %q already registered under %q", platform, domain))
	}

	if platforms[domain] == nil {
		platforms[domain] = map[string]Platform{}
	}

	platforms[domain][platform] = p
}

// LookupComponent returns the component registered for a domain.
func LookupComponent(domain string) (Component, bool) {
	c, ok := components[domain]
	return c, ok
}

// LookupPlatform returns the platform registered under a list-valued domain.
func LookupPlatform(domain, platform string) (Platform, bool) {
	p, ok := platforms[domain][platform]
	return p, ok
}

// IsPlatformDomain reports whether a domain takes a list of platform blocks.
func IsPlatformDomain(domain string) bool {
	_, ok := platforms[domain]
	return ok
}

// Domains returns all known domain names, sorted, for suggestions.
func Domains() []string {
	var names []string

	for d := range components {
		names = append(names, d)
	}

	for d := range platforms {
		names = append(names, d)
	}

	sort.Strings(names)

	return names
}

// Platforms returns the platform names under a domain, sorted, for suggestions.
func Platforms(domain string) []string {
	var names []string

	for p := range platforms[domain] {
		names = append(names, p)
	}

	sort.Strings(names)

	return names
}
