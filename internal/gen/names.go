package gen

import (
	"strconv"
	"strings"
)

// namespace hands out unique Go variable names within one generated file.
// Claims can be released again when a deferred task discards its attempt.
type namespace struct {
	taken map[string]struct{}
}

func newNamespace() *namespace {
	// "dev" is the setup function parameter.
	return &namespace{taken: map[string]struct{}{"dev": {}}}
}

// Claim reserves a name derived from hint. The bare name is preferred;
// numbered variants follow when it is already taken.
func (ns *namespace) Claim(hint string) string {
	name := camelize(hint)
	if name == "" {
		name = "v"
	}

	if _, ok := ns.taken[name]; !ok {
		ns.taken[name] = struct{}{}
		return name
	}

	for i := 2; ; i++ {
		candidate := name + strconv.Itoa(i)
		if _, ok := ns.taken[candidate]; !ok {
			ns.taken[candidate] = struct{}{}
			return candidate
		}
	}
}

// Release frees a previously claimed name.
func (ns *namespace) Release(name string) {
	delete(ns.taken, name)
}

// camelize turns a snake_case configuration ID or a display name into a
// lowerCamel Go identifier: "my_station" -> "myStation",
// "Wind speed" -> "windSpeed".
func camelize(s string) string {
	var b strings.Builder

	upperNext := false
	first := true

	for _, r := range s {
		switch {
		case r == '_' || r == '-' || r == ' ':
			upperNext = !first
		case r >= '0' && r <= '9':
			if first {
				continue
			}

			b.WriteRune(r)
			upperNext = false
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			switch {
			case first:
				b.WriteRune(asciiLower(r))
				first = false
			case upperNext:
				b.WriteRune(asciiUpper(r))
				upperNext = false
			default:
				b.WriteRune(asciiLower(r))
			}
		}
	}

	return b.String()
}

func asciiLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}

	return r
}

func asciiUpper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}

	return r
}
