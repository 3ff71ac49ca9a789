package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"station-generator/internal/common"
)

// Diagnostics holds all diagnostic information from validation and generation.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Component identifies which configuration block this relates to
	// (e.g. "misol", "text_sensor.misol").
	Component string
	// OptionPath identifies which option this relates to
	// (e.g. "wind_direction.north_correction").
	OptionPath string
	// Suggestions are potential fixes or alternatives.
	Suggestions []string
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, component, optionPath string) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity:   SeverityError,
		Code:       code,
		Message:    message,
		Component:  component,
		OptionPath: optionPath,
	})
}

// AddErrorWithSuggestions adds an error diagnostic carrying candidate fixes.
func (d *Diagnostics) AddErrorWithSuggestions(code, message, component, optionPath string, suggestions []string) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity:    SeverityError,
		Code:        code,
		Message:     message,
		Component:   component,
		OptionPath:  optionPath,
		Suggestions: suggestions,
	})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, component, optionPath string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity:   SeverityWarning,
		Code:       code,
		Message:    message,
		Component:  component,
		OptionPath: optionPath,
	})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
}

// SetComponent fills in the component name on every diagnostic that does not
// have one yet. Schema validation doesn't know which block it is validating;
// the document layer stamps it afterwards.
func (d *Diagnostics) SetComponent(component string) {
	for i := range d.Errors {
		if d.Errors[i].Component == "" {
			d.Errors[i].Component = component
		}
	}

	for i := range d.Warnings {
		if d.Warnings[i].Component == "" {
			d.Warnings[i].Component = component
		}
	}
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Component != "" {
		prefix = append(prefix, "["+d.Component+"]")
	}

	if d.OptionPath != "" {
		prefix = append(prefix, d.OptionPath)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if s, ok := common.First(d.Suggestions); ok {
		msg += fmt.Sprintf(" (did you mean %q?)", s)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
