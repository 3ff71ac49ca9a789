package gen

import (
	"fmt"
	"strconv"
	"strings"
)

// Variable is an entry of the build-time object table: one Go local in the
// generated setup function, addressable by its configuration ID.
type Variable struct {
	// Name is the Go variable name.
	Name string
	// TypeTag identifies the driver type, e.g. "misol.WeatherStation".
	// Identifier references are checked against it during resolution.
	TypeTag string
}

// Statement is one generated setup statement.
type Statement interface {
	// Line renders the statement as a single Go source line (unformatted;
	// the renderer runs go/format over the whole file).
	Line() string
}

// DeclStmt declares a variable: `name := expr`.
type DeclStmt struct {
	V    *Variable
	Expr string
}

func (s DeclStmt) Line() string {
	return fmt.Sprintf("%s := %s", s.V.Name, s.Expr)
}

// CallStmt calls a method on a declared variable: `recv.Method(args...)`.
type CallStmt struct {
	Recv   *Variable
	Method string
	Args   []string
}

func (s CallStmt) Line() string {
	return fmt.Sprintf("%s.%s(%s)", s.Recv.Name, s.Method, strings.Join(s.Args, ", "))
}

// RegisterStmt registers a variable with the application: `dev.Register(v)`.
type RegisterStmt struct {
	V *Variable
}

func (s RegisterStmt) Line() string {
	return fmt.Sprintf("dev.Register(%s)", s.V.Name)
}

// StringLit formats a string literal argument.
func StringLit(s string) string { return strconv.Quote(s) }

// IntLit formats an integer literal argument.
func IntLit(n int) string { return strconv.Itoa(n) }

// BoolLit formats a boolean literal argument.
func BoolLit(b bool) string { return strconv.FormatBool(b) }

// FloatLit formats a float literal argument.
func FloatLit(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	// Keep the literal a float even for whole values.
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}

	return s
}

// VarRef formats a variable reference argument.
func VarRef(v *Variable) string { return v.Name }
