// Package textsensor provides the generic text sensor building block:
// the base option schema shared by all text sensor platforms and the
// factory emitting a sensor's construction and registration.
package textsensor

import (
	"fmt"

	"station-generator/internal/gen"
	"station-generator/internal/schema"
)

// TypeTag identifies text sensor variables in the object table.
const TypeTag = "textsensor.TextSensor"

const (
	confName = "name"
	confID   = "id"
	confIcon = "icon"
)

// Schema returns the base text sensor schema with a platform-supplied
// default icon.
func Schema(defaultIcon string) *schema.Schema {
	return schema.New(
		schema.Required(confName, schema.NonEmptyString()),
		schema.Optional(confID, schema.Ident()),
		schema.OptionalDefault(confIcon, defaultIcon, schema.Icon()),
	)
}

// New constructs the text sensor variable for a validated block: it emits
// the declaration, icon setup, and application registration, and returns
// the variable so the platform can wire it onto its driver.
func New(tc *gen.TaskContext, conf schema.Config) (*gen.Variable, error) {
	name := conf.GetString(confName)

	v, err := tc.Declare(conf.GetString(confID), name, TypeTag,
		tc.Config().DriverModule+"/textsensor",
		fmt.Sprintf("textsensor.New(%s)", gen.StringLit(name)))
	if err != nil {
		return nil, err
	}

	if icon := conf.GetString(confIcon); icon != "" {
		tc.Add(gen.CallStmt{Recv: v, Method: "SetIcon", Args: []string{gen.StringLit(icon)}})
	}

	tc.Add(gen.RegisterStmt{V: v})

	return v, nil
}
