// Package binarysensor provides the generic binary sensor building block.
package binarysensor

import (
	"fmt"

	"station-generator/internal/gen"
	"station-generator/internal/schema"
)

// TypeTag identifies binary sensor variables in the object table.
const TypeTag = "binarysensor.BinarySensor"

const (
	confName        = "name"
	confID          = "id"
	confDeviceClass = "device_class"
)

// Schema returns the base binary sensor schema with a platform-supplied
// default device class ("" for none).
func Schema(defaultClass string) *schema.Schema {
	class := schema.Optional(confDeviceClass, deviceClass())
	if defaultClass != "" {
		class = schema.OptionalDefault(confDeviceClass, defaultClass, deviceClass())
	}

	return schema.New(
		schema.Required(confName, schema.NonEmptyString()),
		schema.Optional(confID, schema.Ident()),
		class,
	)
}

func deviceClass() schema.Validator {
	return schema.OneOf("battery", "light", "moisture", "power", "problem")
}

// New constructs the binary sensor variable for a validated block and
// registers it with the application.
func New(tc *gen.TaskContext, conf schema.Config) (*gen.Variable, error) {
	name := conf.GetString(confName)

	v, err := tc.Declare(conf.GetString(confID), name, TypeTag,
		tc.Config().DriverModule+"/binarysensor",
		fmt.Sprintf("binarysensor.New(%s)", gen.StringLit(name)))
	if err != nil {
		return nil, err
	}

	if class := conf.GetString(confDeviceClass); class != "" {
		tc.Add(gen.CallStmt{Recv: v, Method: "SetDeviceClass", Args: []string{gen.StringLit(class)}})
	}

	tc.Add(gen.RegisterStmt{V: v})

	return v, nil
}
