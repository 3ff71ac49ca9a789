// Package sensor provides the generic numeric sensor building block,
// mirroring the text sensor one with unit and accuracy options.
package sensor

import (
	"fmt"

	"station-generator/internal/gen"
	"station-generator/internal/schema"
)

// TypeTag identifies numeric sensor variables in the object table.
const TypeTag = "sensor.Sensor"

const (
	confName              = "name"
	confID                = "id"
	confIcon              = "icon"
	confUnitOfMeasurement = "unit_of_measurement"
	confAccuracyDecimals  = "accuracy_decimals"
)

// Schema returns the base numeric sensor schema. An empty defaultUnit means
// the sensor is unitless unless the user supplies one.
func Schema(defaultIcon, defaultUnit string) *schema.Schema {
	unit := schema.Optional(confUnitOfMeasurement, schema.NonEmptyString())
	if defaultUnit != "" {
		unit = schema.OptionalDefault(confUnitOfMeasurement, defaultUnit, schema.NonEmptyString())
	}

	return schema.New(
		schema.Required(confName, schema.NonEmptyString()),
		schema.Optional(confID, schema.Ident()),
		schema.OptionalDefault(confIcon, defaultIcon, schema.Icon()),
		unit,
		schema.Optional(confAccuracyDecimals, schema.IntRange(0, 9)),
	)
}

// New constructs the numeric sensor variable for a validated block and
// registers it with the application.
func New(tc *gen.TaskContext, conf schema.Config) (*gen.Variable, error) {
	name := conf.GetString(confName)

	v, err := tc.Declare(conf.GetString(confID), name, TypeTag,
		tc.Config().DriverModule+"/sensor",
		fmt.Sprintf("sensor.New(%s)", gen.StringLit(name)))
	if err != nil {
		return nil, err
	}

	if icon := conf.GetString(confIcon); icon != "" {
		tc.Add(gen.CallStmt{Recv: v, Method: "SetIcon", Args: []string{gen.StringLit(icon)}})
	}

	if unit := conf.GetString(confUnitOfMeasurement); unit != "" {
		tc.Add(gen.CallStmt{Recv: v, Method: "SetUnitOfMeasurement", Args: []string{gen.StringLit(unit)}})
	}

	if dec, ok := conf.GetInt(confAccuracyDecimals); ok {
		tc.Add(gen.CallStmt{Recv: v, Method: "SetAccuracyDecimals", Args: []string{gen.IntLit(dec)}})
	}

	tc.Add(gen.RegisterStmt{V: v})

	return v, nil
}
