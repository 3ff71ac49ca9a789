// Package misol implements the Misol weather station hub component. It
// declares the driver instance other platforms reference by ID; the driver
// itself (UART protocol decoding, packet handling) lives in the firmware
// and is not part of this generator.
package misol

import (
	"station-generator/internal/gen"
	"station-generator/internal/registry"
	"station-generator/internal/schema"
)

// TypeTag identifies weather station variables in the object table.
const TypeTag = "misol.WeatherStation"

const confID = "id"

func init() { registry.RegisterComponent("misol", component{}) }

type component struct{}

func (component) Schema() *schema.Schema {
	return schema.New(
		schema.Required(confID, schema.Ident()),
	)
}

func (component) Priority() gen.SetupPriority { return gen.PriorityDriver }

func (component) ToCode(tc *gen.TaskContext, conf schema.Config) error {
	v, err := tc.Declare(conf.GetString(confID), "", TypeTag,
		tc.Config().DriverModule+"/misol", "misol.NewWeatherStation()")
	if err != nil {
		return err
	}

	tc.Add(gen.RegisterStmt{V: v})

	return nil
}
