// Package binarysensor implements the misol binary sensor platform:
// battery level and the night flag with its hysteresis thresholds.
package binarysensor

import (
	"fmt"

	gb "station-generator/internal/components/binarysensor"
	"station-generator/internal/components/misol"
	"station-generator/internal/gen"
	"station-generator/internal/registry"
	"station-generator/internal/schema"
)

const (
	confMisolID             = "misol_id"
	confBatteryLevel        = "battery_level"
	confNight               = "night"
	confUpperNightThreshold = "upper_night_threshold"
	confLowerNightThreshold = "lower_night_threshold"
)

type flagSpec struct {
	key    string
	class  string
	setter string
}

var flags = [...]flagSpec{
	{confBatteryLevel, "battery", "SetBatteryLevelBinarySensor"},
	{confNight, "light", "SetNightBinarySensor"},
}

func init() { registry.RegisterPlatform("binary_sensor", "misol", platform{}) }

type platform struct{}

func (platform) Schema() *schema.Schema {
	return schema.New(
		schema.Required(confMisolID, schema.UseID()),
		schema.OptionalBlock(confBatteryLevel, gb.Schema("battery")),
		schema.OptionalBlock(confNight, gb.Schema("light").Extend(
			// Light levels (klx) where the night flag flips off and on.
			schema.Optional(confUpperNightThreshold, schema.FloatRange(0, 200)),
			schema.Optional(confLowerNightThreshold, schema.FloatRange(0, 200)),
		)),
	)
}

func (platform) Priority() gen.SetupPriority { return gen.PrioritySensor }

func (platform) ToCode(tc *gen.TaskContext, conf schema.Config) error {
	station, err := tc.GetVariable(conf.GetString(confMisolID), misol.TypeTag)
	if err != nil {
		return err
	}

	for _, f := range flags {
		block := conf.GetBlock(f.key)
		if block == nil {
			continue
		}

		sens, err := gb.New(tc, block)
		if err != nil {
			return fmt.Errorf("%s: %w", f.key, err)
		}

		tc.Add(gen.CallStmt{Recv: station, Method: f.setter, Args: []string{gen.VarRef(sens)}})
	}

	if night := conf.GetBlock(confNight); night != nil {
		if v, ok := night.GetFloat(confUpperNightThreshold); ok {
			tc.Add(gen.CallStmt{Recv: station, Method: "SetUpperNightThreshold", Args: []string{gen.FloatLit(v)}})
		}

		if v, ok := night.GetFloat(confLowerNightThreshold); ok {
			tc.Add(gen.CallStmt{Recv: station, Method: "SetLowerNightThreshold", Args: []string{gen.FloatLit(v)}})
		}
	}

	return nil
}
