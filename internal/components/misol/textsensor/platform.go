// Package textsensor implements the misol text sensor platform: up to four
// string-valued readings (wind speed, wind direction, light, precipitation
// intensity) wired onto a previously declared weather station.
package textsensor

import (
	"fmt"

	"station-generator/internal/components/misol"
	ts "station-generator/internal/components/textsensor"
	"station-generator/internal/gen"
	"station-generator/internal/registry"
	"station-generator/internal/schema"
)

//go:generate go tool stringer -type=SensorKind -output=kind_string.go

// SensorKind tags the text sensor kinds this platform supports.
type SensorKind int

const (
	_ SensorKind = iota // skip zero value, use it as a default (invalid) value

	KindWindSpeed
	KindWindDirection
	KindLight
	KindPrecipitationIntensity
)

const (
	confMisolID                = "misol_id"
	confWindSpeed              = "wind_speed"
	confWindDirection          = "wind_direction"
	confLight                  = "light"
	confPrecipitationIntensity = "precipitation_intensity"
	confThreeLetterDirection   = "three_letter_direction"
	confNorthCorrection        = "north_correction"

	iconWeatherWindy   = "mdi:weather-windy"
	iconSignDirection  = "mdi:sign-direction"
	iconWeatherSunny   = "mdi:weather-sunny"
	iconWeatherPouring = "mdi:weather-pouring"
)

// kindSpec binds one sensor kind to its option key, default icon, and the
// station setter wiring it. The table is the single source of truth; setter
// names are never derived at generation time.
type kindSpec struct {
	kind   SensorKind
	key    string
	icon   string
	setter string
}

var kinds = [...]kindSpec{
	{KindWindSpeed, confWindSpeed, iconWeatherWindy, "SetWindSpeedTextSensor"},
	{KindWindDirection, confWindDirection, iconSignDirection, "SetWindDirectionTextSensor"},
	{KindLight, confLight, iconWeatherSunny, "SetLightTextSensor"},
	{KindPrecipitationIntensity, confPrecipitationIntensity, iconWeatherPouring, "SetPrecipitationIntensityTextSensor"},
}

func init() { registry.RegisterPlatform("text_sensor", "misol", platform{}) }

type platform struct{}

func (platform) Schema() *schema.Schema {
	return schema.New(
		schema.Required(confMisolID, schema.UseID()),
		schema.OptionalBlock(confWindSpeed, ts.Schema(iconWeatherWindy)),
		schema.OptionalBlock(confWindDirection, ts.Schema(iconSignDirection).Extend(
			schema.Optional(confThreeLetterDirection, schema.Boolean()),
			schema.Optional(confNorthCorrection, schema.IntRange(-180, 180)),
		)),
		schema.OptionalBlock(confLight, ts.Schema(iconWeatherSunny)),
		schema.OptionalBlock(confPrecipitationIntensity, ts.Schema(iconWeatherPouring)),
	)
}

func (platform) Priority() gen.SetupPriority { return gen.PrioritySensor }

func (platform) ToCode(tc *gen.TaskContext, conf schema.Config) error {
	station, err := tc.GetVariable(conf.GetString(confMisolID), misol.TypeTag)
	if err != nil {
		return err
	}

	for _, spec := range kinds {
		block := conf.GetBlock(spec.key)
		if block == nil {
			continue
		}

		sens, err := ts.New(tc, block)
		if err != nil {
			return fmt.Errorf("%s: %w", spec.kind, err)
		}

		tc.Add(gen.CallStmt{Recv: station, Method: spec.setter, Args: []string{gen.VarRef(sens)}})
	}

	if wd := conf.GetBlock(confWindDirection); wd != nil {
		if n, ok := wd.GetInt(confNorthCorrection); ok {
			tc.Add(gen.CallStmt{Recv: station, Method: "SetNorthCorrection", Args: []string{gen.IntLit(n)}})
		}

		if b, ok := wd.GetBool(confThreeLetterDirection); ok {
			tc.Add(gen.CallStmt{Recv: station, Method: "SetThreeLetterDirection", Args: []string{gen.BoolLit(b)}})
		}
	}

	return nil
}
