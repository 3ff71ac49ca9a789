// Package sensor implements the misol numeric sensor platform covering the
// full reading set of the station driver, from temperature to precipitation
// intensity.
package sensor

import (
	"fmt"

	"station-generator/internal/components/misol"
	gs "station-generator/internal/components/sensor"
	"station-generator/internal/gen"
	"station-generator/internal/registry"
	"station-generator/internal/schema"
)

const (
	confMisolID                        = "misol_id"
	confPrecipitationIntensityInterval = "precipitation_intensity_interval"
)

// readingSpec binds one numeric reading to its option key, defaults, and
// station setter.
type readingSpec struct {
	key    string
	icon   string
	unit   string
	setter string
}

var readings = [...]readingSpec{
	{"temperature", "mdi:thermometer", "°C", "SetTemperatureSensor"},
	{"humidity", "mdi:water-percent", "%", "SetHumiditySensor"},
	{"pressure", "mdi:gauge", "hPa", "SetPressureSensor"},
	{"wind_speed", "mdi:weather-windy", "m/s", "SetWindSpeedSensor"},
	{"wind_gust", "mdi:weather-windy-variant", "m/s", "SetWindGustSensor"},
	{"wind_direction_degrees", "mdi:sign-direction", "°", "SetWindDirectionDegreesSensor"},
	{"accumulated_precipitation", "mdi:weather-rainy", "mm", "SetAccumulatedPrecipitationSensor"},
	{"uv_intensity", "mdi:sun-wireless", "mW/m²", "SetUvIntensitySensor"},
	{"uv_index", "mdi:sun-wireless-outline", "", "SetUvIndexSensor"},
	{"light", "mdi:weather-sunny", "lx", "SetLightSensor"},
	{"precipitation_intensity", "mdi:weather-pouring", "mm/h", "SetPrecipitationIntensitySensor"},
}

func init() { registry.RegisterPlatform("sensor", "misol", platform{}) }

type platform struct{}

func (platform) Schema() *schema.Schema {
	fields := []schema.Field{
		schema.Required(confMisolID, schema.UseID()),
		// Sampling window for the precipitation intensity reading, minutes.
		schema.Optional(confPrecipitationIntensityInterval, schema.PositiveInt()),
	}

	for _, r := range readings {
		fields = append(fields, schema.OptionalBlock(r.key, gs.Schema(r.icon, r.unit)))
	}

	return schema.New(fields...)
}

func (platform) Priority() gen.SetupPriority { return gen.PrioritySensor }

func (platform) ToCode(tc *gen.TaskContext, conf schema.Config) error {
	station, err := tc.GetVariable(conf.GetString(confMisolID), misol.TypeTag)
	if err != nil {
		return err
	}

	for _, r := range readings {
		block := conf.GetBlock(r.key)
		if block == nil {
			continue
		}

		sens, err := gs.New(tc, block)
		if err != nil {
			return fmt.Errorf("%s: %w", r.key, err)
		}

		tc.Add(gen.CallStmt{Recv: station, Method: r.setter, Args: []string{gen.VarRef(sens)}})
	}

	if n, ok := conf.GetInt(confPrecipitationIntensityInterval); ok {
		tc.Add(gen.CallStmt{Recv: station, Method: "SetPrecipitationIntensityInterval", Args: []string{gen.IntLit(n)}})
	}

	return nil
}
