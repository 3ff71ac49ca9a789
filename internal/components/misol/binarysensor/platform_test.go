package binarysensor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"station-generator/internal/components/misol"
	"station-generator/internal/gen"
)

func runPlatform(t *testing.T, raw map[string]any) ([]gen.Statement, error) {
	t.Helper()

	conf, res := platform{}.Schema().Validate(raw)
	require.True(t, res.IsValid(), "unexpected validation errors: %v", res.Errors)

	cfg := gen.DefaultGeneratorConfig()
	cfg.DriverModule = "firmwarelib"
	c := gen.NewContext(cfg)

	c.EnqueueTask(gen.PriorityDriver, "misol", func(tc *gen.TaskContext) error {
		v, err := tc.Declare("my_station", "", misol.TypeTag, "firmwarelib/misol", "misol.NewWeatherStation()")
		if err != nil {
			return err
		}

		tc.Add(gen.RegisterStmt{V: v})

		return nil
	})
	c.EnqueueTask(gen.PrioritySensor, "binary_sensor.misol", func(tc *gen.TaskContext) error {
		return platform{}.ToCode(tc, conf)
	})

	err := c.Run()

	return c.Statements(), err
}

func renderLines(stmts []gen.Statement) string {
	var lines []string
	for _, s := range stmts {
		lines = append(lines, s.Line())
	}

	return strings.Join(lines, "\n")
}

func TestToCode_BatteryLevel(t *testing.T) {
	stmts, err := runPlatform(t, map[string]any{
		"misol_id":      "my_station",
		"battery_level": map[string]any{"name": "Station battery"},
	})
	require.NoError(t, err)

	joined := renderLines(stmts)
	assert.Contains(t, joined, "myStation.SetBatteryLevelBinarySensor(stationBattery)")
	assert.Contains(t, joined, `stationBattery.SetDeviceClass("battery")`)
}

func TestToCode_NightThresholds(t *testing.T) {
	stmts, err := runPlatform(t, map[string]any{
		"misol_id": "my_station",
		"night": map[string]any{
			"name":                  "Night",
			"upper_night_threshold": 0.5,
			"lower_night_threshold": 0.2,
		},
	})
	require.NoError(t, err)

	joined := renderLines(stmts)
	assert.Contains(t, joined, "myStation.SetNightBinarySensor(night)")
	assert.Contains(t, joined, "myStation.SetUpperNightThreshold(0.5)")
	assert.Contains(t, joined, "myStation.SetLowerNightThreshold(0.2)")
}

func TestToCode_NightWithoutThresholds(t *testing.T) {
	stmts, err := runPlatform(t, map[string]any{
		"misol_id": "my_station",
		"night":    map[string]any{"name": "Night"},
	})
	require.NoError(t, err)

	joined := renderLines(stmts)
	assert.NotContains(t, joined, "SetUpperNightThreshold")
	assert.NotContains(t, joined, "SetLowerNightThreshold")
}

func TestSchema_ThresholdRange(t *testing.T) {
	_, res := platform{}.Schema().Validate(map[string]any{
		"misol_id": "my_station",
		"night": map[string]any{
			"name":                  "Night",
			"upper_night_threshold": 500.0,
		},
	})
	require.True(t, res.HasErrors())
	assert.Equal(t, "out_of_range", res.Errors[0].Code)
	assert.Equal(t, "night.upper_night_threshold", res.Errors[0].OptionPath)
}
