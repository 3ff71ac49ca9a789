package gen

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildWindSpeedContext(t *testing.T) *Context {
	t.Helper()

	c := NewContext(testConfig())

	c.EnqueueTask(PriorityDriver, "misol", func(tc *TaskContext) error {
		return declareStation(tc, "my_station")
	})
	c.EnqueueTask(PrioritySensor, "text_sensor.misol", func(tc *TaskContext) error {
		station, err := tc.GetVariable("my_station", "misol.WeatherStation")
		if err != nil {
			return err
		}

		sens, err := tc.Declare("", "Wind speed", "textsensor.TextSensor",
			tc.Config().DriverModule+"/textsensor", `textsensor.New("Wind speed")`)
		if err != nil {
			return err
		}

		tc.Add(CallStmt{Recv: sens, Method: "SetIcon", Args: []string{StringLit("mdi:weather-windy")}})
		tc.Add(RegisterStmt{V: sens})
		tc.Add(CallStmt{Recv: station, Method: "SetWindSpeedTextSensor", Args: []string{VarRef(sens)}})

		return nil
	})

	require.NoError(t, c.Run())

	return c
}

func TestRender(t *testing.T) {
	c := buildWindSpeedContext(t)

	file, err := c.Render()
	require.NoError(t, err)
	assert.Equal(t, "station_setup.go", file.Filename)

	expected := `// Code generated by station-generator. DO NOT EDIT.

package main

import (
	"firmwarelib/app"
	"firmwarelib/misol"
	"firmwarelib/textsensor"
)

// Setup wires the configured sensors onto their driver instances.
func Setup(dev *app.Application) {
	myStation := misol.NewWeatherStation()
	dev.Register(myStation)
	windSpeed := textsensor.New("Wind speed")
	windSpeed.SetIcon("mdi:weather-windy")
	dev.Register(windSpeed)
	myStation.SetWindSpeedTextSensor(windSpeed)
}
`

	assert.Equal(t, expected, string(file.Content))
}

func TestRenderIdempotent(t *testing.T) {
	first := buildWindSpeedContext(t)
	second := buildWindSpeedContext(t)

	lines := func(c *Context) []string {
		var out []string
		for _, s := range c.Statements() {
			out = append(out, s.Line())
		}

		return out
	}

	// Same input produces an identical statement sequence and identical bytes.
	assert.Equal(t, spew.Sdump(lines(first)), spew.Sdump(lines(second)))

	f1, err := first.Render()
	require.NoError(t, err)
	f2, err := second.Render()
	require.NoError(t, err)

	assert.Equal(t, string(f1.Content), string(f2.Content))
}

func TestLiterals(t *testing.T) {
	assert.Equal(t, `"Wind speed"`, StringLit("Wind speed"))
	assert.Equal(t, "-15", IntLit(-15))
	assert.Equal(t, "true", BoolLit(true))
	assert.Equal(t, "5.5", FloatLit(5.5))
	assert.Equal(t, "4.0", FloatLit(4))
}
