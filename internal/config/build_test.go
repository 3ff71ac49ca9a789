package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"station-generator/internal/gen"
)

func testGenConfig() gen.GeneratorConfig {
	cfg := gen.DefaultGeneratorConfig()
	cfg.DriverModule = "firmwarelib"

	return cfg
}

func buildDoc(t *testing.T, yamlText string) ([]gen.GeneratedFile, error) {
	t.Helper()

	doc, err := Parse([]byte(yamlText))
	require.NoError(t, err)

	res := doc.Validate()
	require.True(t, res.IsValid(), "unexpected validation errors: %v", res.Errors)

	return doc.Build(testGenConfig())
}

func TestBuild_Minimal(t *testing.T) {
	files, err := buildDoc(t, `
misol:
  id: my_station

text_sensor:
  - platform: misol
    misol_id: my_station
    wind_speed:
      name: Wind speed
`)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "station_setup.go", files[0].Filename)

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
	assert.Equal(t, expected, string(files[0].Content))
}

// The hub is declared after the sensors in the document; setup priorities
// still put it first in the generated file.
func TestBuild_DocumentOrderIndependent(t *testing.T) {
	files, err := buildDoc(t, `
sensor:
  - platform: misol
    misol_id: my_station
    temperature:
      name: Temperature

misol:
  id: my_station
`)
	require.NoError(t, err)

	content := string(files[0].Content)
	station := "myStation := misol.NewWeatherStation()"
	setter := "myStation.SetTemperatureSensor(temperature)"
	assert.Less(t, strings.Index(content, station), strings.Index(content, setter))
}

func TestBuild_UndefinedStation(t *testing.T) {
	files, err := buildDoc(t, `
text_sensor:
  - platform: misol
    misol_id: my_station
    light:
      name: Light
`)
	require.Error(t, err)
	assert.Nil(t, files)
	assert.Contains(t, err.Error(), `"my_station"`)
}

func TestBuild_Idempotent(t *testing.T) {
	first, err := buildDoc(t, fullConfig)
	require.NoError(t, err)

	second, err := buildDoc(t, fullConfig)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestBuild_Empty(t *testing.T) {
	files, err := buildDoc(t, "")
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Contains(t, string(files[0].Content), "func Setup(dev *app.Application) {")
}
