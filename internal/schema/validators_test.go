package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntRange(t *testing.T) {
	check := IntRange(-180, 180)

	// Inclusive bounds validate; the neighbours outside fail.
	for _, n := range []int{-180, -179, -1, 0, 1, 179, 180} {
		got, err := check(n)
		require.NoError(t, err, "n=%d", n)
		assert.Equal(t, n, got)
	}

	for _, n := range []int{-181, 181, 360, -999} {
		_, err := check(n)
		require.Error(t, err, "n=%d", n)
		assert.Equal(t, "out_of_range", errorCode(err))
	}

	// YAML decoders may hand over int64.
	got, err := check(int64(90))
	require.NoError(t, err)
	assert.Equal(t, 90, got)

	_, err = check("45")
	require.Error(t, err)
	assert.Equal(t, "wrong_type", errorCode(err))
}

func TestBoolean(t *testing.T) {
	got, err := Boolean()(true)
	require.NoError(t, err)
	assert.Equal(t, true, got)

	_, err = Boolean()("true")
	require.Error(t, err)
	assert.Equal(t, "wrong_type", errorCode(err))
}

func TestIdent(t *testing.T) {
	valid := []string{"station", "my_station", "st_1", "_x"}
	for _, s := range valid {
		_, err := Ident()(s)
		assert.NoError(t, err, "ident %q", s)
	}

	invalid := []string{"", "My_Station", "1station", "my-station", "my station"}
	for _, s := range invalid {
		_, err := Ident()(s)
		assert.Error(t, err, "ident %q", s)
	}
}

func TestIcon(t *testing.T) {
	got, err := Icon()("mdi:weather-pouring")
	require.NoError(t, err)
	assert.Equal(t, "mdi:weather-pouring", got)

	for _, s := range []string{"", "mdi", "mdi:", ":windy"} {
		_, err := Icon()(s)
		assert.Error(t, err, "icon %q", s)
	}
}

func TestOneOf(t *testing.T) {
	check := OneOf("battery", "light")

	_, err := check("battery")
	assert.NoError(t, err)

	_, err = check("moisture")
	require.Error(t, err)
	assert.Equal(t, "invalid_value", errorCode(err))
}

func TestPositiveInt(t *testing.T) {
	got, err := PositiveInt()(5)
	require.NoError(t, err)
	assert.Equal(t, 5, got)

	for _, n := range []int{0, -1} {
		_, err := PositiveInt()(n)
		assert.Error(t, err, "n=%d", n)
	}
}

func TestFloatRange(t *testing.T) {
	check := FloatRange(0, 10)

	got, err := check(5.5)
	require.NoError(t, err)
	assert.Equal(t, 5.5, got)

	// Integers widen to float.
	got, err = check(3)
	require.NoError(t, err)
	assert.Equal(t, 3.0, got)

	_, err = check(10.1)
	require.Error(t, err)
	assert.Equal(t, "out_of_range", errorCode(err))
}
