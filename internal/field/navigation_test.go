package field

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLongitudeBoundaries(t *testing.T) {
	for _, raw := range []int32{-108000000, -73478868, -1, 0, 1, 45811417, 108000000} {
		got, err := Longitude(raw)
		require.NoError(t, err)
		require.NotNil(t, got)
		require.InDelta(t, float64(raw)/600000.0, *got, 1e-9)
	}

	got, err := Longitude(108600000)
	require.NoError(t, err)
	require.Nil(t, got)

	for _, raw := range []int32{-108000001, 108000001, 108599999, 108600001, 134217727, -134217728} {
		_, err := Longitude(raw)
		var fe *FieldError
		require.True(t, errors.As(err, &fe), "raw %d", raw)
		require.Equal(t, "longitude", fe.Field)
		require.Equal(t, int64(raw), fe.Raw)
		require.ErrorIs(t, err, ErrOutOfRange)
	}
}

func TestLatitudeBoundaries(t *testing.T) {
	for _, raw := range []int32{-54000000, 0, 22676583, 54000000} {
		got, err := Latitude(raw)
		require.NoError(t, err)
		require.InDelta(t, float64(raw)/600000.0, *got, 1e-9)
	}

	got, err := Latitude(54600000)
	require.NoError(t, err)
	require.Nil(t, got)

	for _, raw := range []int32{-54000001, 54000001, 54599999, 54600001, 67108863} {
		_, err := Latitude(raw)
		require.ErrorIs(t, err, ErrOutOfRange, "raw %d", raw)
	}
}

func TestSpeedOverGround(t *testing.T) {
	got, err := SpeedOverGround(139)
	require.NoError(t, err)
	require.InDelta(t, 13.9, *got, 1e-9)

	got, err = SpeedOverGround(1022)
	require.NoError(t, err)
	require.InDelta(t, 102.2, *got, 1e-9)

	got, err = SpeedOverGround(1023)
	require.NoError(t, err)
	require.Nil(t, got)

	_, err = SpeedOverGround(1024)
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestCourseOverGround(t *testing.T) {
	require.Nil(t, CourseOverGround(3600))
	require.InDelta(t, 40.4, *CourseOverGround(404), 1e-9)
	require.InDelta(t, 409.5, *CourseOverGround(4095), 1e-9)
	require.InDelta(t, 0.0, *CourseOverGround(0), 1e-9)
}

func TestHeading(t *testing.T) {
	got, err := Heading(359)
	require.NoError(t, err)
	require.Equal(t, uint16(359), *got)

	got, err = Heading(511)
	require.NoError(t, err)
	require.Nil(t, got)

	for _, raw := range []uint32{360, 510} {
		_, err = Heading(raw)
		require.ErrorIs(t, err, ErrOutOfRange)
	}
}

func TestAccuracyAndBool(t *testing.T) {
	a, err := ParseAccuracy(0)
	require.NoError(t, err)
	require.Equal(t, Unaugmented, a)
	a, err = ParseAccuracy(1)
	require.NoError(t, err)
	require.Equal(t, DGPS, a)
	require.Equal(t, "dgps", a.String())
	_, err = ParseAccuracy(2)
	require.ErrorIs(t, err, ErrOutOfRange)

	b, err := Bool("raim", 1)
	require.NoError(t, err)
	require.True(t, b)
	_, err = Bool("raim", 2)
	require.EqualError(t, err, "invalid raim: raw value 2")
}

func TestRateOfTurn(t *testing.T) {
	require.Nil(t, ParseRateOfTurn(-128))

	starboard := ParseRateOfTurn(127)
	require.NotNil(t, starboard)
	require.Nil(t, starboard.Rate())
	require.Equal(t, Starboard, starboard.Direction())

	port := ParseRateOfTurn(-127)
	require.NotNil(t, port)
	require.Nil(t, port.Rate())
	require.Equal(t, Port, port.Direction())

	none := ParseRateOfTurn(0)
	require.NotNil(t, none)
	require.Equal(t, NoTurn, none.Direction())
	require.NotNil(t, none.Rate())
	require.Equal(t, 0.0, *none.Rate())

	rot := ParseRateOfTurn(-8)
	require.Equal(t, Port, rot.Direction())
	require.InDelta(t, math.Pow(8/4.733, 2), *rot.Rate(), 1e-9)
	require.Equal(t, int8(-8), rot.Raw())
}
