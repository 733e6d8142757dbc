package activity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeClock(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"09:00", "09:00"},
		{"9:00", "09:00"},
		{"9:5", "09:05"},
		{"00:00", "00:00"},
		{"23:59", "23:59"},
	}
	for _, tc := range cases {
		got, err := NormalizeClock(tc.in)
		require.NoError(t, err, "input %q", tc.in)
		require.Equal(t, tc.want, got)
	}
}

func TestNormalizeClock_Invalid(t *testing.T) {
	for _, bad := range []string{"", "0900", "24:00", "12:60", "-1:30", "ab:cd", "12:34:56"} {
		_, err := NormalizeClock(bad)
		require.ErrorIs(t, err, ErrInvalidClock, "input %q", bad)
	}
}

func TestValidateDate(t *testing.T) {
	require.NoError(t, ValidateDate("2024-06-01"))
	require.NoError(t, ValidateDate("2024-02-29"))

	for _, bad := range []string{"", "2024-6-1", "2024-13-01", "2023-02-29", "June 1, 2024"} {
		require.ErrorIs(t, ValidateDate(bad), ErrInvalidDate, "input %q", bad)
	}
}

func TestParseMode(t *testing.T) {
	mode, err := ParseMode("")
	require.NoError(t, err)
	require.Equal(t, ModeWalking, mode)

	for _, valid := range []string{"walking", "driving", "transit"} {
		mode, err := ParseMode(valid)
		require.NoError(t, err)
		require.Equal(t, TravelMode(valid), mode)
	}

	_, err = ParseMode("teleport")
	require.ErrorIs(t, err, ErrInvalidMode)
}

func TestValidateCoordinates(t *testing.T) {
	lat, lon := 48.8566, 2.3522
	require.NoError(t, ValidateCoordinates(nil, nil))
	require.NoError(t, ValidateCoordinates(&lat, &lon))

	require.ErrorIs(t, ValidateCoordinates(&lat, nil), ErrInvalidCoordinates)
	require.ErrorIs(t, ValidateCoordinates(nil, &lon), ErrInvalidCoordinates)

	badLat := 91.0
	require.ErrorIs(t, ValidateCoordinates(&badLat, &lon), ErrInvalidCoordinates)
	badLon := -181.0
	require.ErrorIs(t, ValidateCoordinates(&lat, &badLon), ErrInvalidCoordinates)
}
