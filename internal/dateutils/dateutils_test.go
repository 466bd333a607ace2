package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutFromStrftime(t *testing.T) {
	tests := []struct {
		format   string
		expected string
		hasError bool
	}{
		{"%d.%m.%Y", "2.1.2006", false},
		{"%Y-%m-%d %H:%M:%S", "2006-1-2 15:04:05", false},
		{"%d %b %y", "2 Jan 06", false},
		{"100%%", "100%", false},
		{"02.01.2006", "02.01.2006", false},
		{"%d.%m.%", "", true},
		{"%j", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			layout, err := LayoutFromStrftime(tt.format)
			if tt.hasError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, layout)
		})
	}
}

func TestParseDate(t *testing.T) {
	layout, err := LayoutFromStrftime("%d.%m.%Y")
	require.NoError(t, err)

	tests := []struct {
		value    string
		expected time.Time
	}{
		{"28.06.2013", time.Date(2013, 6, 28, 0, 0, 0, 0, time.UTC)},
		{" 04.07.2013 ", time.Date(2013, 7, 4, 0, 0, 0, 0, time.UTC)},
		{"1.8.2020", time.Date(2020, 8, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, err := ParseDate(tt.value, layout)
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(got), "got %s", got)
		})
	}

	for _, bad := range []string{"", "2013-06-28", "32.01.2013", "28.06.13"} {
		_, err := ParseDate(bad, layout)
		assert.Error(t, err, bad)
	}
}

func TestToISODate(t *testing.T) {
	assert.Equal(t, "2013-06-28", ToISODate(time.Date(2013, 6, 28, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "", ToISODate(time.Time{}))
}
