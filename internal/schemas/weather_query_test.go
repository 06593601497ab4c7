package schemas

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-agent/internal/util"
)

func TestParseWeatherQuery_Valid(t *testing.T) {
	q, details := ParseWeatherQuery(url.Values{"latitude": {"40.7128"}, "longitude": {" -74.0060 "}})
	require.Nil(t, details)
	assert.Equal(t, WeatherQuery{Latitude: 40.7128, Longitude: -74.006}, q)
}

func TestParseWeatherQuery_Boundaries(t *testing.T) {
	for _, v := range []url.Values{
		{"latitude": {"90"}, "longitude": {"180"}},
		{"latitude": {"-90"}, "longitude": {"-180"}},
		{"latitude": {"0"}, "longitude": {"0"}},
	} {
		_, details := ParseWeatherQuery(v)
		assert.Nil(t, details, "values %v", v)
	}
}

func TestParseWeatherQuery_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		query url.Values
		want  []util.ErrorDetail
	}{
		{
			name:  "latitude too large",
			query: url.Values{"latitude": {"999"}, "longitude": {"0"}},
			want:  []util.ErrorDetail{{Path: "latitude", Message: "Number must be less than or equal to 90"}},
		},
		{
			name:  "latitude too small",
			query: url.Values{"latitude": {"-90.0001"}, "longitude": {"0"}},
			want:  []util.ErrorDetail{{Path: "latitude", Message: "Number must be greater than or equal to -90"}},
		},
		{
			name:  "longitude out of range",
			query: url.Values{"latitude": {"0"}, "longitude": {"180.5"}},
			want:  []util.ErrorDetail{{Path: "longitude", Message: "Number must be less than or equal to 180"}},
		},
		{
			name:  "both out of range",
			query: url.Values{"latitude": {"-91"}, "longitude": {"-181"}},
			want: []util.ErrorDetail{
				{Path: "latitude", Message: "Number must be greater than or equal to -90"},
				{Path: "longitude", Message: "Number must be greater than or equal to -180"},
			},
		},
		{
			name:  "missing parameters",
			query: url.Values{},
			want: []util.ErrorDetail{
				{Path: "latitude", Message: "Required"},
				{Path: "longitude", Message: "Required"},
			},
		},
		{
			// An empty value is rejected rather than coerced to 0, which would
			// silently answer for the Gulf of Guinea. Keep it a 400.
			name:  "empty and blank values",
			query: url.Values{"latitude": {""}, "longitude": {"   "}},
			want: []util.ErrorDetail{
				{Path: "latitude", Message: "Required"},
				{Path: "longitude", Message: "Required"},
			},
		},
		{
			name:  "not a number",
			query: url.Values{"latitude": {"north"}, "longitude": {"NaN"}},
			want: []util.ErrorDetail{
				{Path: "latitude", Message: "Expected number, received nan"},
				{Path: "longitude", Message: "Expected number, received nan"},
			},
		},
		{
			name:  "infinity",
			query: url.Values{"latitude": {"Inf"}, "longitude": {"1"}},
			want:  []util.ErrorDetail{{Path: "latitude", Message: "Expected number, received nan"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, details := ParseWeatherQuery(tt.query)
			assert.Equal(t, tt.want, details)
		})
	}
}
