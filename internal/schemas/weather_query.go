// internal/schemas/weather_query.go
// Coercion and range validation for GET /weather query parameters.

package schemas

import (
	"errors"
	"fmt"
	"math"
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"weather-agent/internal/util"
)

// WeatherQuery is a validated coordinate pair.
type WeatherQuery struct {
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
}

const (
	msgRequired  = "Required"
	msgNotNumber = "Expected number, received nan"
)

var fieldOrder = []string{"latitude", "longitude"}

var validate = func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report json names so details[].path matches the query parameter
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}()

// ParseWeatherQuery coerces latitude/longitude to numbers and checks their range.
// It returns one detail per offending field, in field order; nil means valid.
func ParseWeatherQuery(q url.Values) (WeatherQuery, []util.ErrorDetail) {
	var out WeatherQuery
	issues := map[string]string{}

	coerce := func(name string, dst *float64) {
		raw := strings.TrimSpace(q.Get(name))
		if raw == "" {
			issues[name] = msgRequired
			return
		}
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			issues[name] = msgNotNumber
			return
		}
		*dst = f
	}
	coerce("latitude", &out.Latitude)
	coerce("longitude", &out.Longitude)

	if err := validate.Struct(out); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			// only reachable on programmer error (invalid struct)
			panic(err)
		}
		for _, fe := range verrs {
			if _, seen := issues[fe.Field()]; seen {
				continue
			}
			issues[fe.Field()] = rangeMessage(fe)
		}
	}

	if len(issues) == 0 {
		return out, nil
	}
	details := make([]util.ErrorDetail, 0, len(issues))
	for _, name := range fieldOrder {
		if msg, ok := issues[name]; ok {
			details = append(details, util.ErrorDetail{Path: name, Message: msg})
		}
	}
	return out, details
}

func rangeMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "gte":
		return fmt.Sprintf("Number must be greater than or equal to %s", fe.Param())
	case "lte":
		return fmt.Sprintf("Number must be less than or equal to %s", fe.Param())
	default:
		return fmt.Sprintf("Invalid value (%s)", fe.Tag())
	}
}
