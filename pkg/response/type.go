package response

import (
	"encoding/json"
	"time"
)

// ErrorResp is the JSON body of every non-2xx answer.
// Detail is a string for plain HTTP errors and a list of field errors for 422.
type ErrorResp struct {
	Detail any `json:"detail"`
}

// DateTime is a zone-less datetime that marshals as DateTimeFormat.
// The wall clock is rendered as stored, never converted to the host zone.
type DateTime time.Time

// MarshalJSON implements json.Marshaler for DateTime.
func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).Format(DateTimeFormat))
}

// String returns the DateTimeFormat rendering.
func (d DateTime) String() string {
	return time.Time(d).Format(DateTimeFormat)
}
