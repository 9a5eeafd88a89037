package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"task-intake-service/pkg/response"
)

func TestDateTimeMarshalJSON(t *testing.T) {
	// A non-UTC zone must not shift the rendered wall clock.
	loc := time.FixedZone("UTC+7", 7*60*60)
	dt := response.DateTime(time.Date(2023, 12, 31, 23, 59, 0, 0, loc))

	b, err := json.Marshal(dt)
	if err != nil {
		t.Fatalf("unexpected error marshaling DateTime: %v", err)
	}
	if string(b) != `"2023-12-31T23:59:00"` {
		t.Errorf("unexpected DateTime JSON: %s", b)
	}
	if dt.String() != "2023-12-31T23:59:00" {
		t.Errorf("unexpected DateTime string: %s", dt.String())
	}
}
