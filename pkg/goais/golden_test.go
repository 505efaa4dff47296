package goais

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"gitlab.com/d21d3q/goais/internal/testutil"
)

type goldenMessage struct {
	Payload string         `json:"payload"`
	Fill    int            `json:"fill"`
	Name    string         `json:"name"`
	Fields  map[string]any `json:"fields"`
}

func TestMessageGolden(t *testing.T) {
	fixtures := []string{
		"base_station_2017",
		"base_station_surveyed",
		"static_part_a",
		"static_part_b",
		"static_part_b_pleasure",
		"position_utc_time",
		"position_slot_offset",
		"position_itdma",
		"position_utc_indirect",
	}
	for _, name := range fixtures {
		name := name
		t.Run(name, func(t *testing.T) {
			var golden goldenMessage
			testutil.LoadJSON(t, "messages/"+name+".json", &golden)

			result, err := Decode(context.Background(), golden.Payload, golden.Fill)
			require.NoError(t, err)
			require.Equal(t, golden.Name, result.Name)
			require.Equal(t, "", diffMaps(golden.Fields, normalize(t, result.Fields)))
		})
	}
}

// normalize round-trips through JSON so numbers compare as float64.
func normalize(t *testing.T, fields map[string]any) map[string]any {
	t.Helper()
	data, err := json.Marshal(fields)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	return out
}

func diffMaps(expected, actual map[string]any) string {
	if len(expected) != len(actual) {
		return fmt.Sprintf("len mismatch expected %d actual %d", len(expected), len(actual))
	}
	for k, v := range expected {
		av, ok := actual[k]
		if !ok {
			return fmt.Sprintf("missing key %s", k)
		}
		switch ev := v.(type) {
		case float64:
			avFloat, ok := av.(float64)
			if !ok || math.Abs(ev-avFloat) > 1e-6 {
				return fmt.Sprintf("key %s mismatch expected %v got %v", k, v, av)
			}
		default:
			if fmt.Sprintf("%v", v) != fmt.Sprintf("%v", av) {
				return fmt.Sprintf("key %s mismatch expected %v got %v", k, v, av)
			}
		}
	}
	return ""
}
