package nmea

import (
	"context"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/asnimansari/nmea/internal/testutil"
)

func TestDBSGolden(t *testing.T) {
	fixtures := []string{
		"full",
		"meters_only",
		"empty",
		"status_suffix",
	}
	for _, name := range fixtures {
		name := name
		t.Run(name, func(t *testing.T) {
			line := testutil.LoadLine(t, "dbs/"+name+".nmea")
			result, err := AnalyzeLine(context.Background(), line)
			require.NoError(t, err)
			require.Equal(t, "dbs", result.Driver)

			var expected map[string]any
			testutil.LoadJSON(t, "dbs/"+name+".json", &expected)
			require.Equal(t, "", diffMaps(expected, result.Fields))
		})
	}
}

func TestDBSStream(t *testing.T) {
	lines := testutil.LoadLines(t, "dbs/stream.nmea")
	var drivers []string
	var failures int
	for _, line := range lines {
		result, err := AnalyzeLineWithOptions(context.Background(), line, AnalyzeOptions{Only: "DBS"})
		if err != nil {
			failures++
			continue
		}
		drivers = append(drivers, result.Driver)
	}
	require.Equal(t, 1, failures)
	require.Equal(t, []string{"skipped", "dbs", "skipped", "dbs"}, drivers)
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
			if !ok || math.Abs(ev-avFloat) > 1e-6*math.Max(1, math.Abs(ev)) {
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
