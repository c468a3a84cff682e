package redisutils

import (
	"fmt"
	"strconv"

	"github.com/vertex-lab/linkrank/pkg/models"
)

// FormatFloat64() formats a pagerank value into a string ready to be stored in Redis.
// The shortest representation that parses back to the same value is used.
func FormatFloat64(val float64) string {
	return strconv.FormatFloat(val, 'g', -1, 64)
}

// ParseFloat64() parses a float64 from the specified string
func ParseFloat64(strVal string) (float64, error) {
	parsedVal, err := strconv.ParseFloat(strVal, 64)
	return parsedVal, err
}

// FormatDistribution() formats a distribution into a map node --> formatted value,
// ready to be passed to HSet.
func FormatDistribution(dist models.Distribution) map[string]interface{} {
	fields := make(map[string]interface{}, len(dist))
	for node, val := range dist {
		fields[node] = FormatFloat64(val)
	}
	return fields
}

// ParseDistribution() parses the result of HGetAll into a distribution.
func ParseDistribution(fields map[string]string) (models.Distribution, error) {
	dist := make(models.Distribution, len(fields))
	for node, strVal := range fields {
		val, err := ParseFloat64(strVal)
		if err != nil {
			return nil, fmt.Errorf("failed to parse the pagerank of %q: %w", node, err)
		}
		dist[node] = val
	}
	return dist, nil
}
