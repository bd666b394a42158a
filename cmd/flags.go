/*****************************************************************************************************************/

//	@package	optics/cmd

/*****************************************************************************************************************/

package cmd

/*****************************************************************************************************************/

import (
	"fmt"
	"strconv"
	"strings"
)

/*****************************************************************************************************************/

// parseCoef10 parses a comma-separated list of up to ten coefficients (e.g.
// "1e-6,-2e-9") into a [10]float64, leaving unspecified trailing terms zero.
func parseCoef10(csv string) ([10]float64, error) {
	var coef [10]float64

	csv = strings.TrimSpace(csv)
	if csv == "" {
		return coef, nil
	}

	parts := strings.Split(csv, ",")
	if len(parts) > 10 {
		return coef, fmt.Errorf("at most 10 coefficients are supported, got %d", len(parts))
	}

	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return coef, fmt.Errorf("invalid coefficient %q: %w", p, err)
		}
		coef[i] = v
	}

	return coef, nil
}

/*****************************************************************************************************************/

// parseVec3 parses a comma-separated "x,y,z" triple.
func parseVec3(csv string) ([3]float64, error) {
	var v [3]float64

	parts := strings.Split(csv, ",")
	if len(parts) != 3 {
		return v, fmt.Errorf("expected 3 comma-separated components, got %d", len(parts))
	}

	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return v, fmt.Errorf("invalid component %q: %w", p, err)
		}
		v[i] = f
	}

	return v, nil
}

/*****************************************************************************************************************/
