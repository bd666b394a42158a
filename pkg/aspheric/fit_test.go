/*****************************************************************************************************************/

//	@package	optics/aspheric

/*****************************************************************************************************************/

package aspheric

/*****************************************************************************************************************/

import (
	"math"
	"testing"

	stats "github.com/claude-module/optics/pkg/statistics"
)

/*****************************************************************************************************************/

func TestFitRT10CoefRecoversKnownCoefficients(t *testing.T) {
	R := 100.0
	k := -1.0

	var want [10]float64
	want[0] = 1e-6
	want[1] = -2e-9

	n := 40
	r := make([]float64, n)
	sag := make([]float64, n)

	for i := 0; i < n; i++ {
		ri := 1.0 + float64(i)*0.2
		r[i] = ri
		sag[i] = SagRT10(ri, R, k, want, false)
	}

	got, err := FitRT10Coef(r, sag, R, k, false)
	if err != nil {
		t.Fatalf("FitRT10Coef returned error: %v", err)
	}

	for j, c := range want {
		if math.Abs(got[j]-c) > 1e-9*math.Max(1, math.Abs(c)) {
			t.Errorf("coef[%d] = %v; want %v", j, got[j], c)
		}
	}
}

/*****************************************************************************************************************/

func TestFitRT10CoefToleratesMeasurementNoise(t *testing.T) {
	R := 50.0
	k := 0.0

	var want [10]float64
	want[0] = 5e-7

	n := 60
	r := make([]float64, n)
	sag := make([]float64, n)

	for i := 0; i < n; i++ {
		ri := 0.5 + float64(i)*0.15
		r[i] = ri
		noise := stats.NormalDistributedRandomNumber(0, 1e-9)
		sag[i] = SagRT10(ri, R, k, want, false) + noise
	}

	got, err := FitRT10Coef(r, sag, R, k, false)
	if err != nil {
		t.Fatalf("FitRT10Coef returned error: %v", err)
	}

	if math.Abs(got[0]-want[0]) > 1e-7 {
		t.Errorf("coef[0] = %v; want approximately %v", got[0], want[0])
	}
}

/*****************************************************************************************************************/

func TestFitRT10CoefRejectsMismatchedLengths(t *testing.T) {
	_, err := FitRT10Coef([]float64{1, 2, 3}, []float64{1, 2}, 100, 0, false)
	if err == nil {
		t.Error("expected an error for mismatched r/sag lengths")
	}
}

/*****************************************************************************************************************/

func TestFitRT10CoefRejectsTooFewSamples(t *testing.T) {
	r := []float64{1, 2, 3}
	sag := []float64{0.1, 0.2, 0.3}

	_, err := FitRT10Coef(r, sag, 100, 0, false)
	if err == nil {
		t.Error("expected an error when fewer than 10 samples are supplied")
	}
}

/*****************************************************************************************************************/
