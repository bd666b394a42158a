/*****************************************************************************************************************/

//	@package	optics/statistics

/*****************************************************************************************************************/

// Package stats provides small randomized-testing helpers, used to synthesize
// noisy measurement data for pkg/aspheric's coefficient fitter tests.
package stats

/*****************************************************************************************************************/

import (
	"math/rand"
)

/*****************************************************************************************************************/

// NormalDistributedRandomNumber generates a normally distributed random number.
// mean: the mean of the distribution.
// stdDev: the standard deviation of the distribution.
func NormalDistributedRandomNumber(mean, stdDev float64) float64 {
	return rand.NormFloat64()*stdDev + mean
}

/*****************************************************************************************************************/
