package bqm_test

import "github.com/katalvlaran/lvlqubo/bqm"

// forEachSpinSample invokes fn with every {-1,+1} assignment over vars.
// Binary-domain sweeps go through toBinary on each produced sample.
func forEachSpinSample(vars []int, fn func(sample map[int]float64)) {
	n := len(vars)
	for mask := 0; mask < 1<<n; mask++ {
		sample := make(map[int]float64, n)
		for i, v := range vars {
			if mask>>i&1 == 1 {
				sample[v] = 1
			} else {
				sample[v] = -1
			}
		}
		fn(sample)
	}
}

// toBinary maps a spin sample to the corresponding binary sample via
// x = (s + 1) / 2.
func toBinary(spin map[int]float64) map[int]float64 {
	bin := make(map[int]float64, len(spin))
	for v, s := range spin {
		bin[v] = (s + 1) / 2
	}

	return bin
}

// pair is shorthand for an int-keyed quadratic key in tests.
func pair(u, v int) bqm.Pair[int] {
	return bqm.Pair[int]{U: u, V: v}
}
