// Copyright 2025 Felipe Carvajal Brown. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ent implements entropy metrics of the strain-energy
// distribution and the statistical collapse detectors reading them
package ent

import (
	"math"
	"sort"
)

// Metrics holds the per-step observables of the energy distribution
type Metrics struct {
	S    float64 // Shannon entropy of the energy shares [nats]
	DSdt float64 // backward difference of S; 0 on the first step
	Norm float64 // S normalized by ln(n); 0 when n <= 1
	Gini float64 // concentration index of the shares; 0 when n <= 1
}

// Eval computes the entropy metrics of a strain-energy field. The
// caller fixes the member population (here: currently active members)
// and must keep that convention for the whole run. A zero-total field
// has zero entropy by convention: a fully de-energized structure holds
// no distribution to measure.
func Eval(energies []float64, prevS float64, first bool) (m Metrics) {
	n := len(energies)
	total := 0.0
	for _, u := range energies {
		total += u
	}

	// shares; all zero when the field is fully de-energized
	p := make([]float64, n)
	if total > 0 {
		for i, u := range energies {
			p[i] = u / total
		}
	}

	m.S = Shannon(p)
	if !first {
		m.DSdt = m.S - prevS
	}
	if smax := MaxEntropy(n); smax > 0 {
		m.Norm = m.S / smax
	}
	m.Gini = Gini(p)
	return
}

// Shannon computes S = -sum(p_i * ln(p_i)); zero terms contribute 0
// via the limit p*ln(p) -> 0
func Shannon(p []float64) (s float64) {
	for _, pi := range p {
		if pi > 0 {
			s -= pi * math.Log(pi)
		}
	}
	return
}

// MaxEntropy returns ln(n), the entropy of a perfectly uniform
// distribution over n members; 0 for n <= 1
func MaxEntropy(n int) float64 {
	if n <= 1 {
		return 0
	}
	return math.Log(float64(n))
}

// TopMembers returns the indices of the n largest entries of an energy
// field, largest first; ties keep the lower index first. Useful for
// reporting where the energy is localizing as members fail. An n larger
// than the field returns all indices.
func TopMembers(energies []float64, n int) (idxs []int) {
	if n <= 0 {
		return
	}
	idxs = make([]int, len(energies))
	for i := range idxs {
		idxs[i] = i
	}
	sort.SliceStable(idxs, func(a, b int) bool {
		return energies[idxs[a]] > energies[idxs[b]]
	})
	if n < len(idxs) {
		idxs = idxs[:n]
	}
	return
}

// Gini computes the concentration index of a non-negative distribution:
// 0 for perfectly even shares, approaching 1-1/n as energy concentrates
// in a single member. A single-element distribution has no concentration
// to measure and yields 0 by convention.
func Gini(p []float64) float64 {
	n := len(p)
	if n <= 1 {
		return 0
	}
	sum := 0.0
	for _, pi := range p {
		sum += pi
	}
	if sum == 0 {
		return 0
	}
	sorted := make([]float64, n)
	copy(sorted, p)
	sort.Float64s(sorted)
	acc := 0.0
	for i, pi := range sorted {
		acc += float64(i+1) * pi
	}
	return 2.0*acc/(float64(n)*sum) - float64(n+1)/float64(n)
}
