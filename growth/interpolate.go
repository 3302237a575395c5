/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package growth

import "sort"

// Resolve returns the LMS parameters of a table at a fractional age.
//
// Ages outside the table clamp to the nearest boundary entry. Between two
// tabulated ages L, M and S are each interpolated linearly. This is an
// approximation: the official references interpolate the curves with
// higher-order methods, so results between tabulated months can differ
// slightly from the published charts.
func Resolve(table *ReferenceTable, ageMonths float64) (LMSEntry, error) {
	if table == nil || len(table.entries) == 0 {
		return LMSEntry{}, ErrEmptyTable
	}

	entries := table.entries

	first, last := entries[0], entries[len(entries)-1]
	if ageMonths <= first.AgeMonths {
		return first, nil
	}

	if ageMonths >= last.AgeMonths {
		return last, nil
	}

	// index of the first entry at or after ageMonths
	i := sort.Search(len(entries), func(i int) bool {
		return entries[i].AgeMonths >= ageMonths
	})

	upper := entries[i]
	if upper.AgeMonths == ageMonths {
		return upper, nil
	}

	lower := entries[i-1]
	t := (ageMonths - lower.AgeMonths) / (upper.AgeMonths - lower.AgeMonths)

	return LMSEntry{
		AgeMonths: ageMonths,
		L:         lerp(lower.L, upper.L, t),
		M:         lerp(lower.M, upper.M, t),
		S:         lerp(lower.S, upper.S, t),
	}, nil
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}
