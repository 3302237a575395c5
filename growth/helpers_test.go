// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package growth

import (
	"math"
	"testing"
)

func assertFloatClose(t *testing.T, got, want, tolerance float64) {
	t.Helper()

	if math.Abs(got-want) > tolerance {
		t.Fatalf("expected %v (±%v), got %v", want, tolerance, got)
	}
}

func mustDefaultStore(t *testing.T) *Store {
	t.Helper()

	store, err := DefaultStore()
	if err != nil {
		t.Fatalf("DefaultStore failed: %v", err)
	}

	return store
}

func mustTable(t *testing.T, sex Sex, kind MeasurementType) *ReferenceTable {
	t.Helper()

	table, err := mustDefaultStore(t).Table(sex, kind)
	if err != nil {
		t.Fatalf("Table(%s, %s) failed: %v", sex, kind, err)
	}

	return table
}

func intPtr(v int) *int {
	return &v
}
