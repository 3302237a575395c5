/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package growth

import (
	"fmt"
	"math"
	"sync"
)

// Supported age domain of the reference tables, in months.
const (
	MinTableAgeMonths = 0
	MaxTableAgeMonths = 36
)

// ReferenceTable is an immutable age-ordered set of LMS entries
type ReferenceTable struct {
	sex     Sex
	kind    MeasurementType
	entries []LMSEntry
}

// Sex returns the sex the table applies to.
func (t *ReferenceTable) Sex() Sex { return t.sex }

// Type returns the measurement type the table applies to.
func (t *ReferenceTable) Type() MeasurementType { return t.kind }

// Len returns the number of tabulated ages.
func (t *ReferenceTable) Len() int { return len(t.entries) }

// Entry returns the i-th entry in age order.
func (t *ReferenceTable) Entry(i int) LMSEntry { return t.entries[i] }

// Entries returns a copy of the table rows.
func (t *ReferenceTable) Entries() []LMSEntry {
	out := make([]LMSEntry, len(t.entries))
	copy(out, t.entries)

	return out
}

type tableKey struct {
	sex  Sex
	kind MeasurementType
}

// Store holds every reference table. It is read-only once built and safe
// for concurrent use.
type Store struct {
	tables map[tableKey]*ReferenceTable
}

// NewStore checks the definitions and builds a Store. All problems found
// are returned together in a *ConfigurationError.
func NewStore(defs []TableDefinition) (*Store, error) {
	var issues []string

	store := &Store{tables: make(map[tableKey]*ReferenceTable, len(defs))}

	for _, def := range defs {
		key := tableKey{sex: def.Sex, kind: def.Type}
		if _, dup := store.tables[key]; dup {
			issues = append(issues, fmt.Sprintf("%s/%s: duplicate table", def.Sex, def.Type))
			continue
		}

		issues = append(issues, checkTable(def)...)

		entries := make([]LMSEntry, len(def.Entries))
		copy(entries, def.Entries)
		store.tables[key] = &ReferenceTable{sex: def.Sex, kind: def.Type, entries: entries}
	}

	for _, sex := range Sexes {
		for _, kind := range MeasurementTypes {
			if _, ok := store.tables[tableKey{sex: sex, kind: kind}]; !ok {
				issues = append(issues, fmt.Sprintf("%s/%s: table missing", sex, kind))
			}
		}
	}

	if len(issues) > 0 {
		return nil, &ConfigurationError{Issues: issues}
	}

	return store, nil
}

// checkTable returns every problem with a single definition.
func checkTable(def TableDefinition) []string {
	var issues []string

	name := fmt.Sprintf("%s/%s", def.Sex, def.Type)
	if len(def.Entries) == 0 {
		return []string{name + ": no entries"}
	}

	covered := make(map[int]bool, MaxTableAgeMonths+1)

	for i, e := range def.Entries {
		if i > 0 && e.AgeMonths <= def.Entries[i-1].AgeMonths {
			issues = append(issues, fmt.Sprintf("%s: age %g not after %g", name, e.AgeMonths, def.Entries[i-1].AgeMonths))
		}

		if !(e.M > 0) {
			issues = append(issues, fmt.Sprintf("%s: age %g has non-positive M %g", name, e.AgeMonths, e.M))
		}

		if !(e.S > 0) {
			issues = append(issues, fmt.Sprintf("%s: age %g has non-positive S %g", name, e.AgeMonths, e.S))
		}

		if math.IsNaN(e.L) || math.IsInf(e.L, 0) {
			issues = append(issues, fmt.Sprintf("%s: age %g has non-finite L", name, e.AgeMonths))
		}

		if e.AgeMonths == math.Trunc(e.AgeMonths) {
			covered[int(e.AgeMonths)] = true
		}
	}

	for month := MinTableAgeMonths; month <= MaxTableAgeMonths; month++ {
		if !covered[month] {
			issues = append(issues, fmt.Sprintf("%s: month %d missing", name, month))
		}
	}

	return issues
}

// Table returns the reference table for a sex and measurement type.
func (s *Store) Table(sex Sex, kind MeasurementType) (*ReferenceTable, error) {
	t, ok := s.tables[tableKey{sex: sex, kind: kind}]
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s", ErrTableNotFound, sex, kind)
	}

	return t, nil
}

var defaultStore = sync.OnceValues(func() (*Store, error) {
	return NewStore(GetReferenceTableDefinitions())
})

// DefaultStore returns the process-wide store built from the embedded
// reference data. It is built on first use and never rebuilt.
func DefaultStore() (*Store, error) {
	return defaultStore()
}
