/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */

// Package session keeps the measurement history of one patient for the
// command line front end. It owns every record it creates; the growth
// engine itself stays stateless.
package session

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/humaidq/growthref/growth"
	"github.com/humaidq/growthref/logging"
)

var logger = logging.Logger(logging.SourceSession)

// Patient identifies the child being measured
type Patient struct {
	FirstName           string     `json:"first_name" yaml:"first_name"`
	LastName            string     `json:"last_name" yaml:"last_name"`
	Sex                 growth.Sex `json:"sex" yaml:"sex"`
	BirthDate           time.Time  `json:"birth_date" yaml:"birth_date"`
	GestationalAgeWeeks *int       `json:"gestational_age_weeks,omitempty" yaml:"gestational_age_weeks,omitempty"`
}

// FullName returns the patient's display name.
func (p Patient) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// Visit is one set of measurements taken on the same day. A zero value
// means "not measured"; any other value is validated.
type Visit struct {
	Date       time.Time
	HeightCm   float64
	WeightKg   float64
	HeadCircCm float64
}

// Record associates a growth result with the date it was measured
type Record struct {
	ID     uuid.UUID            `json:"id" yaml:"id"`
	Date   time.Time            `json:"date" yaml:"date"`
	Result *growth.GrowthResult `json:"result" yaml:"result"`
	Band   growth.Band          `json:"band" yaml:"band"`
}

// Session is the state of one patient's tracking session. It is not safe
// for concurrent use.
type Session struct {
	engine  *growth.Engine
	patient Patient
	records []Record
	now     func() time.Time
}

// Option configures a Session.
type Option func(*Session)

// WithClock overrides the clock used to reject future birth dates.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		s.now = now
	}
}

// New starts a session for a patient.
func New(engine *growth.Engine, patient Patient, opts ...Option) (*Session, error) {
	if engine == nil {
		return nil, errEngineRequired
	}

	patient.FirstName = strings.TrimSpace(patient.FirstName)
	patient.LastName = strings.TrimSpace(patient.LastName)

	if patient.FirstName == "" || patient.LastName == "" {
		return nil, errNameRequired
	}

	if patient.Sex != growth.SexMale && patient.Sex != growth.SexFemale {
		return nil, fmt.Errorf("%w: %q", errUnknownSex, patient.Sex)
	}

	if patient.GestationalAgeWeeks != nil {
		if err := growth.ValidateGestationalAge(*patient.GestationalAgeWeeks); err != nil {
			return nil, err
		}
	}

	s := &Session{engine: engine, patient: patient, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Patient returns the session's patient.
func (s *Session) Patient() Patient {
	return s.patient
}

// Submit evaluates every measurement of a visit. Measurements that fail
// validation are reported together in the returned error; the others are
// still recorded and returned.
func (s *Session) Submit(v Visit) ([]Record, error) {
	if err := growth.ValidateDates(s.patient.BirthDate, v.Date, s.now()); err != nil {
		return nil, err
	}

	hasHeight, hasWeight := v.HeightCm != 0, v.WeightKg != 0
	if hasHeight != hasWeight {
		return nil, errHeightAndWeightRequired
	}

	hasHead := v.HeadCircCm != 0
	if !hasHeight && !hasHead {
		return nil, errNoMeasurements
	}

	age := growth.ChronologicalAgeMonths(s.patient.BirthDate, v.Date)

	var (
		added []Record
		errs  []error
	)

	evaluate := func(kind growth.MeasurementType, value float64) bool {
		result, err := s.engine.Compute(growth.Input{
			Value:               value,
			AgeMonths:           age,
			Type:                kind,
			Sex:                 s.patient.Sex,
			GestationalAgeWeeks: s.patient.GestationalAgeWeeks,
		})
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", kind, err))
			return false
		}

		added = append(added, Record{
			ID:     uuid.New(),
			Date:   v.Date,
			Result: result,
			Band:   growth.PercentileBand(result.Percentile),
		})

		return true
	}

	if hasHeight {
		heightOK := evaluate(growth.MeasurementHeight, v.HeightCm)
		weightOK := evaluate(growth.MeasurementWeight, v.WeightKg)

		// BMI is only derived from inputs that passed on their own
		if heightOK && weightOK {
			bmi, err := growth.CalculateBMI(v.WeightKg, v.HeightCm)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", growth.MeasurementBMI, err))
			} else {
				evaluate(growth.MeasurementBMI, bmi)
			}
		}
	}

	if hasHead {
		evaluate(growth.MeasurementHeadCircumference, v.HeadCircCm)
	}

	s.records = append(s.records, added...)

	logger.Debug("Recorded visit", "patient", s.patient.FullName(), "age_months", age,
		"recorded", len(added), "rejected", len(errs))

	return added, errors.Join(errs...)
}

// Records returns a copy of the measurement history in submission order.
func (s *Session) Records() []Record {
	out := make([]Record, len(s.records))
	copy(out, s.records)

	return out
}

// Latest returns the most recent record, by age, of each measurement type.
func (s *Session) Latest() map[growth.MeasurementType]Record {
	latest := make(map[growth.MeasurementType]Record)

	for _, r := range s.records {
		cur, ok := latest[r.Result.Type]
		if !ok || r.Result.ChronologicalAgeMonths > cur.Result.ChronologicalAgeMonths {
			latest[r.Result.Type] = r
		}
	}

	return latest
}

// Clear drops the whole measurement history.
func (s *Session) Clear() {
	s.records = nil
}
