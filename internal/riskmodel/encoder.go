package riskmodel

import (
	apperrors "returnsight/internal/errors"
	"returnsight/pkg/contracts/domain"
)

// Encoded categorical fields
const (
	FieldCategory     = "Category"
	FieldVersionClean = "Version_clean"
)

// UnknownCode is the trained-in sentinel for strings not observed during
// training. Reserving it from the start means scoring never has to fail on
// an unseen category unless the caller opts into strict encoding.
const UnknownCode = 0

// Encoder is the frozen categorical encoding built once from the training
// population. Each distinct observed string maps to a unique integer code
// assigned in first-seen order, starting at 1; code 0 is the unknown
// sentinel. The encoder is a plain value returned by training and threaded
// explicitly into scoring.
type Encoder struct {
	codes map[string]map[string]int
}

// FitEncoder builds the frozen encoding from the training population
func FitEncoder(records []domain.EnhancedRecord) *Encoder {
	e := &Encoder{codes: map[string]map[string]int{
		FieldCategory:     make(map[string]int),
		FieldVersionClean: make(map[string]int),
	}}
	for _, r := range records {
		e.observe(FieldCategory, r.Category)
		e.observe(FieldVersionClean, r.VersionClean)
	}
	return e
}

func (e *Encoder) observe(field, value string) {
	m := e.codes[field]
	if _, seen := m[value]; !seen {
		m[value] = len(m) + 1
	}
}

// Encode maps a field value to its frozen code. Unseen values map to the
// unknown sentinel.
func (e *Encoder) Encode(field, value string) int {
	if code, ok := e.codes[field][value]; ok {
		return code
	}
	return UnknownCode
}

// EncodeStrict maps a field value to its frozen code and fails on values
// absent from the training population. This preserves the original
// no-unknown-bucket behavior for callers that want scoring to abort on
// drift.
func (e *Encoder) EncodeStrict(field, value string) (int, error) {
	code, ok := e.codes[field][value]
	if !ok {
		return 0, apperrors.NewUnseenCategoryError(field, value)
	}
	return code, nil
}

// Cardinality returns the number of distinct observed values for a field,
// excluding the unknown sentinel
func (e *Encoder) Cardinality(field string) int {
	return len(e.codes[field])
}
