package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidator() *validator.Validate {
	v := validator.New()
	RegisterGradingValidations(v)
	return v
}

func TestSetDimensionWeights_SumMustBe100(t *testing.T) {
	v := newValidator()

	tests := []struct {
		name    string
		ser     int
		saber   int
		hacer   int
		wantErr bool
	}{
		{"exact 100", 30, 30, 40, false},
		{"equal split int", 34, 33, 33, false},
		{"sum 99", 33, 33, 33, true},
		{"sum 101", 34, 34, 33, true},
		{"all in one dimension", 100, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := SetDimensionWeightsRequest{
				TeachingAssignmentID: uuid.New(),
				SerPercent:           tt.ser,
				SaberPercent:         tt.saber,
				HacerPercent:         tt.hacer,
			}
			err := v.Struct(req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSubmitPeriodGrades_EmptyDimensionsAllowed(t *testing.T) {
	v := newValidator()

	// Dimensi tanpa item adalah keadaan valid, bukan error
	req := SubmitPeriodGradesRequest{
		StudentID: uuid.New(),
		SubjectID: uuid.New(),
		PeriodID:  uuid.New(),
		ConceptualItems: []GradeItemInput{
			{Description: "Examen parcial", Value: decimal.RequireFromString("4.2")},
			// nilai 0 adalah data, bukan field kosong
			{Description: "Trabajo no entregado", Value: decimal.Zero},
		},
	}
	require.NoError(t, v.Struct(req))
}

func TestSubmitPeriodGrades_ItemNeedsDescription(t *testing.T) {
	v := newValidator()

	req := SubmitPeriodGradesRequest{
		StudentID: uuid.New(),
		SubjectID: uuid.New(),
		PeriodID:  uuid.New(),
		PracticalItems: []GradeItemInput{
			{Description: "", Value: decimal.RequireFromString("3.0")},
		},
	}
	assert.Error(t, v.Struct(req))
}
