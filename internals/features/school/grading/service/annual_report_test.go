package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func threePeriods() []uuid.UUID {
	return []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
}

func TestAnnualAggregator_IdempotentGrade(t *testing.T) {
	scale := testScale(t)
	agg := NewAnnualAggregator(scale)
	periods := threePeriods()

	// nilai identik di semua periode → nilai tahunan = nilai itu, tanpa drift
	grades := map[uuid.UUID]map[uuid.UUID]SubjectPeriodGrade{
		subjMat: {
			periods[0]: {Original: decPtr("4.0")},
			periods[1]: {Original: decPtr("4.0")},
			periods[2]: {Original: decPtr("4.0")},
		},
	}

	r := agg.Build(StudentInfo{StudentID: uuid.New(), FullName: "Ana"},
		2026, periods, testCurriculum(), grades)

	mat := r.Areas[0].Subjects[0]
	require.NotNil(t, mat.AnnualGrade)
	assert.True(t, mat.AnnualGrade.Equal(dec("4.0")), "got %s", mat.AnnualGrade)
}

func TestAnnualAggregator_SkipsEmptyPeriods(t *testing.T) {
	scale := testScale(t)
	agg := NewAnnualAggregator(scale)
	periods := threePeriods()

	// periode tanpa nilai TIDAK dihitung nol: (3.0+4.0)/2 = 3.5
	grades := map[uuid.UUID]map[uuid.UUID]SubjectPeriodGrade{
		subjMat: {
			periods[0]: {Original: decPtr("3.0")},
			periods[2]: {Original: decPtr("4.0")},
		},
	}

	r := agg.Build(StudentInfo{StudentID: uuid.New(), FullName: "Ana"},
		2026, periods, testCurriculum(), grades)

	mat := r.Areas[0].Subjects[0]
	require.NotNil(t, mat.AnnualGrade)
	assert.True(t, mat.AnnualGrade.Equal(dec("3.5")), "got %s", mat.AnnualGrade)

	require.Len(t, mat.PeriodGrades, 3)
	assert.Nil(t, mat.PeriodGrades[1])
}

func TestAnnualAggregator_UsesEffectiveGrades(t *testing.T) {
	scale := testScale(t)
	agg := NewAnnualAggregator(scale)
	periods := threePeriods()

	grades := map[uuid.UUID]map[uuid.UUID]SubjectPeriodGrade{
		subjMat: {
			// recovery menggantikan nilai asli pada agregasi tahunan
			periods[0]: {Original: decPtr("2.0"), Recovery: decPtr("3.0")},
			periods[1]: {Original: decPtr("3.0")},
		},
	}

	r := agg.Build(StudentInfo{StudentID: uuid.New(), FullName: "Ana"},
		2026, periods, testCurriculum(), grades)

	mat := r.Areas[0].Subjects[0]
	require.NotNil(t, mat.AnnualGrade)
	assert.True(t, mat.AnnualGrade.Equal(dec("3.0")), "got %s", mat.AnnualGrade)
	assert.False(t, mat.Failed)
}

func TestAnnualAggregator_OverallIsUnweightedAcrossAreas(t *testing.T) {
	scale := testScale(t)
	agg := NewAnnualAggregator(scale)
	periods := []uuid.UUID{uuid.New()}

	grades := map[uuid.UUID]map[uuid.UUID]SubjectPeriodGrade{
		subjMat: {periods[0]: {Original: decPtr("4.0")}},
		subjFis: {periods[0]: {Original: decPtr("4.0")}},
		subjEsp: {periods[0]: {Original: decPtr("3.0")}},
	}

	r := agg.Build(StudentInfo{StudentID: uuid.New(), FullName: "Ana"},
		2026, periods, testCurriculum(), grades)

	// Ciencias 4.0, Humanidades 3.0 → keseluruhan (4.0+3.0)/2 = 3.5
	// TANPA bobot jam — berbeda dari rata-rata periode
	require.NotNil(t, r.OverallAverage)
	assert.True(t, r.OverallAverage.Equal(dec("3.5")), "got %s", r.OverallAverage)
}

func TestAnnualAggregator_FailedAreasAndSubjects(t *testing.T) {
	scale := testScale(t)
	agg := NewAnnualAggregator(scale)
	periods := []uuid.UUID{uuid.New()}

	grades := map[uuid.UUID]map[uuid.UUID]SubjectPeriodGrade{
		subjMat: {periods[0]: {Original: decPtr("2.0")}},
		subjFis: {periods[0]: {Original: decPtr("2.5")}},
		subjEsp: {periods[0]: {Original: decPtr("4.5")}},
	}

	r := agg.Build(StudentInfo{StudentID: uuid.New(), FullName: "Ana"},
		2026, periods, testCurriculum(), grades)

	assert.Equal(t, []string{"Matematicas", "Fisica"}, r.FailedSubjects)
	assert.Equal(t, []string{"Ciencias"}, r.FailedAreas)
}
