package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gradingDTO "sekolahku_backend/internals/features/school/grading/dto"
)

func d(s string) *decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return &v
}

func sampleReports(subjMat, subjFis uuid.UUID) []gradingDTO.PeriodReport {
	return []gradingDTO.PeriodReport{
		{
			StudentName:    "Ana",
			OverallAverage: d("4.5"),
			FailedSubjects: []string{},
			Areas: []gradingDTO.AreaReport{{
				Subjects: []gradingDTO.SubjectLine{
					{SubjectID: subjMat, SubjectName: "Matematicas", EffectiveGrade: d("4.5"), Label: "ALTO"},
					{SubjectID: subjFis, SubjectName: "Fisica", EffectiveGrade: d("4.6"), Label: "SUPERIOR"},
				},
			}},
		},
		{
			StudentName:    "Bruno",
			OverallAverage: d("2.5"),
			FailedSubjects: []string{"Matematicas", "Fisica"},
			Areas: []gradingDTO.AreaReport{{
				Subjects: []gradingDTO.SubjectLine{
					{SubjectID: subjMat, SubjectName: "Matematicas", EffectiveGrade: d("2.0"), Label: "BAJO", Failed: true},
					{SubjectID: subjFis, SubjectName: "Fisica", EffectiveGrade: d("2.5"), Label: "BAJO", Failed: true},
				},
			}},
		},
		{
			StudentName:    "Carla",
			OverallAverage: d("3.5"),
			FailedSubjects: []string{"Matematicas"},
			Areas: []gradingDTO.AreaReport{{
				Subjects: []gradingDTO.SubjectLine{
					{SubjectID: subjMat, SubjectName: "Matematicas", EffectiveGrade: d("2.9"), Label: "BAJO", Failed: true},
					{SubjectID: subjFis, SubjectName: "Fisica", EffectiveGrade: d("4.0"), Label: "ALTO"},
				},
			}},
		},
	}
}

func TestClassStatistics(t *testing.T) {
	subjMat, subjFis := uuid.New(), uuid.New()
	calc := NewCalculator(NewStatsCache())

	filter := StatsFilter{SchoolID: uuid.New(), ClassID: uuid.New(), PeriodID: uuid.New(), Year: 2026}
	stats := calc.ClassStatistics(filter, sampleReports(subjMat, subjFis))

	assert.Equal(t, 3, stats.StudentCount)
	assert.Equal(t, 2, stats.StudentsWithFailures)

	// (4.5+2.5+3.5)/3 = 3.5
	require.NotNil(t, stats.ClassAverage)
	assert.True(t, stats.ClassAverage.Equal(*d("3.5")), "got %s", stats.ClassAverage)

	assert.Equal(t, 3, stats.Distribution["BAJO"])
	assert.Equal(t, 2, stats.Distribution["ALTO"])
	assert.Equal(t, 1, stats.Distribution["SUPERIOR"])

	// Matematicas 2 kegagalan, Fisica 1; urut terbanyak dulu
	require.Len(t, stats.SubjectFailures, 2)
	assert.Equal(t, "Matematicas", stats.SubjectFailures[0].SubjectName)
	assert.Equal(t, 2, stats.SubjectFailures[0].Failures)
	assert.Equal(t, 1, stats.SubjectFailures[1].Failures)
}

func TestClassStatistics_Memoized(t *testing.T) {
	subjMat, subjFis := uuid.New(), uuid.New()
	cache := NewStatsCache()
	calc := NewCalculator(cache)

	filter := StatsFilter{SchoolID: uuid.New(), ClassID: uuid.New(), PeriodID: uuid.New(), Year: 2026}
	reports := sampleReports(subjMat, subjFis)

	first := calc.ClassStatistics(filter, reports)
	second := calc.ClassStatistics(filter, nil) // memo hit: input diabaikan
	assert.Same(t, first, second)
	assert.Equal(t, 1, cache.Len())
}

func TestClassStatistics_KeyIncludesSchool(t *testing.T) {
	subjMat, subjFis := uuid.New(), uuid.New()
	calc := NewCalculator(NewStatsCache())

	base := StatsFilter{SchoolID: uuid.New(), ClassID: uuid.New(), PeriodID: uuid.New(), Year: 2026}
	other := base
	other.SchoolID = uuid.New()

	// filter identik kecuali tenant TIDAK boleh berbagi entry
	a := calc.ClassStatistics(base, sampleReports(subjMat, subjFis))
	b := calc.ClassStatistics(other, sampleReports(subjMat, subjFis)[:1])

	assert.NotSame(t, a, b)
	assert.Equal(t, 3, a.StudentCount)
	assert.Equal(t, 1, b.StudentCount)
}

func TestStatsCache_FreshPerRequest(t *testing.T) {
	subjMat, subjFis := uuid.New(), uuid.New()
	filter := StatsFilter{SchoolID: uuid.New(), ClassID: uuid.New(), PeriodID: uuid.New(), Year: 2026}

	// request pertama
	first := NewCalculator(NewStatsCache()).ClassStatistics(filter, sampleReports(subjMat, subjFis))

	// request kedua dengan cache BARU melihat data baru, bukan hasil lama
	second := NewCalculator(NewStatsCache()).ClassStatistics(filter, sampleReports(subjMat, subjFis)[:1])

	assert.Equal(t, 3, first.StudentCount)
	assert.Equal(t, 1, second.StudentCount)
}
