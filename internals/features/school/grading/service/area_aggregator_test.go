package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateArea_ExcludesNilGradesFromDenominator(t *testing.T) {
	// [4.0 (bobot 3), nil (bobot 2)] → 4.0, BUKAN 2.4: subject tanpa
	// nilai tidak boleh menyeret rata-rata area ke bawah
	avg, hours := AggregateArea([]AreaSubjectGrade{
		{SubjectID: uuid.New(), Grade: decPtr("4.0"), Weight: dec("3"), CreditHours: 3},
		{SubjectID: uuid.New(), Grade: nil, Weight: dec("2"), CreditHours: 2},
	})
	require.NotNil(t, avg)
	assert.True(t, avg.Equal(dec("4.0")), "got %s", avg)
	assert.Equal(t, 3, hours)
}

func TestAggregateArea_WeightedByCreditHours(t *testing.T) {
	// (4.0*3 + 3.0*1)/4 = 3.75 → 1 desimal half-up = 3.8
	avg, hours := AggregateArea([]AreaSubjectGrade{
		{SubjectID: uuid.New(), Grade: decPtr("4.0"), Weight: dec("3"), CreditHours: 3},
		{SubjectID: uuid.New(), Grade: decPtr("3.0"), Weight: dec("1"), CreditHours: 1},
	})
	require.NotNil(t, avg)
	assert.True(t, avg.Equal(dec("3.8")), "got %s", avg)
	assert.Equal(t, 4, hours)
}

func TestAggregateArea_ZeroGradeIsData(t *testing.T) {
	// nol adalah nilai gagal yang sah, bukan "tidak ada data"
	avg, _ := AggregateArea([]AreaSubjectGrade{
		{SubjectID: uuid.New(), Grade: decPtr("0.0"), Weight: dec("2"), CreditHours: 2},
	})
	require.NotNil(t, avg)
	assert.True(t, avg.IsZero())
}

func TestAggregateArea_NoGradesIsNil(t *testing.T) {
	avg, hours := AggregateArea([]AreaSubjectGrade{
		{SubjectID: uuid.New(), Grade: nil, Weight: dec("3"), CreditHours: 3},
		{SubjectID: uuid.New(), Grade: nil, Weight: dec("2"), CreditHours: 2},
	})
	assert.Nil(t, avg)
	assert.Equal(t, 0, hours)
}

func TestAggregateArea_ExplicitPercentWeights(t *testing.T) {
	// bobot persen eksplisit menggantikan jam pelajaran:
	// (5.0*70 + 2.0*30)/100 = 4.1
	avg, _ := AggregateArea([]AreaSubjectGrade{
		{SubjectID: uuid.New(), Grade: decPtr("5.0"), Weight: dec("70"), CreditHours: 4},
		{SubjectID: uuid.New(), Grade: decPtr("2.0"), Weight: dec("30"), CreditHours: 2},
	})
	require.NotNil(t, avg)
	assert.True(t, avg.Equal(dec("4.1")), "got %s", avg)
}
