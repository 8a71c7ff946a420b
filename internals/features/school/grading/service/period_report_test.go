package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	subjMat = uuid.New()
	subjFis = uuid.New()
	subjEsp = uuid.New()
)

func testCurriculum() []AreaCurriculum {
	return []AreaCurriculum{
		{
			AreaID: uuid.New(),
			Name:   "Ciencias",
			Subjects: []SubjectCurriculum{
				{SubjectID: subjMat, Name: "Matematicas", CreditHours: 3, HasAssignment: true, Weights: EqualSplitWeights()},
				{SubjectID: subjFis, Name: "Fisica", CreditHours: 2, HasAssignment: true, Weights: EqualSplitWeights()},
			},
		},
		{
			AreaID: uuid.New(),
			Name:   "Humanidades",
			Subjects: []SubjectCurriculum{
				{SubjectID: subjEsp, Name: "Espanol", CreditHours: 4, HasAssignment: true, Weights: EqualSplitWeights()},
			},
		},
	}
}

func TestPeriodReportBuilder_Build(t *testing.T) {
	scale := testScale(t)
	builder := NewPeriodReportBuilder(scale)
	periodID := uuid.New()

	student := StudentInfo{StudentID: uuid.New(), FullName: "Ana Gomez"}
	grades := map[uuid.UUID]SubjectPeriodGrade{
		subjMat: {Original: decPtr("2.5"), Recovery: decPtr("3.5")},
		subjFis: {Original: decPtr("4.0")},
		// Espanol tanpa nilai periode ini
	}

	r := builder.Build(student, periodID, testCurriculum(), grades)

	require.Len(t, r.Areas, 2)

	ciencias := r.Areas[0]
	require.Len(t, ciencias.Subjects, 2)

	mat := ciencias.Subjects[0]
	assert.Equal(t, "Matematicas", mat.SubjectName)
	require.NotNil(t, mat.EffectiveGrade)
	assert.True(t, mat.EffectiveGrade.Equal(dec("3.5")))
	require.NotNil(t, mat.OriginalGrade)
	assert.True(t, mat.OriginalGrade.Equal(dec("2.5")))
	assert.True(t, mat.WasRecovered)
	assert.Equal(t, "BASICO", mat.Label)
	assert.False(t, mat.Failed)

	// rata-rata area pakai nilai EFEKTIF: (3.5*3 + 4.0*2)/5 = 3.7
	require.NotNil(t, ciencias.Average)
	assert.True(t, ciencias.Average.Equal(dec("3.7")), "got %s", ciencias.Average)
	assert.Equal(t, 5, ciencias.CreditHoursGraded)
	assert.Equal(t, "BASICO", ciencias.Label)

	// area tanpa satu pun nilai → nil, bukan nol
	humanidades := r.Areas[1]
	assert.Nil(t, humanidades.Average)
	assert.Equal(t, 0, humanidades.CreditHoursGraded)

	// keseluruhan: hanya Ciencias menyumbang → 3.7 (2 desimal)
	require.NotNil(t, r.OverallAverage)
	assert.True(t, r.OverallAverage.Equal(dec("3.7")), "got %s", r.OverallAverage)

	// pra-recovery: (2.5*3 + 4.0*2)/5 = 3.1
	require.NotNil(t, r.OriginalAverage)
	assert.True(t, r.OriginalAverage.Equal(dec("3.1")), "got %s", r.OriginalAverage)

	// distribusi menghitung label subject DAN label area
	assert.Equal(t, 2, r.Distribution["BASICO"]) // Matematicas + area Ciencias
	assert.Equal(t, 1, r.Distribution["ALTO"])   // Fisica
	assert.Empty(t, r.FailedSubjects)
}

func TestPeriodReportBuilder_FailedSubjects(t *testing.T) {
	scale := testScale(t)
	builder := NewPeriodReportBuilder(scale)

	grades := map[uuid.UUID]SubjectPeriodGrade{
		subjMat: {Original: decPtr("2.0")},
		subjFis: {Original: decPtr("3.0")},
	}
	r := builder.Build(StudentInfo{StudentID: uuid.New(), FullName: "Luis Rojas"},
		uuid.New(), testCurriculum(), grades)

	// gagal = efektif KETAT di bawah ambang lulus (3.0 lulus pas)
	assert.Equal(t, []string{"Matematicas"}, r.FailedSubjects)
	assert.True(t, r.Areas[0].Subjects[0].Failed)
	assert.False(t, r.Areas[0].Subjects[1].Failed)
}

func TestPeriodReportBuilder_NoGradesAtAll(t *testing.T) {
	scale := testScale(t)
	builder := NewPeriodReportBuilder(scale)

	r := builder.Build(StudentInfo{StudentID: uuid.New(), FullName: "Sin Notas"},
		uuid.New(), testCurriculum(), map[uuid.UUID]SubjectPeriodGrade{})

	assert.Nil(t, r.OverallAverage)
	assert.Nil(t, r.OriginalAverage)
	assert.Empty(t, r.FailedSubjects)
}

func TestPeriodReportBuilder_OrderIsDeterministic(t *testing.T) {
	scale := testScale(t)
	builder := NewPeriodReportBuilder(scale)
	curriculum := testCurriculum()

	grades := map[uuid.UUID]SubjectPeriodGrade{
		subjMat: {Original: decPtr("3.0")},
		subjFis: {Original: decPtr("4.0")},
		subjEsp: {Original: decPtr("5.0")},
	}

	first := builder.Build(StudentInfo{FullName: "X"}, uuid.New(), curriculum, grades)
	for i := 0; i < 10; i++ {
		again := builder.Build(StudentInfo{FullName: "X"}, uuid.New(), curriculum, grades)
		for a := range first.Areas {
			assert.Equal(t, first.Areas[a].AreaName, again.Areas[a].AreaName)
			for s := range first.Areas[a].Subjects {
				assert.Equal(t, first.Areas[a].Subjects[s].SubjectName, again.Areas[a].Subjects[s].SubjectName)
			}
		}
	}
}
