// file: internals/features/school/grading/service/period_report.go
package service

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	gradingDTO "sekolahku_backend/internals/features/school/grading/dto"
)

/* =========================================================
   Kurikulum ter-load (snapshot in-memory).
   Urutan slice = urutan tampil di rapor; builder tidak pernah
   mengubah urutan (renderer PDF/Excel menata posisional).
   ========================================================= */

// SubjectCurriculum satu subject dalam kurikulum kelas
type SubjectCurriculum struct {
	SubjectID    uuid.UUID
	Name         string
	Abbreviation *string

	// Jam pelajaran dari teaching assignment; 0 + HasAssignment=false
	// berarti subject ada di kurikulum tapi tidak diajar di kelas ini
	// (MissingAssignment: tidak fatal, tidak menyumbang nilai).
	CreditHours   int
	HasAssignment bool

	// Bobot persen eksplisit subject dalam area; nil ⇒ pakai jam pelajaran
	AreaWeightPercent *decimal.Decimal

	// Bobot dimensi SER/SABER/HACER untuk resolver
	Weights DimensionWeights
}

// areaWeight bobot subject pada agregasi area
func (s SubjectCurriculum) areaWeight() decimal.Decimal {
	if s.AreaWeightPercent != nil {
		return *s.AreaWeightPercent
	}
	return decimal.NewFromInt(int64(s.CreditHours))
}

// AreaCurriculum satu area + subject-nya, urut posisi
type AreaCurriculum struct {
	AreaID   uuid.UUID
	Name     string
	Subjects []SubjectCurriculum
}

// SubjectPeriodGrade nilai satu subject satu periode: asli + recovery
type SubjectPeriodGrade struct {
	Original *decimal.Decimal
	Recovery *decimal.Decimal
}

// StudentInfo identitas siswa secukupnya untuk payload laporan
type StudentInfo struct {
	StudentID uuid.UUID
	FullName  string
}

/* =========================================================
   PeriodReportBuilder — boletín satu periode
   ========================================================= */

type PeriodReportBuilder struct {
	Scale *GradeScale
}

func NewPeriodReportBuilder(scale *GradeScale) *PeriodReportBuilder {
	return &PeriodReportBuilder{Scale: scale}
}

// Build menyusun rapor periode satu siswa: breakdown per area, rata-rata
// keseluruhan (berbobot jam pelajaran per area, 2 desimal), label
// kualitatif via grade scale, daftar subject gagal, dan counter
// distribusi label. Rank diisi belakangan oleh RankingEngine.
func (b *PeriodReportBuilder) Build(
	student StudentInfo,
	periodID uuid.UUID,
	curriculum []AreaCurriculum,
	grades map[uuid.UUID]SubjectPeriodGrade,
) gradingDTO.PeriodReport {
	passing := b.Scale.PassingThreshold()

	report := gradingDTO.PeriodReport{
		StudentID:      student.StudentID,
		StudentName:    student.FullName,
		PeriodID:       periodID,
		Areas:          make([]gradingDTO.AreaReport, 0, len(curriculum)),
		Distribution:   map[string]int{},
		FailedSubjects: []string{},
	}

	// akumulator rata-rata keseluruhan (efektif dan pra-recovery)
	overallSum, overallWeight := decimal.Zero, decimal.Zero
	originalSum, originalWeight := decimal.Zero, decimal.Zero

	for _, area := range curriculum {
		areaReport := gradingDTO.AreaReport{
			AreaID:   area.AreaID,
			AreaName: area.Name,
			Subjects: make([]gradingDTO.SubjectLine, 0, len(area.Subjects)),
		}

		effInputs := make([]AreaSubjectGrade, 0, len(area.Subjects))
		origInputs := make([]AreaSubjectGrade, 0, len(area.Subjects))

		for _, subj := range area.Subjects {
			g := grades[subj.SubjectID]
			effective, recovered := ApplyRecovery(g.Original, g.Recovery, passing)

			line := gradingDTO.SubjectLine{
				SubjectID:      subj.SubjectID,
				SubjectName:    subj.Name,
				Abbreviation:   subj.Abbreviation,
				CreditHours:    subj.CreditHours,
				OriginalGrade:  g.Original,
				RecoveryGrade:  g.Recovery,
				EffectiveGrade: effective,
				WasRecovered:   recovered,
			}
			if effective != nil {
				line.Label = b.Scale.LabelFor(*effective)
				line.Failed = b.Scale.IsFailing(*effective)
				report.Distribution[line.Label]++
				if line.Failed {
					report.FailedSubjects = append(report.FailedSubjects, subj.Name)
				}
			}
			areaReport.Subjects = append(areaReport.Subjects, line)

			effInputs = append(effInputs, AreaSubjectGrade{
				SubjectID:   subj.SubjectID,
				Grade:       effective,
				Weight:      subj.areaWeight(),
				CreditHours: subj.CreditHours,
			})
			origInputs = append(origInputs, AreaSubjectGrade{
				SubjectID:   subj.SubjectID,
				Grade:       g.Original,
				Weight:      subj.areaWeight(),
				CreditHours: subj.CreditHours,
			})
		}

		avg, hoursGraded := AggregateArea(effInputs)
		areaReport.Average = avg
		areaReport.CreditHoursGraded = hoursGraded
		if avg != nil {
			areaReport.Label = b.Scale.LabelFor(*avg)
			areaReport.Failed = b.Scale.IsFailing(*avg)
			report.Distribution[areaReport.Label]++

			hours := decimal.NewFromInt(int64(hoursGraded))
			overallSum = overallSum.Add(avg.Mul(hours))
			overallWeight = overallWeight.Add(hours)
		}

		if origAvg, origHours := AggregateArea(origInputs); origAvg != nil {
			hours := decimal.NewFromInt(int64(origHours))
			originalSum = originalSum.Add(origAvg.Mul(hours))
			originalWeight = originalWeight.Add(hours)
		}

		report.Areas = append(report.Areas, areaReport)
	}

	// Σ(bobot)=0 ⇒ nil, bukan nol: nol adalah nilai gagal yang sah
	if !overallWeight.IsZero() {
		v := overallSum.Div(overallWeight).Round(2)
		report.OverallAverage = &v
	}
	if !originalWeight.IsZero() {
		v := originalSum.Div(originalWeight).Round(2)
		report.OriginalAverage = &v
	}

	return report
}
