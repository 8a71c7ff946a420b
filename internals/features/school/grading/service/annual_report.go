// file: internals/features/school/grading/service/annual_report.go
package service

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	gradingDTO "sekolahku_backend/internals/features/school/grading/dto"
)

/* =========================================================
   AnnualAggregator — laporan akhir tahun
   ========================================================= */

type AnnualAggregator struct {
	Scale *GradeScale
}

func NewAnnualAggregator(scale *GradeScale) *AnnualAggregator {
	return &AnnualAggregator{Scale: scale}
}

// annualMean rata-rata aritmetik nilai per-periode yang ADA, 1 desimal.
// Periode tanpa nilai tidak masuk pembilang maupun penyebut — bukan nol.
func annualMean(perPeriod []*decimal.Decimal) *decimal.Decimal {
	sum := decimal.Zero
	n := 0
	for _, g := range perPeriod {
		if g == nil {
			continue
		}
		sum = sum.Add(*g)
		n++
	}
	if n == 0 {
		return nil
	}
	v := sum.Div(decimal.NewFromInt(int64(n))).Round(1)
	return &v
}

// Build menyusun laporan tahunan satu siswa.
//
//   - nilai tahunan subject = rata-rata nilai EFEKTIF antar periode yang
//     punya nilai (1 desimal),
//   - nilai area tahunan via AggregateArea (1 desimal),
//   - rata-rata keseluruhan = rata-rata TANPA bobot antar area yang punya
//     nilai (2 desimal).
//
// periodIDs wajib urut nomor periode; grades di-index
// [subjectID][periodID]. Rank & Promotion diisi caller.
func (a *AnnualAggregator) Build(
	student StudentInfo,
	year int,
	periodIDs []uuid.UUID,
	curriculum []AreaCurriculum,
	grades map[uuid.UUID]map[uuid.UUID]SubjectPeriodGrade,
) gradingDTO.AnnualReport {
	passing := a.Scale.PassingThreshold()

	report := gradingDTO.AnnualReport{
		StudentID:      student.StudentID,
		StudentName:    student.FullName,
		Year:           year,
		Areas:          make([]gradingDTO.AnnualAreaReport, 0, len(curriculum)),
		FailedSubjects: []string{},
		FailedAreas:    []string{},
	}

	overallSum, originalSum := decimal.Zero, decimal.Zero
	overallN, originalN := 0, 0

	for _, area := range curriculum {
		areaReport := gradingDTO.AnnualAreaReport{
			AreaID:   area.AreaID,
			AreaName: area.Name,
			Subjects: make([]gradingDTO.AnnualSubjectLine, 0, len(area.Subjects)),
		}

		effInputs := make([]AreaSubjectGrade, 0, len(area.Subjects))
		origInputs := make([]AreaSubjectGrade, 0, len(area.Subjects))

		for _, subj := range area.Subjects {
			perPeriodEff := make([]*decimal.Decimal, 0, len(periodIDs))
			perPeriodOrig := make([]*decimal.Decimal, 0, len(periodIDs))
			for _, pid := range periodIDs {
				g := grades[subj.SubjectID][pid]
				eff, _ := ApplyRecovery(g.Original, g.Recovery, passing)
				perPeriodEff = append(perPeriodEff, eff)
				perPeriodOrig = append(perPeriodOrig, g.Original)
			}

			annual := annualMean(perPeriodEff)
			annualOrig := annualMean(perPeriodOrig)

			line := gradingDTO.AnnualSubjectLine{
				SubjectID:    subj.SubjectID,
				SubjectName:  subj.Name,
				CreditHours:  subj.CreditHours,
				PeriodGrades: perPeriodEff,
				AnnualGrade:  annual,
			}
			if annual != nil {
				line.Label = a.Scale.LabelFor(*annual)
				line.Failed = a.Scale.IsFailing(*annual)
				if line.Failed {
					report.FailedSubjects = append(report.FailedSubjects, subj.Name)
				}
			}
			areaReport.Subjects = append(areaReport.Subjects, line)

			effInputs = append(effInputs, AreaSubjectGrade{
				SubjectID:   subj.SubjectID,
				Grade:       annual,
				Weight:      subj.areaWeight(),
				CreditHours: subj.CreditHours,
			})
			origInputs = append(origInputs, AreaSubjectGrade{
				SubjectID:   subj.SubjectID,
				Grade:       annualOrig,
				Weight:      subj.areaWeight(),
				CreditHours: subj.CreditHours,
			})
		}

		avg, _ := AggregateArea(effInputs)
		areaReport.Average = avg
		if avg != nil {
			areaReport.Label = a.Scale.LabelFor(*avg)
			areaReport.Failed = a.Scale.IsFailing(*avg)
			if areaReport.Failed {
				report.FailedAreas = append(report.FailedAreas, area.Name)
			}
			overallSum = overallSum.Add(*avg)
			overallN++
		}
		if origAvg, _ := AggregateArea(origInputs); origAvg != nil {
			originalSum = originalSum.Add(*origAvg)
			originalN++
		}

		report.Areas = append(report.Areas, areaReport)
	}

	if overallN > 0 {
		v := overallSum.Div(decimal.NewFromInt(int64(overallN))).Round(2)
		report.OverallAverage = &v
	}
	if originalN > 0 {
		v := originalSum.Div(decimal.NewFromInt(int64(originalN))).Round(2)
		report.OriginalAverage = &v
	}

	return report
}
