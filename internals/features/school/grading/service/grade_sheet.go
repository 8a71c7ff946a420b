// file: internals/features/school/grading/service/grade_sheet.go
package service

import (
	"github.com/shopspring/decimal"

	gradingDTO "sekolahku_backend/internals/features/school/grading/dto"
)

// BuildGradeSheet sabana kumulatif satu kelas: matriks
// siswa × subject × periode (nilai efektif per sel), nilai tahunan per
// subject, dan rata-rata keseluruhan tahunan per siswa.
//
// Sabana memakai ranking SHARED-WITH-GAP (1224) — kebijakan warisan
// lembar kumulatif, berbeda dari boletín — tetap berbasis rata-rata
// PRA-recovery.
func BuildGradeSheet(snap *GradingSnapshot) gradingDTO.GradeSheet {
	agg := NewAnnualAggregator(snap.Scale)
	passing := snap.Scale.PassingThreshold()

	sheet := gradingDTO.GradeSheet{
		ClassID:   snap.ClassID,
		Year:      snap.Year,
		PeriodIDs: snap.PeriodIDs,
		Students:  make([]gradingDTO.GradeSheetStudent, 0, len(snap.Students)),
	}

	entries := make([]RankEntry, 0, len(snap.Students))

	for _, st := range snap.Students {
		col := gradingDTO.GradeSheetStudent{
			StudentID:   st.StudentID,
			StudentName: st.FullName,
		}

		for _, area := range snap.Curriculum {
			for _, subj := range area.Subjects {
				row := gradingDTO.GradeSheetSubjectRow{
					SubjectID:   subj.SubjectID,
					SubjectName: subj.Name,
					Cells:       make([]gradingDTO.GradeSheetCell, 0, len(snap.PeriodIDs)),
				}

				effs := make([]*decimal.Decimal, 0, len(snap.PeriodIDs))
				for _, pid := range snap.PeriodIDs {
					g := snap.Grades[st.StudentID][subj.SubjectID][pid]
					eff, recovered := ApplyRecovery(g.Original, g.Recovery, passing)
					row.Cells = append(row.Cells, gradingDTO.GradeSheetCell{
						PeriodID:     pid,
						Grade:        eff,
						WasRecovered: recovered,
					})
					effs = append(effs, eff)
				}
				row.AnnualGrade = annualMean(effs)
				col.Subjects = append(col.Subjects, row)
			}
		}

		// rata-rata keseluruhan tahunan: jalur agregasi yang sama dengan
		// laporan tahunan, supaya sabana dan laporan akhir tidak pernah selisih
		annual := agg.Build(st, snap.Year, snap.PeriodIDs, snap.Curriculum, snap.Grades[st.StudentID])
		col.OverallAverage = annual.OverallAverage
		col.OriginalAverage = annual.OriginalAverage

		sheet.Students = append(sheet.Students, col)
		entries = append(entries, RankEntry{
			StudentID:   st.StudentID,
			StudentName: st.FullName,
			Average:     annual.OriginalAverage,
		})
	}

	pos := rankPositions(RankSharedWithGap(entries))
	for i := range sheet.Students {
		sheet.Students[i].Rank = pos[sheet.Students[i].StudentID]
	}
	return sheet
}
