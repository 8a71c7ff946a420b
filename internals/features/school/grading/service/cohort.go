// file: internals/features/school/grading/service/cohort.go
package service

import (
	"github.com/google/uuid"

	gradingDTO "sekolahku_backend/internals/features/school/grading/dto"
	gradingModel "sekolahku_backend/internals/features/school/grading/model"
)

/* =========================================================
   Perakitan level kohort: builder per-siswa + ranking +
   (untuk tahunan) evaluasi promosi. Tiap jenis laporan
   MENDEKLARASIKAN kebijakan ranking-nya:
     - boletín periode & laporan tahunan → RankSequential
     - sabana kumulatif                  → RankSharedWithGap
   Kebijakan tidak pernah dicampur dalam satu laporan.
   ========================================================= */

// BuildPeriodReports boletín seluruh kelas untuk satu periode,
// urutan siswa mengikuti snapshot (by nama), rank sequential
// berbasis rata-rata PRA-recovery.
func BuildPeriodReports(snap *GradingSnapshot, periodID uuid.UUID) []gradingDTO.PeriodReport {
	builder := NewPeriodReportBuilder(snap.Scale)

	reports := make([]gradingDTO.PeriodReport, 0, len(snap.Students))
	entries := make([]RankEntry, 0, len(snap.Students))
	for _, st := range snap.Students {
		r := builder.Build(st, periodID, snap.Curriculum, snap.GradesForPeriod(st.StudentID, periodID))
		reports = append(reports, r)
		entries = append(entries, RankEntry{
			StudentID:   st.StudentID,
			StudentName: st.FullName,
			Average:     r.OriginalAverage,
		})
	}

	applyRanks(reports, RankSequential(entries))
	return reports
}

// BuildAnnualReports laporan akhir tahun seluruh kelas: agregasi
// tahunan, rank sequential pra-recovery, lalu evaluasi promosi
// per promotion_config sekolah. Config hilang ⇒ ConfigurationError.
func BuildAnnualReports(snap *GradingSnapshot) ([]gradingDTO.AnnualReport, error) {
	cfg, err := snap.RequirePromotionConfig()
	if err != nil {
		return nil, err
	}

	agg := NewAnnualAggregator(snap.Scale)

	reports := make([]gradingDTO.AnnualReport, 0, len(snap.Students))
	entries := make([]RankEntry, 0, len(snap.Students))
	for _, st := range snap.Students {
		r := agg.Build(st, snap.Year, snap.PeriodIDs, snap.Curriculum, snap.Grades[st.StudentID])

		failed := len(r.FailedAreas)
		if cfg.PromotionConfigCountBy == gradingModel.PromotionCountBySubjects {
			failed = len(r.FailedSubjects)
		}
		r.Promotion = EvaluatePromotion(failed, cfg.PromotionConfigMaxFailures)

		reports = append(reports, r)
		entries = append(entries, RankEntry{
			StudentID:   st.StudentID,
			StudentName: st.FullName,
			Average:     r.OriginalAverage,
		})
	}

	ranked := RankSequential(entries)
	pos := rankPositions(ranked)
	for i := range reports {
		reports[i].Rank = pos[reports[i].StudentID]
	}
	return reports, nil
}

// applyRanks menuliskan posisi hasil ranking kembali ke laporan periode
func applyRanks(reports []gradingDTO.PeriodReport, ranked []RankEntry) {
	pos := rankPositions(ranked)
	for i := range reports {
		reports[i].Rank = pos[reports[i].StudentID]
	}
}

func rankPositions(ranked []RankEntry) map[uuid.UUID]int {
	pos := make(map[uuid.UUID]int, len(ranked))
	for _, e := range ranked {
		pos[e.StudentID] = e.Position
	}
	return pos
}
