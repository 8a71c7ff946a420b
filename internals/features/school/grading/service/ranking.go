// file: internals/features/school/grading/service/ranking.go
package service

import (
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RankEntry satu siswa dalam kohort ranking.
// Average WAJIB rata-rata PRA-recovery (OriginalAverage dari builder):
// nivelación memperbaiki hasil promosi/tampilan, tapi tidak boleh
// mengubah posisi kompetitif di kelas.
type RankEntry struct {
	StudentID   uuid.UUID
	StudentName string
	Average     *decimal.Decimal
	Position    int
}

// sortCohort urut menurun by Average; nil paling bawah; seri dipecah
// stabil by nama lalu ID — input sama selalu menghasilkan urutan sama.
func sortCohort(entries []RankEntry) []RankEntry {
	out := make([]RankEntry, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].Average, out[j].Average
		switch {
		case a == nil && b == nil:
			// jatuh ke tie-break nama
		case a == nil:
			return false
		case b == nil:
			return true
		case !a.Equal(*b):
			return a.GreaterThan(*b)
		}
		if out[i].StudentName != out[j].StudentName {
			return out[i].StudentName < out[j].StudentName
		}
		return out[i].StudentID.String() < out[j].StudentID.String()
	})
	return out
}

// tiedWithPrev true bila dua entry dianggap seri (rata-rata sama, atau
// sama-sama tanpa rata-rata).
func tiedWithPrev(cur, prev RankEntry) bool {
	if cur.Average == nil || prev.Average == nil {
		return cur.Average == nil && prev.Average == nil
	}
	return cur.Average.Equal(*prev.Average)
}

// RankSequential posisi 1..N berurutan ketat; seri dipecah arbitrer tapi
// stabil (nama). Dipakai boletín periode dan laporan tahunan.
func RankSequential(entries []RankEntry) []RankEntry {
	out := sortCohort(entries)
	for i := range out {
		out[i].Position = i + 1
	}
	return out
}

// RankSharedWithGap ranking 1-2-2-4: siswa seri berbagi posisi, posisi
// berikutnya melompat sebanyak jumlah yang seri. Dipakai sabana kumulatif.
func RankSharedWithGap(entries []RankEntry) []RankEntry {
	out := sortCohort(entries)
	for i := range out {
		if i > 0 && tiedWithPrev(out[i], out[i-1]) {
			out[i].Position = out[i-1].Position
			continue
		}
		out[i].Position = i + 1
	}
	return out
}
