// file: internals/features/school/statistics/service/statistics.go
package service

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	gradingDTO "sekolahku_backend/internals/features/school/grading/dto"
)

// StatsFilter parameter lengkap satu perhitungan statistik.
// SchoolID SELALU bagian dari key — cache tidak boleh bocor antar tenant.
type StatsFilter struct {
	SchoolID uuid.UUID
	ClassID  uuid.UUID
	PeriodID uuid.UUID
	Year     int
}

// Key key memoization deterministik dari SEMUA field filter
func (f StatsFilter) Key() string {
	return fmt.Sprintf("%s|%s|%s|%d", f.SchoolID, f.ClassID, f.PeriodID, f.Year)
}

// SubjectFailureCount jumlah siswa gagal per subject
type SubjectFailureCount struct {
	SubjectID   uuid.UUID `json:"subject_id"`
	SubjectName string    `json:"subject_name"`
	Failures    int       `json:"failures"`
}

// ClassStatistics hasil agregat satu kelas/periode
type ClassStatistics struct {
	Filter       StatsFilter      `json:"filter"`
	StudentCount int              `json:"student_count"`
	ClassAverage *decimal.Decimal `json:"class_average"`

	// label kualitatif → jumlah nilai subject
	Distribution map[string]int `json:"distribution"`

	SubjectFailures []SubjectFailureCount `json:"subject_failures"`

	// siswa dengan ≥1 subject gagal
	StudentsWithFailures int `json:"students_with_failures"`
}

/* =========================================================
   StatsCache — memoization REQUEST-SCOPED.
   Bukan state proses: controller membuat cache baru di awal
   setiap request statistik, jadi tidak ada kebocoran hasil
   antar request/tenant dan tidak perlu penguncian.
   ========================================================= */

type StatsCache struct {
	entries map[string]*ClassStatistics
}

func NewStatsCache() *StatsCache {
	return &StatsCache{entries: map[string]*ClassStatistics{}}
}

func (c *StatsCache) Len() int { return len(c.entries) }

// Calculator menghitung statistik kelas di atas payload rapor periode
// yang sudah dibangun engine grading. Murni in-memory.
type Calculator struct {
	cache *StatsCache
}

func NewCalculator(cache *StatsCache) *Calculator {
	return &Calculator{cache: cache}
}

// ClassStatistics statistik satu kelas/periode, memoized by filter key.
func (c *Calculator) ClassStatistics(filter StatsFilter, reports []gradingDTO.PeriodReport) *ClassStatistics {
	if hit, ok := c.cache.entries[filter.Key()]; ok {
		return hit
	}

	stats := &ClassStatistics{
		Filter:       filter,
		StudentCount: len(reports),
		Distribution: map[string]int{},
	}

	sum := decimal.Zero
	n := 0
	failuresBySubject := map[uuid.UUID]*SubjectFailureCount{}
	subjectOrder := []uuid.UUID{}

	for _, r := range reports {
		if r.OverallAverage != nil {
			sum = sum.Add(*r.OverallAverage)
			n++
		}
		if len(r.FailedSubjects) > 0 {
			stats.StudentsWithFailures++
		}
		for _, area := range r.Areas {
			for _, subj := range area.Subjects {
				if subj.EffectiveGrade == nil {
					continue
				}
				stats.Distribution[subj.Label]++
				if !subj.Failed {
					continue
				}
				fc, ok := failuresBySubject[subj.SubjectID]
				if !ok {
					fc = &SubjectFailureCount{SubjectID: subj.SubjectID, SubjectName: subj.SubjectName}
					failuresBySubject[subj.SubjectID] = fc
					subjectOrder = append(subjectOrder, subj.SubjectID)
				}
				fc.Failures++
			}
		}
	}

	if n > 0 {
		v := sum.Div(decimal.NewFromInt(int64(n))).Round(2)
		stats.ClassAverage = &v
	}

	stats.SubjectFailures = make([]SubjectFailureCount, 0, len(subjectOrder))
	for _, id := range subjectOrder {
		stats.SubjectFailures = append(stats.SubjectFailures, *failuresBySubject[id])
	}
	// terbanyak dulu; seri by nama supaya deterministik
	sort.SliceStable(stats.SubjectFailures, func(i, j int) bool {
		if stats.SubjectFailures[i].Failures != stats.SubjectFailures[j].Failures {
			return stats.SubjectFailures[i].Failures > stats.SubjectFailures[j].Failures
		}
		return stats.SubjectFailures[i].SubjectName < stats.SubjectFailures[j].SubjectName
	})

	c.cache.entries[filter.Key()] = stats
	return stats
}
