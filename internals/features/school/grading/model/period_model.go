// file: internals/features/school/grading/model/period_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PeriodModel merepresentasikan tabel `periods` (periode akademik).
// Tiga flag aktivasi independen; operasi penilaian WAJIB cek flag
// yang sesuai sebelum menulis:
//   - grade_entry_open : guru boleh input nilai periode
//   - interim_open     : laporan tengah periode boleh diakses
//   - recovery_open    : jendela nivelación (nilai remedial) terbuka
type PeriodModel struct {
	PeriodID       uuid.UUID `json:"period_id" gorm:"column:period_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	PeriodSchoolID uuid.UUID `json:"period_school_id" gorm:"column:period_school_id;type:uuid;not null;index:idx_periods_school_year,priority:1"`

	PeriodName string `json:"period_name" gorm:"column:period_name;type:varchar(40);not null"`
	PeriodYear int    `json:"period_year" gorm:"column:period_year;not null;index:idx_periods_school_year,priority:2"`

	// Urutan periode dalam tahun ajaran (1..n)
	PeriodNumber int `json:"period_number" gorm:"column:period_number;not null"`

	PeriodStartDate time.Time `json:"period_start_date" gorm:"column:period_start_date;type:date;not null"`
	PeriodEndDate   time.Time `json:"period_end_date"   gorm:"column:period_end_date;type:date;not null"`

	PeriodGradeEntryOpen bool `json:"period_grade_entry_open" gorm:"column:period_grade_entry_open;not null;default:false"`
	PeriodInterimOpen    bool `json:"period_interim_open"     gorm:"column:period_interim_open;not null;default:false"`
	PeriodRecoveryOpen   bool `json:"period_recovery_open"    gorm:"column:period_recovery_open;not null;default:false"`

	PeriodCreatedAt time.Time      `json:"period_created_at" gorm:"column:period_created_at;not null;autoCreateTime"`
	PeriodUpdatedAt time.Time      `json:"period_updated_at" gorm:"column:period_updated_at;not null;autoUpdateTime"`
	PeriodDeletedAt gorm.DeletedAt `json:"period_deleted_at" gorm:"column:period_deleted_at;index"`
}

func (PeriodModel) TableName() string { return "periods" }
