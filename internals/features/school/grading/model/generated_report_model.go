// file: internals/features/school/grading/model/generated_report_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// Jenis laporan yang dihasilkan engine
const (
	ReportTypePeriod     = "PERIOD_REPORT_CARD" // boletín periode
	ReportTypeAnnual     = "ANNUAL_FINAL"       // laporan akhir tahun
	ReportTypeGradeSheet = "GRADE_SHEET"        // sabana kumulatif
)

// GeneratedReportModel merepresentasikan tabel `generated_reports`:
// jejak audit setiap laporan yang dirender. BUKAN sumber data —
// laporan selalu dihitung ulang on-demand dari grades; baris ini hanya
// menyimpan snapshot payload yang diberikan ke renderer PDF/Excel.
type GeneratedReportModel struct {
	GeneratedReportID       uuid.UUID `json:"generated_report_id" gorm:"column:generated_report_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	GeneratedReportSchoolID uuid.UUID `json:"generated_report_school_id" gorm:"column:generated_report_school_id;type:uuid;not null;index:idx_generated_reports_school"`

	GeneratedReportStudentID uuid.UUID  `json:"generated_report_student_id" gorm:"column:generated_report_student_id;type:uuid;not null;index:idx_generated_reports_student"`
	GeneratedReportClassID   uuid.UUID  `json:"generated_report_class_id"   gorm:"column:generated_report_class_id;type:uuid;not null"`
	GeneratedReportPeriodID  *uuid.UUID `json:"generated_report_period_id"  gorm:"column:generated_report_period_id;type:uuid"`
	GeneratedReportYear      int        `json:"generated_report_year"       gorm:"column:generated_report_year;not null"`

	GeneratedReportType string `json:"generated_report_type" gorm:"column:generated_report_type;type:varchar(32);not null"`

	GeneratedReportPayload datatypes.JSON `json:"generated_report_payload" gorm:"column:generated_report_payload;type:jsonb;not null"`

	GeneratedReportFailedSubjects pq.StringArray `json:"generated_report_failed_subjects" gorm:"column:generated_report_failed_subjects;type:text[]"`

	GeneratedReportCreatedAt time.Time `json:"generated_report_created_at" gorm:"column:generated_report_created_at;not null;autoCreateTime"`
}

func (GeneratedReportModel) TableName() string { return "generated_reports" }
