// file: internals/features/school/grading/dto/report_dto.go
package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

/* =========================================================
   Payload laporan terstruktur untuk renderer eksternal
   (PDF/Excel). Urutan area & subject DETERMINISTIK mengikuti
   urutan kurikulum yang diberikan caller — renderer menata
   secara posisional, jangan diacak.
   ========================================================= */

// SubjectLine satu baris mata pelajaran pada rapor
type SubjectLine struct {
	SubjectID    uuid.UUID `json:"subject_id"`
	SubjectName  string    `json:"subject_name"`
	Abbreviation *string   `json:"abbreviation,omitempty"`
	CreditHours  int       `json:"credit_hours"`

	// Nilai asli vs hasil nivelación dipisah: rapor menampilkan
	// keduanya, ranking hanya memakai yang asli.
	OriginalGrade  *decimal.Decimal `json:"original_grade"`
	RecoveryGrade  *decimal.Decimal `json:"recovery_grade,omitempty"`
	EffectiveGrade *decimal.Decimal `json:"effective_grade"`
	WasRecovered   bool             `json:"was_recovered"`

	Label  string `json:"label"`
	Failed bool   `json:"failed"`
}

// AreaReport satu blok area pada rapor
type AreaReport struct {
	AreaID   uuid.UUID     `json:"area_id"`
	AreaName string        `json:"area_name"`
	Subjects []SubjectLine `json:"subjects"`

	Average *decimal.Decimal `json:"average"`
	Label   string           `json:"label,omitempty"`

	// Jam pelajaran dari subject yang benar-benar punya nilai;
	// bobot area pada rata-rata keseluruhan periode.
	CreditHoursGraded int  `json:"credit_hours_graded"`
	Failed            bool `json:"failed"`
}

// PeriodReport rapor satu siswa untuk satu periode (boletín)
type PeriodReport struct {
	StudentID   uuid.UUID `json:"student_id"`
	StudentName string    `json:"student_name"`
	PeriodID    uuid.UUID `json:"period_id"`

	Areas []AreaReport `json:"areas"`

	OverallAverage *decimal.Decimal `json:"overall_average"`
	// Rata-rata PRA-recovery; satu-satunya basis ranking
	OriginalAverage *decimal.Decimal `json:"original_average"`

	// Jumlah nilai subject per label kualitatif
	Distribution map[string]int `json:"distribution"`

	FailedSubjects []string `json:"failed_subjects"`

	Rank int `json:"rank"`
}

// AnnualSubjectLine nilai tahunan satu subject (rata-rata efektif antar periode)
type AnnualSubjectLine struct {
	SubjectID   uuid.UUID `json:"subject_id"`
	SubjectName string    `json:"subject_name"`
	CreditHours int       `json:"credit_hours"`

	// Nilai per periode (nil bila periode itu kosong), urut nomor periode
	PeriodGrades []*decimal.Decimal `json:"period_grades"`

	AnnualGrade *decimal.Decimal `json:"annual_grade"`
	Label       string           `json:"label"`
	Failed      bool             `json:"failed"`
}

// AnnualAreaReport area pada laporan tahunan
type AnnualAreaReport struct {
	AreaID   uuid.UUID           `json:"area_id"`
	AreaName string              `json:"area_name"`
	Subjects []AnnualSubjectLine `json:"subjects"`

	Average *decimal.Decimal `json:"average"`
	Label   string           `json:"label,omitempty"`
	Failed  bool             `json:"failed"`
}

// AnnualReport laporan akhir tahun satu siswa
type AnnualReport struct {
	StudentID   uuid.UUID `json:"student_id"`
	StudentName string    `json:"student_name"`
	Year        int       `json:"year"`

	Areas []AnnualAreaReport `json:"areas"`

	OverallAverage  *decimal.Decimal `json:"overall_average"`
	OriginalAverage *decimal.Decimal `json:"original_average"`

	FailedSubjects []string `json:"failed_subjects"`
	FailedAreas    []string `json:"failed_areas"`

	Rank      int    `json:"rank"`
	Promotion string `json:"promotion"` // PROMOTED | NOT_PROMOTED
}

// GradeSheetCell satu sel sabana: nilai subject satu siswa satu periode
type GradeSheetCell struct {
	PeriodID     uuid.UUID        `json:"period_id"`
	Grade        *decimal.Decimal `json:"grade"`
	WasRecovered bool             `json:"was_recovered"`
}

// GradeSheetSubjectRow baris sabana per subject
type GradeSheetSubjectRow struct {
	SubjectID   uuid.UUID        `json:"subject_id"`
	SubjectName string           `json:"subject_name"`
	Cells       []GradeSheetCell `json:"cells"`
	AnnualGrade *decimal.Decimal `json:"annual_grade"`
}

// GradeSheetStudent satu kolom siswa pada sabana kumulatif
type GradeSheetStudent struct {
	StudentID   uuid.UUID              `json:"student_id"`
	StudentName string                 `json:"student_name"`
	Subjects    []GradeSheetSubjectRow `json:"subjects"`

	OverallAverage  *decimal.Decimal `json:"overall_average"`
	OriginalAverage *decimal.Decimal `json:"original_average"`

	// Sabana memakai ranking shared-with-gap (1224)
	Rank int `json:"rank"`
}

// GradeSheet sabana kumulatif satu kelas
type GradeSheet struct {
	ClassID   uuid.UUID           `json:"class_id"`
	Year      int                 `json:"year"`
	PeriodIDs []uuid.UUID         `json:"period_ids"`
	Students  []GradeSheetStudent `json:"students"`
}
