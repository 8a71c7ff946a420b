// file: internals/features/school/grading/model/grade_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Jenis baris nilai pada tabel `grades`.
// Invariant (ditegakkan lewat unique partial index di DDL + upsert di controller):
// maksimal satu SUBJECT_PERIOD_AVERAGE dan satu RECOVERY per (student, subject, period).
const (
	GradeKindBehavioralItem       = "BEHAVIORAL_ITEM"       // item dimensi SER
	GradeKindConceptualItem       = "CONCEPTUAL_ITEM"       // item dimensi SABER
	GradeKindPracticalItem        = "PRACTICAL_ITEM"        // item dimensi HACER
	GradeKindSubjectPeriodAverage = "SUBJECT_PERIOD_AVERAGE" // hasil resolver, satu per scope
	GradeKindRecovery             = "RECOVERY"               // nilai nivelación, satu per scope
)

// GradeItemKinds urutan tetap dimensi komponen (SER, SABER, HACER).
var GradeItemKinds = []string{
	GradeKindBehavioralItem,
	GradeKindConceptualItem,
	GradeKindPracticalItem,
}

// GradeModel merepresentasikan tabel `grades`
type GradeModel struct {
	GradeID       uuid.UUID `json:"grade_id" gorm:"column:grade_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	GradeSchoolID uuid.UUID `json:"grade_school_id" gorm:"column:grade_school_id;type:uuid;not null;index:idx_grades_school_scope,priority:1"`

	// Scope (student, subject, period)
	GradeStudentID uuid.UUID `json:"grade_student_id" gorm:"column:grade_student_id;type:uuid;not null;index:idx_grades_school_scope,priority:2"`
	GradeSubjectID uuid.UUID `json:"grade_subject_id" gorm:"column:grade_subject_id;type:uuid;not null;index:idx_grades_school_scope,priority:3"`
	GradePeriodID  uuid.UUID `json:"grade_period_id"  gorm:"column:grade_period_id;type:uuid;not null;index:idx_grades_school_scope,priority:4"`

	GradeKind        string  `json:"grade_kind"        gorm:"column:grade_kind;type:varchar(32);not null;index:idx_grades_kind"`
	GradeDescription *string `json:"grade_description" gorm:"column:grade_description;type:varchar(255)"`

	// Posisi item di dalam dimensinya, untuk urutan tampil yang stabil
	GradePosition int `json:"grade_position" gorm:"column:grade_position;not null;default:0"`

	GradeValue decimal.Decimal `json:"grade_value" gorm:"column:grade_value;type:numeric(5,2);not null"`

	GradeEnteredBy *uuid.UUID `json:"grade_entered_by" gorm:"column:grade_entered_by;type:uuid"`

	GradeCreatedAt time.Time      `json:"grade_created_at" gorm:"column:grade_created_at;not null;autoCreateTime"`
	GradeUpdatedAt time.Time      `json:"grade_updated_at" gorm:"column:grade_updated_at;not null;autoUpdateTime"`
	GradeDeletedAt gorm.DeletedAt `json:"grade_deleted_at" gorm:"column:grade_deleted_at;index"`
}

func (GradeModel) TableName() string { return "grades" }
