// file: internals/features/school/grading/model/recovery_plan_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RecoveryPlanModel merepresentasikan tabel `recovery_plans`:
// catatan KENAPA sebuah nivelación terjadi. Kolom grade di sini
// mencerminkan baris RECOVERY di tabel grades; keduanya wajib
// dibuat/dihapus bersama dalam satu transaksi (lihat controller).
type RecoveryPlanModel struct {
	RecoveryPlanID       uuid.UUID `json:"recovery_plan_id" gorm:"column:recovery_plan_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	RecoveryPlanSchoolID uuid.UUID `json:"recovery_plan_school_id" gorm:"column:recovery_plan_school_id;type:uuid;not null;index:idx_recovery_plans_school"`

	RecoveryPlanStudentID            uuid.UUID `json:"recovery_plan_student_id" gorm:"column:recovery_plan_student_id;type:uuid;not null;uniqueIndex:uq_recovery_plans_scope,priority:1"`
	RecoveryPlanTeachingAssignmentID uuid.UUID `json:"recovery_plan_teaching_assignment_id" gorm:"column:recovery_plan_teaching_assignment_id;type:uuid;not null;uniqueIndex:uq_recovery_plans_scope,priority:2"`
	RecoveryPlanPeriodID             uuid.UUID `json:"recovery_plan_period_id" gorm:"column:recovery_plan_period_id;type:uuid;not null;uniqueIndex:uq_recovery_plans_scope,priority:3"`

	// Deskripsi kegiatan remediasi (teks bebas dari guru)
	RecoveryPlanDescription string `json:"recovery_plan_description" gorm:"column:recovery_plan_description;type:text;not null"`

	// Nilai remedial; NULL selama remediasi belum dinilai
	RecoveryPlanGrade *decimal.Decimal `json:"recovery_plan_grade" gorm:"column:recovery_plan_grade;type:numeric(5,2)"`

	// Catatan observasi turunan (muncul di rapor); ikut dihapus saat recovery dicabut
	RecoveryPlanNote *string `json:"recovery_plan_note" gorm:"column:recovery_plan_note;type:text"`

	RecoveryPlanMeta datatypes.JSON `json:"recovery_plan_meta" gorm:"column:recovery_plan_meta;type:jsonb"`

	RecoveryPlanCreatedAt time.Time      `json:"recovery_plan_created_at" gorm:"column:recovery_plan_created_at;not null;autoCreateTime"`
	RecoveryPlanUpdatedAt time.Time      `json:"recovery_plan_updated_at" gorm:"column:recovery_plan_updated_at;not null;autoUpdateTime"`
	RecoveryPlanDeletedAt gorm.DeletedAt `json:"recovery_plan_deleted_at" gorm:"column:recovery_plan_deleted_at;index"`
}

func (RecoveryPlanModel) TableName() string { return "recovery_plans" }
