// file: internals/features/school/grading/model/student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StudentModel merepresentasikan tabel `students`
type StudentModel struct {
	// PK
	StudentID uuid.UUID `json:"student_id" gorm:"column:student_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	// Tenant
	StudentSchoolID uuid.UUID `json:"student_school_id" gorm:"column:student_school_id;type:uuid;not null;index:idx_students_school_class,priority:1"`

	// Enrollment (kelas/cohort)
	StudentClassID uuid.UUID `json:"student_class_id" gorm:"column:student_class_id;type:uuid;not null;index:idx_students_school_class,priority:2"`

	StudentFullName string `json:"student_full_name" gorm:"column:student_full_name;type:varchar(160);not null"`
	StudentCode     string `json:"student_code"      gorm:"column:student_code;type:varchar(40);not null;uniqueIndex:uq_students_school_code,priority:2"`

	StudentIsActive bool `json:"student_is_active" gorm:"column:student_is_active;not null;default:true"`

	// Timestamps
	StudentCreatedAt time.Time      `json:"student_created_at" gorm:"column:student_created_at;not null;autoCreateTime"`
	StudentUpdatedAt time.Time      `json:"student_updated_at" gorm:"column:student_updated_at;not null;autoUpdateTime"`
	StudentDeletedAt gorm.DeletedAt `json:"student_deleted_at" gorm:"column:student_deleted_at;index"`
}

func (StudentModel) TableName() string { return "students" }
