// file: internals/features/school/grading/model/teaching_assignment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeachingAssignmentModel merepresentasikan tabel `teaching_assignments`:
// (guru, subject, kelas) + jam pelajaran per minggu.
// Credit hours dipakai sebagai bobot default agregasi area bila tidak ada
// bobot persentase eksplisit di area_subject_weights.
type TeachingAssignmentModel struct {
	TeachingAssignmentID       uuid.UUID `json:"teaching_assignment_id" gorm:"column:teaching_assignment_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	TeachingAssignmentSchoolID uuid.UUID `json:"teaching_assignment_school_id" gorm:"column:teaching_assignment_school_id;type:uuid;not null;index:idx_teaching_assignments_school_class,priority:1"`

	TeachingAssignmentTeacherID uuid.UUID `json:"teaching_assignment_teacher_id" gorm:"column:teaching_assignment_teacher_id;type:uuid;not null;index:idx_teaching_assignments_teacher"`
	TeachingAssignmentSubjectID uuid.UUID `json:"teaching_assignment_subject_id" gorm:"column:teaching_assignment_subject_id;type:uuid;not null;uniqueIndex:uq_teaching_assignments_subject_class,priority:1"`
	TeachingAssignmentClassID   uuid.UUID `json:"teaching_assignment_class_id"   gorm:"column:teaching_assignment_class_id;type:uuid;not null;index:idx_teaching_assignments_school_class,priority:2;uniqueIndex:uq_teaching_assignments_subject_class,priority:2"`

	TeachingAssignmentCreditHours int `json:"teaching_assignment_credit_hours" gorm:"column:teaching_assignment_credit_hours;not null;default:1"`

	// Bobot dimensi SER/SABER/HACER (persen bulat, jumlah 100).
	// Ketiganya NULL ⇒ pakai pembagian rata 33.33/33.33/33.34.
	// Validasi jumlah 100 terjadi di DTO (write boundary), bukan di engine.
	TeachingAssignmentSerPercent   *int `json:"teaching_assignment_ser_percent"   gorm:"column:teaching_assignment_ser_percent"`
	TeachingAssignmentSaberPercent *int `json:"teaching_assignment_saber_percent" gorm:"column:teaching_assignment_saber_percent"`
	TeachingAssignmentHacerPercent *int `json:"teaching_assignment_hacer_percent" gorm:"column:teaching_assignment_hacer_percent"`

	TeachingAssignmentCreatedAt time.Time      `json:"teaching_assignment_created_at" gorm:"column:teaching_assignment_created_at;not null;autoCreateTime"`
	TeachingAssignmentUpdatedAt time.Time      `json:"teaching_assignment_updated_at" gorm:"column:teaching_assignment_updated_at;not null;autoUpdateTime"`
	TeachingAssignmentDeletedAt gorm.DeletedAt `json:"teaching_assignment_deleted_at" gorm:"column:teaching_assignment_deleted_at;index"`
}

func (TeachingAssignmentModel) TableName() string { return "teaching_assignments" }

// HasExplicitWeights true bila ketiga persen dimensi terisi.
func (m *TeachingAssignmentModel) HasExplicitWeights() bool {
	return m.TeachingAssignmentSerPercent != nil &&
		m.TeachingAssignmentSaberPercent != nil &&
		m.TeachingAssignmentHacerPercent != nil
}
