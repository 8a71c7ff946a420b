// file: internals/features/school/grading/model/subject_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AreaModel merepresentasikan tabel `areas` (rumpun mata pelajaran, mis. "Ciencias")
type AreaModel struct {
	AreaID       uuid.UUID `json:"area_id" gorm:"column:area_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	AreaSchoolID uuid.UUID `json:"area_school_id" gorm:"column:area_school_id;type:uuid;not null;index:idx_areas_school"`

	AreaName string `json:"area_name" gorm:"column:area_name;type:varchar(120);not null"`

	// Urutan tampil di rapor; renderer PDF/Excel bergantung pada urutan ini
	AreaPosition int `json:"area_position" gorm:"column:area_position;not null;default:0"`

	AreaCreatedAt time.Time      `json:"area_created_at" gorm:"column:area_created_at;not null;autoCreateTime"`
	AreaUpdatedAt time.Time      `json:"area_updated_at" gorm:"column:area_updated_at;not null;autoUpdateTime"`
	AreaDeletedAt gorm.DeletedAt `json:"area_deleted_at" gorm:"column:area_deleted_at;index"`
}

func (AreaModel) TableName() string { return "areas" }

// SubjectModel merepresentasikan tabel `subjects`
type SubjectModel struct {
	SubjectID       uuid.UUID `json:"subject_id" gorm:"column:subject_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	SubjectSchoolID uuid.UUID `json:"subject_school_id" gorm:"column:subject_school_id;type:uuid;not null;index:idx_subjects_school"`

	// Area boleh NULL: subject tanpa area tidak ikut agregasi area
	SubjectAreaID *uuid.UUID `json:"subject_area_id" gorm:"column:subject_area_id;type:uuid;index:idx_subjects_area"`

	SubjectName         string  `json:"subject_name"         gorm:"column:subject_name;type:varchar(120);not null"`
	SubjectAbbreviation *string `json:"subject_abbreviation" gorm:"column:subject_abbreviation;type:varchar(24)"`

	// Urutan tampil dalam area
	SubjectPosition int `json:"subject_position" gorm:"column:subject_position;not null;default:0"`

	SubjectCreatedAt time.Time      `json:"subject_created_at" gorm:"column:subject_created_at;not null;autoCreateTime"`
	SubjectUpdatedAt time.Time      `json:"subject_updated_at" gorm:"column:subject_updated_at;not null;autoUpdateTime"`
	SubjectDeletedAt gorm.DeletedAt `json:"subject_deleted_at" gorm:"column:subject_deleted_at;index"`
}

func (SubjectModel) TableName() string { return "subjects" }

// AreaSubjectWeightModel merepresentasikan tabel `area_subject_weights`.
// Bobot persentase eksplisit subject di dalam area; kalau tidak ada,
// agregasi area memakai jam pelajaran (credit hours) dari teaching_assignments.
type AreaSubjectWeightModel struct {
	AreaSubjectWeightID       uuid.UUID `json:"area_subject_weight_id" gorm:"column:area_subject_weight_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	AreaSubjectWeightSchoolID uuid.UUID `json:"area_subject_weight_school_id" gorm:"column:area_subject_weight_school_id;type:uuid;not null;index:idx_asw_school"`

	AreaSubjectWeightAreaID    uuid.UUID `json:"area_subject_weight_area_id"    gorm:"column:area_subject_weight_area_id;type:uuid;not null;uniqueIndex:uq_asw_area_subject,priority:1"`
	AreaSubjectWeightSubjectID uuid.UUID `json:"area_subject_weight_subject_id" gorm:"column:area_subject_weight_subject_id;type:uuid;not null;uniqueIndex:uq_asw_area_subject,priority:2"`

	AreaSubjectWeightPercent decimal.Decimal `json:"area_subject_weight_percent" gorm:"column:area_subject_weight_percent;type:numeric(5,2);not null"`

	AreaSubjectWeightCreatedAt time.Time      `json:"area_subject_weight_created_at" gorm:"column:area_subject_weight_created_at;not null;autoCreateTime"`
	AreaSubjectWeightUpdatedAt time.Time      `json:"area_subject_weight_updated_at" gorm:"column:area_subject_weight_updated_at;not null;autoUpdateTime"`
	AreaSubjectWeightDeletedAt gorm.DeletedAt `json:"area_subject_weight_deleted_at" gorm:"column:area_subject_weight_deleted_at;index"`
}

func (AreaSubjectWeightModel) TableName() string { return "area_subject_weights" }
