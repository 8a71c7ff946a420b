// file: internals/features/school/grading/model/promotion_config_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Basis hitung kegagalan untuk promosi: per area atau per subject
const (
	PromotionCountByAreas    = "AREAS"
	PromotionCountBySubjects = "SUBJECTS"
)

// PromotionConfigModel merepresentasikan tabel `promotion_configs`:
// satu baris per sekolah, ambang maksimum kegagalan yang masih
// dipromosikan otomatis (batas INKLUSIF).
type PromotionConfigModel struct {
	PromotionConfigID       uuid.UUID `json:"promotion_config_id" gorm:"column:promotion_config_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	PromotionConfigSchoolID uuid.UUID `json:"promotion_config_school_id" gorm:"column:promotion_config_school_id;type:uuid;not null;uniqueIndex:uq_promotion_configs_school"`

	PromotionConfigMaxFailures int    `json:"promotion_config_max_failures" gorm:"column:promotion_config_max_failures;not null;default:2"`
	PromotionConfigCountBy     string `json:"promotion_config_count_by"     gorm:"column:promotion_config_count_by;type:varchar(16);not null;default:'AREAS'"`

	PromotionConfigCreatedAt time.Time      `json:"promotion_config_created_at" gorm:"column:promotion_config_created_at;not null;autoCreateTime"`
	PromotionConfigUpdatedAt time.Time      `json:"promotion_config_updated_at" gorm:"column:promotion_config_updated_at;not null;autoUpdateTime"`
	PromotionConfigDeletedAt gorm.DeletedAt `json:"promotion_config_deleted_at" gorm:"column:promotion_config_deleted_at;index"`
}

func (PromotionConfigModel) TableName() string { return "promotion_configs" }
