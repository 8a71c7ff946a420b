// file: internals/features/school/grading/model/grade_scale_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GradeScaleBandModel merepresentasikan satu band pada tabel `grade_scale_bands`:
// rentang numerik [min,max] → label kualitatif (mis. "ALTO": 4.0–4.5).
// Band per sekolah harus kontigu dan tidak tumpang tindih; validasinya
// dilakukan di service.NewGradeScale, dan agregasi gagal tertutup
// (ConfigurationError) bila skala tidak valid atau tidak ada.
type GradeScaleBandModel struct {
	GradeScaleBandID       uuid.UUID `json:"grade_scale_band_id" gorm:"column:grade_scale_band_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	GradeScaleBandSchoolID uuid.UUID `json:"grade_scale_band_school_id" gorm:"column:grade_scale_band_school_id;type:uuid;not null;index:idx_grade_scale_bands_school"`

	GradeScaleBandLabel string `json:"grade_scale_band_label" gorm:"column:grade_scale_band_label;type:varchar(60);not null"`

	GradeScaleBandMin decimal.Decimal `json:"grade_scale_band_min" gorm:"column:grade_scale_band_min;type:numeric(5,2);not null"`
	GradeScaleBandMax decimal.Decimal `json:"grade_scale_band_max" gorm:"column:grade_scale_band_max;type:numeric(5,2);not null"`

	// Band gagal (di bawah ambang lulus). Ambang lulus = min band
	// non-gagal terendah; tidak pernah di-hardcode.
	GradeScaleBandIsFailing bool `json:"grade_scale_band_is_failing" gorm:"column:grade_scale_band_is_failing;not null;default:false"`

	GradeScaleBandPosition int `json:"grade_scale_band_position" gorm:"column:grade_scale_band_position;not null;default:0"`

	GradeScaleBandCreatedAt time.Time      `json:"grade_scale_band_created_at" gorm:"column:grade_scale_band_created_at;not null;autoCreateTime"`
	GradeScaleBandUpdatedAt time.Time      `json:"grade_scale_band_updated_at" gorm:"column:grade_scale_band_updated_at;not null;autoUpdateTime"`
	GradeScaleBandDeletedAt gorm.DeletedAt `json:"grade_scale_band_deleted_at" gorm:"column:grade_scale_band_deleted_at;index"`
}

func (GradeScaleBandModel) TableName() string { return "grade_scale_bands" }
