// file: internals/features/school/grading/dto/config_dto.go
package dto

import (
	"github.com/shopspring/decimal"
)

// GradeScaleBandInput satu band skala penilaian.
type GradeScaleBandInput struct {
	Label     string          `json:"label"      validate:"required,max=60"`
	Min       decimal.Decimal `json:"min"`
	Max       decimal.Decimal `json:"max"`
	IsFailing bool            `json:"is_failing"`
}

// ReplaceGradeScaleRequest: full replace skala sekolah. Ditolak bila
// band tumpang tindih / bolong / tidak punya band lulus — konfigurasi
// rusak tidak boleh sampai tersimpan.
type ReplaceGradeScaleRequest struct {
	Bands []GradeScaleBandInput `json:"bands" validate:"required,min=1,dive"`
}

// UpsertPromotionConfigRequest: toleransi gagal per sekolah.
type UpsertPromotionConfigRequest struct {
	MaxFailures int    `json:"max_failures" validate:"min=0"`
	CountBy     string `json:"count_by"     validate:"required,oneof=AREAS SUBJECTS"`
}

// SetAreaSubjectWeightRequest: bobot persen eksplisit subject dalam area.
type SetAreaSubjectWeightRequest struct {
	AreaID    string          `json:"area_id"    validate:"required,uuid4"`
	SubjectID string          `json:"subject_id" validate:"required,uuid4"`
	Percent   decimal.Decimal `json:"percent"`
}
