// file: internals/features/school/grading/controller/config_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"sekolahku_backend/internals/features/school/grading/dto"
	"sekolahku_backend/internals/features/school/grading/model"
	"sekolahku_backend/internals/features/school/grading/service"
	helper "sekolahku_backend/internals/helpers"
)

type GradingConfigController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewGradingConfigController(db *gorm.DB) *GradingConfigController {
	return &GradingConfigController{DB: db, Validate: validator.New()}
}

// =========================================
// PUT /api/a/grading/scale — full replace skala penilaian sekolah.
// Divalidasi dulu lewat konstruktor skala; skala rusak tidak pernah
// menyentuh database.
// =========================================
func (ctl *GradingConfigController) ReplaceGradeScale(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.ReplaceGradeScaleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	bands := make([]service.ScaleBand, 0, len(req.Bands))
	for _, b := range req.Bands {
		bands = append(bands, service.ScaleBand{
			Label:     b.Label,
			Min:       b.Min,
			Max:       b.Max,
			IsFailing: b.IsFailing,
		})
	}
	scale, err := service.NewGradeScale(schoolID, bands)
	if err != nil {
		return helper.Error(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("grade_scale_band_school_id = ?", schoolID).
			Delete(&model.GradeScaleBandModel{}).Error; err != nil {
			return err
		}
		rows := make([]model.GradeScaleBandModel, 0, len(scale.Bands()))
		for i, b := range scale.Bands() {
			rows = append(rows, model.GradeScaleBandModel{
				GradeScaleBandSchoolID:  schoolID,
				GradeScaleBandLabel:     b.Label,
				GradeScaleBandMin:       b.Min,
				GradeScaleBandMax:       b.Max,
				GradeScaleBandIsFailing: b.IsFailing,
				GradeScaleBandPosition:  i,
			})
		}
		return tx.Create(&rows).Error
	})
	if txErr != nil {
		return helper.Error(c, fiber.StatusInternalServerError, txErr.Error())
	}

	return helper.Success(c, "Skala penilaian berhasil disimpan", fiber.Map{
		"bands":             scale.Bands(),
		"passing_threshold": scale.PassingThreshold(),
	})
}

// =========================================
// PUT /api/a/grading/promotion-config — toleransi gagal kenaikan kelas
// =========================================
func (ctl *GradingConfigController) UpsertPromotionConfig(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.UpsertPromotionConfigRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	cfg := model.PromotionConfigModel{
		PromotionConfigSchoolID:    schoolID,
		PromotionConfigMaxFailures: req.MaxFailures,
		PromotionConfigCountBy:     req.CountBy,
	}
	if err := ctl.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "promotion_config_school_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"promotion_config_max_failures",
			"promotion_config_count_by",
		}),
	}).Create(&cfg).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "Konfigurasi kenaikan kelas berhasil disimpan", cfg)
}

// =========================================
// PUT /api/a/grading/area-subject-weights — bobot persen eksplisit
// subject di dalam area (override jam pelajaran)
// =========================================
func (ctl *GradingConfigController) SetAreaSubjectWeight(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.SetAreaSubjectWeightRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	areaID, _ := uuid.Parse(req.AreaID)
	subjectID, _ := uuid.Parse(req.SubjectID)

	row := model.AreaSubjectWeightModel{
		AreaSubjectWeightSchoolID:  schoolID,
		AreaSubjectWeightAreaID:    areaID,
		AreaSubjectWeightSubjectID: subjectID,
		AreaSubjectWeightPercent:   req.Percent,
	}
	if err := ctl.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "area_subject_weight_area_id"},
			{Name: "area_subject_weight_subject_id"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"area_subject_weight_percent"}),
	}).Create(&row).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "Bobot subject dalam area berhasil disimpan", row)
}
