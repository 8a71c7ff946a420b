// file: internals/features/school/grading/controller/grade_entry_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/grading/dto"
	"sekolahku_backend/internals/features/school/grading/model"
	"sekolahku_backend/internals/features/school/grading/service"
	helper "sekolahku_backend/internals/helpers"
)

type GradeEntryController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewGradeEntryController(db *gorm.DB) *GradeEntryController {
	v := validator.New()
	dto.RegisterGradingValidations(v)
	return &GradeEntryController{DB: db, Validate: v}
}

// =========================================
// POST /api/t/grades/period — full replace item nilai satu
// (student, subject, period) lalu hitung ulang rata-rata periode
// =========================================
func (ctl *GradeEntryController) SubmitPeriodGrades(c *fiber.Ctx) error {
	schoolID, err := helper.GetTeacherSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.SubmitPeriodGradesRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	userID, _ := helper.GetUserIDFromToken(c)
	var enteredBy *uuid.UUID
	if userID != uuid.Nil {
		enteredBy = &userID
	}

	var resp fiber.Map
	txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		// Periode harus ada & jendela input nilai masih terbuka
		var period model.PeriodModel
		if err := tx.
			Where("period_id = ? AND period_school_id = ?", req.PeriodID, schoolID).
			First(&period).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Periode tidak ditemukan")
			}
			return err
		}
		if !period.PeriodGradeEntryOpen {
			return fiber.NewError(fiber.StatusConflict, service.ErrGradeEntryClosed.Error())
		}

		// Siswa menentukan kelas, kelas menentukan teaching assignment
		var student model.StudentModel
		if err := tx.
			Where("student_id = ? AND student_school_id = ?", req.StudentID, schoolID).
			First(&student).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Siswa tidak ditemukan")
			}
			return err
		}

		var assignment model.TeachingAssignmentModel
		if err := tx.
			Where("teaching_assignment_school_id = ? AND teaching_assignment_subject_id = ? AND teaching_assignment_class_id = ?",
				schoolID, req.SubjectID, student.StudentClassID).
			First(&assignment).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Teaching assignment tidak ditemukan untuk subject/kelas ini")
			}
			return err
		}

		// Full replace: buang semua item lama di scope ini
		if err := tx.
			Where("grade_school_id = ? AND grade_student_id = ? AND grade_subject_id = ? AND grade_period_id = ? AND grade_kind IN ?",
				schoolID, req.StudentID, req.SubjectID, req.PeriodID,
				[]string{model.GradeKindBehavioralItem, model.GradeKindConceptualItem, model.GradeKindPracticalItem}).
			Delete(&model.GradeModel{}).Error; err != nil {
			return err
		}

		rows := make([]model.GradeModel, 0,
			len(req.BehavioralItems)+len(req.ConceptualItems)+len(req.PracticalItems))
		appendItems := func(kind string, items []dto.GradeItemInput) {
			for i, it := range items {
				desc := it.Description
				rows = append(rows, model.GradeModel{
					GradeSchoolID:    schoolID,
					GradeStudentID:   req.StudentID,
					GradeSubjectID:   req.SubjectID,
					GradePeriodID:    req.PeriodID,
					GradeKind:        kind,
					GradeDescription: &desc,
					GradePosition:    i,
					GradeValue:       it.Value,
					GradeEnteredBy:   enteredBy,
				})
			}
		}
		appendItems(model.GradeKindBehavioralItem, req.BehavioralItems)
		appendItems(model.GradeKindConceptualItem, req.ConceptualItems)
		appendItems(model.GradeKindPracticalItem, req.PracticalItems)

		if len(rows) > 0 {
			if err := tx.Create(&rows).Error; err != nil {
				return err
			}
		}

		// Hitung ulang rata-rata periode dari item yang baru
		toComponents := func(items []dto.GradeItemInput) []service.ComponentItem {
			out := make([]service.ComponentItem, 0, len(items))
			for _, it := range items {
				out = append(out, service.ComponentItem{Description: it.Description, Value: it.Value})
			}
			return out
		}
		ser := service.AverageComponents(toComponents(req.BehavioralItems))
		saber := service.AverageComponents(toComponents(req.ConceptualItems))
		hacer := service.AverageComponents(toComponents(req.PracticalItems))

		weights := service.EqualSplitWeights()
		if assignment.HasExplicitWeights() {
			weights = service.WeightsFromPercents(
				*assignment.TeachingAssignmentSerPercent,
				*assignment.TeachingAssignmentSaberPercent,
				*assignment.TeachingAssignmentHacerPercent,
			)
		}
		average := service.ResolveSubjectPeriod(ser, saber, hacer, weights)

		// Upsert baris SUBJECT_PERIOD_AVERAGE
		if err := tx.
			Where("grade_school_id = ? AND grade_student_id = ? AND grade_subject_id = ? AND grade_period_id = ? AND grade_kind = ?",
				schoolID, req.StudentID, req.SubjectID, req.PeriodID, model.GradeKindSubjectPeriodAverage).
			Delete(&model.GradeModel{}).Error; err != nil {
			return err
		}
		avgRow := model.GradeModel{
			GradeSchoolID:  schoolID,
			GradeStudentID: req.StudentID,
			GradeSubjectID: req.SubjectID,
			GradePeriodID:  req.PeriodID,
			GradeKind:      model.GradeKindSubjectPeriodAverage,
			GradeValue:     average,
			GradeEnteredBy: enteredBy,
		}
		if err := tx.Create(&avgRow).Error; err != nil {
			return err
		}

		resp = fiber.Map{
			"ser_average":            ser,
			"saber_average":          saber,
			"hacer_average":          hacer,
			"subject_period_average": average,
			"item_count":             len(rows),
		}
		return nil
	})
	if txErr != nil {
		return helper.FromFiberError(c, txErr)
	}

	return helper.Success(c, "Nilai periode berhasil disimpan", resp)
}

// =========================================
// PUT /api/t/grades/dimension-weights — set persen SER/SABER/HACER
// sebuah teaching assignment (jumlah wajib 100, dicek di DTO)
// =========================================
func (ctl *GradeEntryController) SetDimensionWeights(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.SetDimensionWeightsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	res := ctl.DB.Model(&model.TeachingAssignmentModel{}).
		Where("teaching_assignment_id = ? AND teaching_assignment_school_id = ?",
			req.TeachingAssignmentID, schoolID).
		Updates(map[string]interface{}{
			"teaching_assignment_ser_percent":   req.SerPercent,
			"teaching_assignment_saber_percent": req.SaberPercent,
			"teaching_assignment_hacer_percent": req.HacerPercent,
		})
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Teaching assignment tidak ditemukan")
	}

	return helper.Success(c, "Bobot dimensi berhasil diperbarui", req)
}
