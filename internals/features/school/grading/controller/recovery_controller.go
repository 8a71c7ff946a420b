// file: internals/features/school/grading/controller/recovery_controller.go
package controller

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/grading/dto"
	"sekolahku_backend/internals/features/school/grading/model"
	"sekolahku_backend/internals/features/school/grading/service"
	helper "sekolahku_backend/internals/helpers"
)

type RecoveryController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewRecoveryController(db *gorm.DB) *RecoveryController {
	return &RecoveryController{DB: db, Validate: validator.New()}
}

// requireRecoveryOpen memuat periode & memastikan jendela nivelación terbuka.
func requireRecoveryOpen(tx *gorm.DB, schoolID, periodID uuid.UUID) (*model.PeriodModel, error) {
	var period model.PeriodModel
	if err := tx.
		Where("period_id = ? AND period_school_id = ?", periodID, schoolID).
		First(&period).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Periode tidak ditemukan")
		}
		return nil, err
	}
	if !period.PeriodRecoveryOpen {
		return nil, fiber.NewError(fiber.StatusConflict, service.ErrRecoveryClosed.Error())
	}
	return &period, nil
}

// =========================================
// PUT /api/t/grades/recovery — buat / perbarui nivelación:
// baris grade RECOVERY + recovery plan dalam satu transaksi
// =========================================
func (ctl *RecoveryController) UpsertRecovery(c *fiber.Ctx) error {
	schoolID, err := helper.GetTeacherSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.UpsertRecoveryRequest
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

	var plan model.RecoveryPlanModel
	txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if _, err := requireRecoveryOpen(tx, schoolID, req.PeriodID); err != nil {
			return err
		}

		var assignment model.TeachingAssignmentModel
		if err := tx.
			Where("teaching_assignment_id = ? AND teaching_assignment_school_id = ?",
				req.TeachingAssignmentID, schoolID).
			First(&assignment).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Teaching assignment tidak ditemukan")
			}
			return err
		}
		subjectID := assignment.TeachingAssignmentSubjectID

		// Upsert baris grade RECOVERY (replace kalau sudah ada)
		if err := tx.
			Where("grade_school_id = ? AND grade_student_id = ? AND grade_subject_id = ? AND grade_period_id = ? AND grade_kind = ?",
				schoolID, req.StudentID, subjectID, req.PeriodID, model.GradeKindRecovery).
			Delete(&model.GradeModel{}).Error; err != nil {
			return err
		}
		gradeRow := model.GradeModel{
			GradeSchoolID:  schoolID,
			GradeStudentID: req.StudentID,
			GradeSubjectID: subjectID,
			GradePeriodID:  req.PeriodID,
			GradeKind:      model.GradeKindRecovery,
			GradeValue:     req.Grade,
			GradeEnteredBy: enteredBy,
		}
		if err := tx.Create(&gradeRow).Error; err != nil {
			return err
		}

		// Catatan observasi turunan ikut hidup-mati bersama nilai recovery
		note := req.Note
		if note == nil {
			derived := fmt.Sprintf("Nivelación: %s (nilai %s)", req.Description, req.Grade.StringFixed(2))
			note = &derived
		}

		res := tx.Model(&model.RecoveryPlanModel{}).
			Where("recovery_plan_school_id = ? AND recovery_plan_student_id = ? AND recovery_plan_teaching_assignment_id = ? AND recovery_plan_period_id = ?",
				schoolID, req.StudentID, req.TeachingAssignmentID, req.PeriodID).
			Updates(map[string]interface{}{
				"recovery_plan_description": req.Description,
				"recovery_plan_grade":       req.Grade,
				"recovery_plan_note":        note,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			grade := req.Grade
			plan = model.RecoveryPlanModel{
				RecoveryPlanSchoolID:             schoolID,
				RecoveryPlanStudentID:            req.StudentID,
				RecoveryPlanTeachingAssignmentID: req.TeachingAssignmentID,
				RecoveryPlanPeriodID:             req.PeriodID,
				RecoveryPlanDescription:          req.Description,
				RecoveryPlanGrade:                &grade,
				RecoveryPlanNote:                 note,
			}
			return tx.Create(&plan).Error
		}
		return tx.
			Where("recovery_plan_school_id = ? AND recovery_plan_student_id = ? AND recovery_plan_teaching_assignment_id = ? AND recovery_plan_period_id = ?",
				schoolID, req.StudentID, req.TeachingAssignmentID, req.PeriodID).
			First(&plan).Error
	})
	if txErr != nil {
		return helper.FromFiberError(c, txErr)
	}

	return helper.Success(c, "Nivelación berhasil disimpan", plan)
}

// =========================================
// DELETE /api/t/grades/recovery/:plan_id — cabut nivelación:
// hapus baris grade RECOVERY, kosongkan nilai & catatan plan, atomik
// =========================================
func (ctl *RecoveryController) DeleteRecovery(c *fiber.Ctx) error {
	schoolID, err := helper.GetTeacherSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	planID, err := uuid.Parse(c.Params("plan_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "plan_id tidak valid")
	}

	txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		var plan model.RecoveryPlanModel
		if err := tx.
			Where("recovery_plan_id = ? AND recovery_plan_school_id = ?", planID, schoolID).
			First(&plan).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Recovery plan tidak ditemukan")
			}
			return err
		}

		if _, err := requireRecoveryOpen(tx, schoolID, plan.RecoveryPlanPeriodID); err != nil {
			return err
		}

		var assignment model.TeachingAssignmentModel
		if err := tx.
			Where("teaching_assignment_id = ?", plan.RecoveryPlanTeachingAssignmentID).
			First(&assignment).Error; err != nil {
			return err
		}

		if err := tx.
			Where("grade_school_id = ? AND grade_student_id = ? AND grade_subject_id = ? AND grade_period_id = ? AND grade_kind = ?",
				schoolID, plan.RecoveryPlanStudentID, assignment.TeachingAssignmentSubjectID,
				plan.RecoveryPlanPeriodID, model.GradeKindRecovery).
			Delete(&model.GradeModel{}).Error; err != nil {
			return err
		}

		// Nilai & catatan turunan ikut dihapus; deskripsi rencana tetap
		return tx.Model(&model.RecoveryPlanModel{}).
			Where("recovery_plan_id = ?", plan.RecoveryPlanID).
			Updates(map[string]interface{}{
				"recovery_plan_grade": nil,
				"recovery_plan_note":  nil,
			}).Error
	})
	if txErr != nil {
		return helper.FromFiberError(c, txErr)
	}

	return helper.Success(c, "Nivelación berhasil dicabut", nil)
}
