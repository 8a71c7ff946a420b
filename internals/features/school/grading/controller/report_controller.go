// file: internals/features/school/grading/controller/report_controller.go
package controller

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/grading/dto"
	"sekolahku_backend/internals/features/school/grading/model"
	"sekolahku_backend/internals/features/school/grading/service"
	helper "sekolahku_backend/internals/helpers"
)

type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

// fromEngineError memetakan error engine ke status HTTP.
// Config rusak = blocking (bukan fallback diam-diam).
func fromEngineError(c *fiber.Ctx, err error) error {
	var cfgErr *service.ConfigurationError
	if errors.As(err, &cfgErr) {
		return helper.Error(c, fiber.StatusUnprocessableEntity, cfgErr.Error())
	}
	return helper.FromFiberError(c, err)
}

func yearParam(c *fiber.Ctx) (int, error) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 2000 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Query ?year wajib diisi (tahun ajaran)")
	}
	return year, nil
}

// =========================================
// GET /api/u/reports/period/:class_id/:period_id?year=YYYY
// Rapor periode seluruh kelas, ranking berjalan pada nilai PRA-recovery
// =========================================
func (ctl *ReportController) GetPeriodReports(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromTokenPreferTeacher(c)
	if err != nil {
		return err
	}
	classID, err := uuid.Parse(c.Params("class_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "class_id tidak valid")
	}
	periodID, err := uuid.Parse(c.Params("period_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "period_id tidak valid")
	}
	year, err := yearParam(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	snap, err := service.LoadGradingSnapshot(c.Context(), ctl.DB, schoolID, classID, year)
	if err != nil {
		return fromEngineError(c, err)
	}

	period := snap.PeriodByID(periodID)
	if period == nil {
		return helper.Error(c, fiber.StatusNotFound, "Periode tidak ditemukan di tahun ajaran ini")
	}
	// Sebelum periode berakhir, rapor hanya boleh keluar lewat jendela interim
	if !period.PeriodInterimOpen && time.Now().Before(period.PeriodEndDate) {
		return helper.Error(c, fiber.StatusConflict, "Laporan interim periode ini belum dibuka")
	}

	reports := service.BuildPeriodReports(snap, periodID)

	if err := ctl.auditReports(schoolID, classID, &periodID, year, model.ReportTypePeriod, reports); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "Rapor periode berhasil dibuat", reports)
}

// =========================================
// GET /api/u/reports/annual/:class_id?year=YYYY
// Rapor akhir tahun + keputusan kenaikan kelas
// =========================================
func (ctl *ReportController) GetAnnualReports(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromTokenPreferTeacher(c)
	if err != nil {
		return err
	}
	classID, err := uuid.Parse(c.Params("class_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "class_id tidak valid")
	}
	year, err := yearParam(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	snap, err := service.LoadGradingSnapshot(c.Context(), ctl.DB, schoolID, classID, year)
	if err != nil {
		return fromEngineError(c, err)
	}

	reports, err := service.BuildAnnualReports(snap)
	if err != nil {
		return fromEngineError(c, err)
	}

	if err := ctl.auditAnnual(schoolID, classID, year, reports); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "Rapor tahunan berhasil dibuat", reports)
}

// =========================================
// GET /api/u/reports/grade-sheet/:class_id?year=YYYY
// Sabana: grid siswa × subject × periode, ranking shared-with-gap
// =========================================
func (ctl *ReportController) GetGradeSheet(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromTokenPreferTeacher(c)
	if err != nil {
		return err
	}
	classID, err := uuid.Parse(c.Params("class_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "class_id tidak valid")
	}
	year, err := yearParam(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	snap, err := service.LoadGradingSnapshot(c.Context(), ctl.DB, schoolID, classID, year)
	if err != nil {
		return fromEngineError(c, err)
	}

	sheet := service.BuildGradeSheet(snap)

	payload, err := json.Marshal(sheet)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	audit := model.GeneratedReportModel{
		GeneratedReportSchoolID:  schoolID,
		GeneratedReportStudentID: uuid.Nil,
		GeneratedReportClassID:   classID,
		GeneratedReportYear:      year,
		GeneratedReportType:      model.ReportTypeGradeSheet,
		GeneratedReportPayload:   datatypes.JSON(payload),
	}
	if err := ctl.DB.Create(&audit).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "Sabana berhasil dibuat", sheet)
}

// =========================================
// GET /api/t/grades?student_id=&period_id=&page=&per_page=
// Daftar item nilai mentah (guru), paginated
// =========================================
func (ctl *ReportController) ListGrades(c *fiber.Ctx) error {
	schoolID, err := helper.GetTeacherSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	q := ctl.DB.Model(&model.GradeModel{}).
		Where("grade_school_id = ?", schoolID)
	if s := c.Query("student_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "student_id tidak valid")
		}
		q = q.Where("grade_student_id = ?", id)
	}
	if s := c.Query("period_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "period_id tidak valid")
		}
		q = q.Where("grade_period_id = ?", id)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	order, err := p.SafeOrderClause(map[string]string{
		"created_at": "grade_created_at",
		"value":      "grade_value",
		"kind":       "grade_kind",
	}, "created_at")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	var rows []model.GradeModel
	if err := q.
		Order(strings.TrimPrefix(order, "ORDER BY ")).
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "Daftar nilai berhasil diambil", fiber.Map{
		"items": rows,
		"meta":  helper.BuildMeta(total, p),
	})
}

// auditReports menulis baris audit per siswa untuk rapor periode.
func (ctl *ReportController) auditReports(schoolID, classID uuid.UUID, periodID *uuid.UUID, year int, reportType string, reports []dto.PeriodReport) error {
	if len(reports) == 0 {
		return nil
	}
	rows := make([]model.GeneratedReportModel, 0, len(reports))
	for _, r := range reports {
		payload, err := json.Marshal(r)
		if err != nil {
			return err
		}
		rows = append(rows, model.GeneratedReportModel{
			GeneratedReportSchoolID:       schoolID,
			GeneratedReportStudentID:      r.StudentID,
			GeneratedReportClassID:        classID,
			GeneratedReportPeriodID:       periodID,
			GeneratedReportYear:           year,
			GeneratedReportType:           reportType,
			GeneratedReportPayload:        datatypes.JSON(payload),
			GeneratedReportFailedSubjects: pq.StringArray(r.FailedSubjects),
		})
	}
	return ctl.DB.CreateInBatches(&rows, 100).Error
}

func (ctl *ReportController) auditAnnual(schoolID, classID uuid.UUID, year int, reports []dto.AnnualReport) error {
	if len(reports) == 0 {
		return nil
	}
	rows := make([]model.GeneratedReportModel, 0, len(reports))
	for _, r := range reports {
		payload, err := json.Marshal(r)
		if err != nil {
			return err
		}
		rows = append(rows, model.GeneratedReportModel{
			GeneratedReportSchoolID:       schoolID,
			GeneratedReportStudentID:      r.StudentID,
			GeneratedReportClassID:        classID,
			GeneratedReportYear:           year,
			GeneratedReportType:           model.ReportTypeAnnual,
			GeneratedReportPayload:        datatypes.JSON(payload),
			GeneratedReportFailedSubjects: pq.StringArray(r.FailedSubjects),
		})
	}
	return ctl.DB.CreateInBatches(&rows, 100).Error
}
