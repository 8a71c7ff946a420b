// file: internals/features/school/statistics/controller/statistics_controller.go
package controller

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	gradingService "sekolahku_backend/internals/features/school/grading/service"
	statsService "sekolahku_backend/internals/features/school/statistics/service"
	helper "sekolahku_backend/internals/helpers"
)

type StatisticsController struct {
	DB *gorm.DB
}

func NewStatisticsController(db *gorm.DB) *StatisticsController {
	return &StatisticsController{DB: db}
}

// =========================================
// GET /api/u/statistics/class/:class_id/:period_id?year=YYYY
// Statistik kelas per periode. Cache statistik dibuat BARU per request
// (bukan global proses) supaya tidak bocor antar tenant / basi antar request.
// =========================================
func (ctl *StatisticsController) GetClassStatistics(c *fiber.Ctx) error {
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
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 2000 {
		return helper.Error(c, fiber.StatusBadRequest, "Query ?year wajib diisi (tahun ajaran)")
	}

	snap, err := gradingService.LoadGradingSnapshot(c.Context(), ctl.DB, schoolID, classID, year)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if snap.PeriodByID(periodID) == nil {
		return helper.Error(c, fiber.StatusNotFound, "Periode tidak ditemukan di tahun ajaran ini")
	}

	reports := gradingService.BuildPeriodReports(snap, periodID)

	calc := statsService.NewCalculator(statsService.NewStatsCache())
	stats := calc.ClassStatistics(statsService.StatsFilter{
		SchoolID: schoolID,
		ClassID:  classID,
		PeriodID: periodID,
		Year:     year,
	}, reports)

	return helper.Success(c, "Statistik kelas berhasil dihitung", stats)
}
