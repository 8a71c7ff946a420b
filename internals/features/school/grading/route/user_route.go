package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	gradingCtrl "sekolahku_backend/internals/features/school/grading/controller"
	"sekolahku_backend/internals/middlewares"
)

// GradingUserRoutes: endpoint laporan (guru & koordinator).
func GradingUserRoutes(r fiber.Router, db *gorm.DB) {
	reportCtl := gradingCtrl.NewReportController(db)

	// =====================
	// Reports (dibatasi limiter sendiri, query-nya berat)
	// =====================
	rep := r.Group("/reports", middlewares.ReportRateLimiter())
	rep.Get("/period/:class_id/:period_id", reportCtl.GetPeriodReports) // rapor periode
	rep.Get("/annual/:class_id", reportCtl.GetAnnualReports)            // rapor tahunan + promosi
	rep.Get("/grade-sheet/:class_id", reportCtl.GetGradeSheet)          // sabana
}
