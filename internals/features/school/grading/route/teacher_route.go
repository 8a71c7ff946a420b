package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	gradingCtrl "sekolahku_backend/internals/features/school/grading/controller"
)

// GradingTeacherRoutes: endpoint input nilai & nivelación (guru).
func GradingTeacherRoutes(r fiber.Router, db *gorm.DB) {
	entryCtl := gradingCtrl.NewGradeEntryController(db)
	recoveryCtl := gradingCtrl.NewRecoveryController(db)
	reportCtl := gradingCtrl.NewReportController(db)

	// =====================
	// Grade Entry
	// =====================
	g := r.Group("/grades")
	g.Get("/", reportCtl.ListGrades)               // daftar item nilai (paginated)
	g.Post("/period", entryCtl.SubmitPeriodGrades) // full replace + recompute

	// =====================
	// Recovery (nivelación)
	// =====================
	g.Put("/recovery", recoveryCtl.UpsertRecovery)
	g.Delete("/recovery/:plan_id", recoveryCtl.DeleteRecovery)
}
