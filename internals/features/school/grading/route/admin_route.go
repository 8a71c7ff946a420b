package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	gradingCtrl "sekolahku_backend/internals/features/school/grading/controller"
)

// GradingAdminRoutes: konfigurasi penilaian per sekolah (koordinator).
func GradingAdminRoutes(r fiber.Router, db *gorm.DB) {
	cfgCtl := gradingCtrl.NewGradingConfigController(db)
	entryCtl := gradingCtrl.NewGradeEntryController(db)

	g := r.Group("/grading")
	g.Put("/scale", cfgCtl.ReplaceGradeScale)                       // full replace skala
	g.Put("/promotion-config", cfgCtl.UpsertPromotionConfig)        // toleransi gagal
	g.Put("/area-subject-weights", cfgCtl.SetAreaSubjectWeight)     // bobot subject dalam area
	g.Put("/dimension-weights", entryCtl.SetDimensionWeights)       // persen SER/SABER/HACER
}
