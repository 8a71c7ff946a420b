package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	statsCtrl "sekolahku_backend/internals/features/school/statistics/controller"
)

// StatisticsUserRoutes: statistik kelas per periode.
func StatisticsUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := statsCtrl.NewStatisticsController(db)

	s := r.Group("/statistics")
	s.Get("/class/:class_id/:period_id", ctl.GetClassStatistics)
}
