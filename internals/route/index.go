// file: internals/routes/setup.go
package routes

import (
	"log"
	"os"
	"time"

	schoolMiddleware "sekolahku_backend/internals/middlewares/auth_school"

	gradingRoute "sekolahku_backend/internals/features/school/grading/route"
	statsRoute "sekolahku_backend/internals/features/school/statistics/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	// ===================== GROUPS =====================

	// PRIVATE (USER): guru & koordinator, laporan read-only
	log.Println("[INFO] Setting up PRIVATE (user) group...")
	private := app.Group("/api/u",
		schoolMiddleware.AuthJWT(schoolMiddleware.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
		}),
	)

	// TEACHER: input nilai & nivelación
	log.Println("[INFO] Setting up TEACHER group (Auth + teacher role)...")
	teacher := app.Group("/api/t",
		schoolMiddleware.AuthJWT(schoolMiddleware.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
		}),
		schoolMiddleware.RequireTeacher(),
	)

	// ADMIN: konfigurasi bobot dimensi dkk.
	log.Println("[INFO] Setting up ADMIN group (Auth + admin role)...")
	admin := app.Group("/api/a",
		schoolMiddleware.AuthJWT(schoolMiddleware.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
		}),
		schoolMiddleware.RequireSchoolAdmin(),
	)

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting Grading routes...")
	gradingRoute.GradingTeacherRoutes(teacher, db)
	gradingRoute.GradingUserRoutes(private, db)
	gradingRoute.GradingAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Statistics routes...")
	statsRoute.StatisticsUserRoutes(private, db)
}
