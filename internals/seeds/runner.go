package seeds

import (
	gradingSeed "sekolahku_backend/internals/seeds/grading"

	"gorm.io/gorm"
)

func RunAllSeeds(db *gorm.DB) {
	//* Grading
	gradingSeed.SeedGradeScaleFromJSON(db, "internals/seeds/grading/data_grade_scale.json")
}
