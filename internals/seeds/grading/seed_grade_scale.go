package grading

import (
	"encoding/json"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/grading/model"
)

// Struktur sesuai dengan dto.GradeScaleBandInput
type GradeScaleBandSeed struct {
	SchoolID  string `json:"school_id"`
	Label     string `json:"label"`
	Min       string `json:"min"`
	Max       string `json:"max"`
	IsFailing bool   `json:"is_failing"`
	Position  int    `json:"position"`
}

func SeedGradeScaleFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var bands []GradeScaleBandSeed
	if err := json.Unmarshal(file, &bands); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, b := range bands {
		schoolID, err := uuid.Parse(b.SchoolID)
		if err != nil {
			log.Fatalf("❌ school_id tidak valid di seed: %v", err)
		}

		var existing model.GradeScaleBandModel
		if err := db.
			Where("grade_scale_band_school_id = ? AND grade_scale_band_label = ?", schoolID, b.Label).
			First(&existing).Error; err == nil {
			log.Printf("ℹ️ Band %s untuk sekolah %s sudah ada, lewati...", b.Label, b.SchoolID)
			continue
		}

		minVal, err := decimal.NewFromString(b.Min)
		if err != nil {
			log.Fatalf("❌ min tidak valid di seed: %v", err)
		}
		maxVal, err := decimal.NewFromString(b.Max)
		if err != nil {
			log.Fatalf("❌ max tidak valid di seed: %v", err)
		}

		row := model.GradeScaleBandModel{
			GradeScaleBandSchoolID:  schoolID,
			GradeScaleBandLabel:     b.Label,
			GradeScaleBandMin:       minVal,
			GradeScaleBandMax:       maxVal,
			GradeScaleBandIsFailing: b.IsFailing,
			GradeScaleBandPosition:  b.Position,
		}
		if err := db.Create(&row).Error; err != nil {
			log.Fatalf("❌ Gagal insert band %s: %v", b.Label, err)
		}
		log.Printf("✅ Band %s (%s–%s) tersimpan.", b.Label, b.Min, b.Max)
	}
}
