// file: internals/features/school/grading/service/area_aggregator.go
package service

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AreaSubjectGrade input agregasi area untuk satu subject:
// nilai efektif (nil bila subject tidak punya assignment/nilai di kelas
// ini) + bobotnya (jam pelajaran, atau persen eksplisit dari
// area_subject_weights), + jam pelajaran mentah untuk bobot area pada
// rata-rata keseluruhan.
type AreaSubjectGrade struct {
	SubjectID   uuid.UUID
	Grade       *decimal.Decimal
	Weight      decimal.Decimal
	CreditHours int
}

// AggregateArea rata-rata berbobot area: Σ(nilai×bobot)/Σ(bobot),
// dibulatkan half-up 1 desimal (level periode).
//
// HANYA subject yang punya nilai ikut — bobot subject tanpa nilai tidak
// masuk penyebut, jadi subject kosong tidak menarik rata-rata ke nol.
// Tanpa satu pun nilai ⇒ (nil, 0): "tidak ada data" ≠ nol, karena nol
// adalah nilai gagal yang sah.
func AggregateArea(subjects []AreaSubjectGrade) (avg *decimal.Decimal, creditHoursGraded int) {
	sum := decimal.Zero
	weightSum := decimal.Zero

	for _, s := range subjects {
		if s.Grade == nil {
			continue
		}
		sum = sum.Add(s.Grade.Mul(s.Weight))
		weightSum = weightSum.Add(s.Weight)
		creditHoursGraded += s.CreditHours
	}

	if weightSum.IsZero() {
		return nil, 0
	}
	v := sum.Div(weightSum).Round(1)
	return &v, creditHoursGraded
}
