// file: internals/features/school/grading/service/subject_period.go
package service

import (
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// DimensionWeights bobot persen tiga dimensi evaluasi.
// Datang dari teaching assignment (persen bulat, jumlah 100 — sudah
// divalidasi di write boundary) atau dari EqualSplitWeights.
type DimensionWeights struct {
	Ser   decimal.Decimal // behavioral
	Saber decimal.Decimal // conceptual
	Hacer decimal.Decimal // practical
}

// EqualSplitWeights pembagian rata 33.33/33.33/33.34 — dipilih supaya
// ketiganya berjumlah tepat 100.00 (sisa 0.01 jatuh ke HACER).
func EqualSplitWeights() DimensionWeights {
	return DimensionWeights{
		Ser:   decimal.NewFromFloat(33.33),
		Saber: decimal.NewFromFloat(33.33),
		Hacer: decimal.NewFromFloat(33.34),
	}
}

// WeightsFromPercents bobot dari persen bulat yang sudah tervalidasi.
func WeightsFromPercents(ser, saber, hacer int) DimensionWeights {
	return DimensionWeights{
		Ser:   decimal.NewFromInt(int64(ser)),
		Saber: decimal.NewFromInt(int64(saber)),
		Hacer: decimal.NewFromInt(int64(hacer)),
	}
}

// ResolveSubjectPeriod menggabungkan tiga rata-rata dimensi menjadi satu
// nilai subject-period: jumlah berbobot dibagi 100, dibulatkan half-up
// 2 desimal. Resolver mengasumsikan bobot valid (jumlah 100) — persen
// yang tidak valid sudah ditolak sebelum sampai ke sini.
func ResolveSubjectPeriod(ser, saber, hacer decimal.Decimal, w DimensionWeights) decimal.Decimal {
	sum := ser.Mul(w.Ser).
		Add(saber.Mul(w.Saber)).
		Add(hacer.Mul(w.Hacer))
	return sum.Div(oneHundred).Round(2)
}
