// file: internals/features/school/grading/service/recovery.go
package service

import (
	"github.com/shopspring/decimal"
)

// ApplyRecovery menentukan nilai EFEKTIF sebuah subject-period:
// nilai recovery (nivelación) bila ada, kalau tidak nilai asli.
// Nilai asli tetap dipertahankan terpisah untuk tampilan dan ranking.
//
// wasRecovered hanya true bila nilai efektif BERBEDA dari nilai asli DAN
// mencapai ambang lulus. Recovery yang tetap di bawah ambang tidak
// ditandai — asimetri ini perilaku warisan yang dipertahankan dengan
// sengaja, lihat DESIGN.md (Open Questions).
func ApplyRecovery(original, recovery *decimal.Decimal, passingThreshold decimal.Decimal) (effective *decimal.Decimal, wasRecovered bool) {
	if recovery == nil {
		return original, false
	}

	effective = recovery
	differs := original == nil || !recovery.Equal(*original)
	if differs && recovery.GreaterThanOrEqual(passingThreshold) {
		wasRecovered = true
	}
	return effective, wasRecovered
}
