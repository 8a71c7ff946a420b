// file: internals/features/school/grading/service/component_average.go
package service

import (
	"github.com/shopspring/decimal"
)

// ComponentItem satu item nilai (deskripsi, nilai) dalam satu dimensi
// SER/SABER/HACER untuk satu (student, subject, period).
type ComponentItem struct {
	Description string
	Value       decimal.Decimal
}

// AverageComponents rata-rata aritmetik item satu dimensi, dibulatkan
// half-up 2 desimal. Daftar kosong ⇒ nol: subject yang belum punya item
// di sebuah dimensi adalah keadaan valid, bukan error. Nilai di luar
// rentang TIDAK ditolak di sini — validasi rentang urusan write boundary.
func AverageComponents(items []ComponentItem) decimal.Decimal {
	if len(items) == 0 {
		return decimal.Zero
	}
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.Value)
	}
	return sum.Div(decimal.NewFromInt(int64(len(items)))).Round(2)
}
