// file: internals/features/school/grading/service/promotion.go
package service

// Hasil evaluasi promosi
const (
	PromotionPromoted    = "PROMOTED"
	PromotionNotPromoted = "NOT_PROMOTED"
)

// EvaluatePromotion memutuskan promosi dari jumlah kegagalan tahunan
// (area atau subject, sesuai promotion_config_count_by sekolah) terhadap
// ambang toleransi. Batas INKLUSIF: failedCount == maxFailures masih
// dipromosikan.
//
// Fungsi total: siswa tanpa satu pun area terhitung punya failedCount 0
// dan dipromosikan. Itu disengaja — ketiadaan nilai adalah masalah input
// yang wajib ditandai sistem sekitar, bukan kegagalan akademik.
func EvaluatePromotion(failedCount, maxFailures int) string {
	if failedCount <= maxFailures {
		return PromotionPromoted
	}
	return PromotionNotPromoted
}
