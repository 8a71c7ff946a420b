// file: internals/features/school/grading/dto/grade_entry_dto.go
package dto

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GradeItemInput satu item nilai dalam satu dimensi (SER/SABER/HACER).
// Value sengaja tanpa `required`: nilai 0 adalah data sah, bukan "kosong".
type GradeItemInput struct {
	Description string          `json:"description" validate:"required,max=255"`
	Value       decimal.Decimal `json:"value"`
}

// SubmitPeriodGradesRequest: guru mengirim ULANG seluruh item nilai satu
// (student, subject, period) sekaligus — full replace, lalu
// SUBJECT_PERIOD_AVERAGE dihitung ulang dan di-upsert.
type SubmitPeriodGradesRequest struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	SubjectID uuid.UUID `json:"subject_id" validate:"required"`
	PeriodID  uuid.UUID `json:"period_id"  validate:"required"`

	// Daftar boleh kosong: dimensi tanpa item adalah keadaan valid
	BehavioralItems []GradeItemInput `json:"behavioral_items" validate:"dive"`
	ConceptualItems []GradeItemInput `json:"conceptual_items" validate:"dive"`
	PracticalItems  []GradeItemInput `json:"practical_items"  validate:"dive"`
}

// UpsertRecoveryRequest: membuat / memperbarui nivelación selama jendela
// recovery periode terbuka.
type UpsertRecoveryRequest struct {
	StudentID            uuid.UUID       `json:"student_id"             validate:"required"`
	TeachingAssignmentID uuid.UUID       `json:"teaching_assignment_id" validate:"required"`
	PeriodID             uuid.UUID       `json:"period_id"              validate:"required"`
	Description          string          `json:"description"            validate:"required"`
	Grade                decimal.Decimal `json:"grade"`
	Note                 *string         `json:"note"`
}

// SetDimensionWeightsRequest: konfigurasi persen SER/SABER/HACER sebuah
// teaching assignment. Ditolak di sini (write boundary) bila jumlahnya
// bukan 100 — resolver tidak pernah melihat bobot yang tidak valid.
type SetDimensionWeightsRequest struct {
	TeachingAssignmentID uuid.UUID `json:"teaching_assignment_id" validate:"required"`

	SerPercent   int `json:"ser_percent"   validate:"min=0,max=100"`
	SaberPercent int `json:"saber_percent" validate:"min=0,max=100"`
	HacerPercent int `json:"hacer_percent" validate:"min=0,max=100"`
}

// RegisterGradingValidations mendaftarkan validasi struct-level
// (jumlah persen dimensi harus tepat 100).
func RegisterGradingValidations(v *validator.Validate) {
	v.RegisterStructValidation(func(sl validator.StructLevel) {
		req := sl.Current().Interface().(SetDimensionWeightsRequest)
		if req.SerPercent+req.SaberPercent+req.HacerPercent != 100 {
			sl.ReportError(req.SerPercent, "SerPercent", "ser_percent", "percentsum", "")
		}
	}, SetDimensionWeightsRequest{})
}
