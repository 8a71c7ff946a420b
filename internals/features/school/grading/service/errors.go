// file: internals/features/school/grading/service/errors.go
package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ConfigurationError: konfigurasi tenant hilang/rusak (mis. grade scale
// tidak ada atau band tidak menutup rentang). Pembuatan laporan WAJIB
// dibatalkan seluruhnya — jangan pernah diam-diam memakai default.
type ConfigurationError struct {
	SchoolID uuid.UUID
	Missing  string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("school %s: missing configuration: %s", e.SchoolID, e.Missing)
}

// NewConfigurationError helper pembuat ConfigurationError
func NewConfigurationError(schoolID uuid.UUID, missing string) error {
	return &ConfigurationError{SchoolID: schoolID, Missing: missing}
}

var (
	// ErrNoMatchingBand: nilai tidak jatuh di band mana pun.
	// Klasifikasi TIDAK menebak label — baris rapor memakai
	// NoMatchingBandLabel yang eksplisit.
	ErrNoMatchingBand = errors.New("grade scale: no matching band")

	// ErrGradeEntryClosed / ErrRecoveryClosed: flag periode tertutup
	ErrGradeEntryClosed = errors.New("period: grade entry window is closed")
	ErrRecoveryClosed   = errors.New("period: recovery window is closed")
)

// NoMatchingBandLabel label eksplisit untuk nilai di luar semua band
const NoMatchingBandLabel = "SIN ESCALA"
