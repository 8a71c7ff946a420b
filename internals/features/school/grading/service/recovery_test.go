package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func toDec(s *string) *decimal.Decimal {
	if s == nil {
		return nil
	}
	return decPtr(*s)
}

func TestApplyRecovery(t *testing.T) {
	passing := dec("3.0")

	tests := []struct {
		name          string
		original      *string
		recovery      *string
		wantEffective *string
		wantRecovered bool
	}{
		{
			name:          "recovery replaces failing original",
			original:      strPtr("2.5"),
			recovery:      strPtr("3.5"),
			wantEffective: strPtr("3.5"),
			wantRecovered: true,
		},
		{
			name:          "no recovery keeps original",
			original:      strPtr("4.0"),
			recovery:      nil,
			wantEffective: strPtr("4.0"),
			wantRecovered: false,
		},
		{
			name:     "recovery below passing threshold is used but NOT flagged",
			original: strPtr("1.0"),
			recovery: strPtr("2.0"),
			// asimetri warisan: nilai efektif tetap recovery-nya,
			// tapi flag hanya menyala bila ambang lulus tercapai
			wantEffective: strPtr("2.0"),
			wantRecovered: false,
		},
		{
			name:          "recovery equal to original is not a recovery",
			original:      strPtr("3.5"),
			recovery:      strPtr("3.5"),
			wantEffective: strPtr("3.5"),
			wantRecovered: false,
		},
		{
			name:          "recovery with no original",
			original:      nil,
			recovery:      strPtr("3.0"),
			wantEffective: strPtr("3.0"),
			wantRecovered: true,
		},
		{
			name:          "nothing at all",
			original:      nil,
			recovery:      nil,
			wantEffective: nil,
			wantRecovered: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			effective, recovered := ApplyRecovery(toDec(tt.original), toDec(tt.recovery), passing)

			if tt.wantEffective == nil {
				assert.Nil(t, effective)
			} else {
				require.NotNil(t, effective)
				assert.True(t, effective.Equal(dec(*tt.wantEffective)), "got %s", effective)
			}
			assert.Equal(t, tt.wantRecovered, recovered)
		})
	}
}
