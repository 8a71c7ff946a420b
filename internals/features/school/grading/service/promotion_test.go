package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluatePromotion(t *testing.T) {
	tests := []struct {
		name        string
		failed      int
		maxFailures int
		want        string
	}{
		{name: "below threshold", failed: 1, maxFailures: 2, want: PromotionPromoted},
		{name: "boundary is inclusive", failed: 2, maxFailures: 2, want: PromotionPromoted},
		{name: "above threshold", failed: 3, maxFailures: 2, want: PromotionNotPromoted},
		// tanpa area terhitung = 0 kegagalan = promosi (disengaja;
		// ketiadaan nilai ditandai sistem sekitar, bukan di sini)
		{name: "no computable areas", failed: 0, maxFailures: 0, want: PromotionPromoted},
		{name: "zero tolerance fails one", failed: 1, maxFailures: 0, want: PromotionNotPromoted},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EvaluatePromotion(tt.failed, tt.maxFailures))
		})
	}
}
