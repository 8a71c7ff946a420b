package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

// skala konvensional [0,5] ala boletín Kolombia
func testScale(t *testing.T) *GradeScale {
	t.Helper()
	scale, err := NewGradeScale(uuid.New(), []ScaleBand{
		{Label: "BAJO", Min: dec("0.0"), Max: dec("2.9"), IsFailing: true},
		{Label: "BASICO", Min: dec("3.0"), Max: dec("3.9")},
		{Label: "ALTO", Min: dec("4.0"), Max: dec("4.5")},
		{Label: "SUPERIOR", Min: dec("4.6"), Max: dec("5.0")},
	})
	require.NoError(t, err)
	return scale
}

func TestNewGradeScale_FailsClosed(t *testing.T) {
	schoolID := uuid.New()

	tests := []struct {
		name  string
		bands []ScaleBand
	}{
		{name: "no bands", bands: nil},
		{
			name: "overlapping bands",
			bands: []ScaleBand{
				{Label: "BAJO", Min: dec("0.0"), Max: dec("3.0"), IsFailing: true},
				{Label: "BASICO", Min: dec("2.9"), Max: dec("3.9")},
			},
		},
		{
			name: "gap between bands",
			bands: []ScaleBand{
				{Label: "BAJO", Min: dec("0.0"), Max: dec("2.9"), IsFailing: true},
				{Label: "ALTO", Min: dec("3.5"), Max: dec("5.0")},
			},
		},
		{
			name: "min greater than max",
			bands: []ScaleBand{
				{Label: "RARO", Min: dec("4.0"), Max: dec("3.0")},
			},
		},
		{
			name: "no passing band",
			bands: []ScaleBand{
				{Label: "BAJO", Min: dec("0.0"), Max: dec("5.0"), IsFailing: true},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGradeScale(schoolID, tt.bands)
			require.Error(t, err)

			var cfgErr *ConfigurationError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, schoolID, cfgErr.SchoolID)
		})
	}
}

func TestGradeScale_Classify(t *testing.T) {
	scale := testScale(t)

	tests := []struct {
		grade string
		label string
	}{
		{"0.0", "BAJO"},
		{"2.9", "BAJO"},
		{"3.0", "BASICO"},
		{"4.17", "ALTO"},
		{"4.5", "ALTO"},
		{"4.6", "SUPERIOR"},
		{"5.0", "SUPERIOR"},
	}
	for _, tt := range tests {
		band, err := scale.Classify(dec(tt.grade))
		require.NoError(t, err, tt.grade)
		assert.Equal(t, tt.label, band.Label, tt.grade)
	}
}

func TestGradeScale_NoMatchingBand(t *testing.T) {
	scale := testScale(t)

	// 2.95 jatuh di celah 1-desimal antara BAJO dan BASICO
	_, err := scale.Classify(dec("2.95"))
	assert.ErrorIs(t, err, ErrNoMatchingBand)

	// label eksplisit, tidak pernah menebak band terdekat
	assert.Equal(t, NoMatchingBandLabel, scale.LabelFor(dec("2.95")))
	assert.Equal(t, NoMatchingBandLabel, scale.LabelFor(dec("5.5")))
}

func TestGradeScale_PassingThreshold(t *testing.T) {
	scale := testScale(t)

	// ambang diturunkan dari skala (min band non-gagal terendah), bukan hardcode
	assert.True(t, scale.PassingThreshold().Equal(dec("3.0")))
	assert.True(t, scale.IsFailing(dec("2.9")))
	assert.False(t, scale.IsFailing(dec("3.0")))
}

func TestGradeScale_Bounds(t *testing.T) {
	scale := testScale(t)
	lo, hi := scale.Bounds()
	assert.True(t, lo.Equal(dec("0.0")))
	assert.True(t, hi.Equal(dec("5.0")))
}
