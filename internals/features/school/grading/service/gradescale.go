// file: internals/features/school/grading/service/gradescale.go
package service

import (
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	gradingModel "sekolahku_backend/internals/features/school/grading/model"
)

// Jarak antar band yang masih dianggap kontigu: satu langkah skala 1 desimal
// (mis. band BAJO berakhir 2.9, band berikutnya mulai 3.0).
var bandStep = decimal.NewFromFloat(0.1)

// ScaleBand satu band performa terurut
type ScaleBand struct {
	Label     string
	Min       decimal.Decimal
	Max       decimal.Decimal
	IsFailing bool
}

// Contains true bila g ∈ [Min, Max] (inklusif dua sisi)
func (b ScaleBand) Contains(g decimal.Decimal) bool {
	return g.GreaterThanOrEqual(b.Min) && g.LessThanOrEqual(b.Max)
}

// GradeScale kumpulan band performa satu sekolah, terurut naik.
// Dibangun lewat NewGradeScale supaya invariannya (kontigu, tidak
// tumpang tindih, punya band lulus) selalu berlaku.
type GradeScale struct {
	SchoolID uuid.UUID
	bands    []ScaleBand
}

// NewGradeScale memvalidasi band dan membangun skala.
// Gagal tertutup dengan ConfigurationError bila:
//   - tidak ada band sama sekali,
//   - ada band dengan min > max,
//   - band tumpang tindih atau menyisakan celah > satu langkah skala,
//   - tidak ada band non-gagal (ambang lulus tidak terdefinisi).
func NewGradeScale(schoolID uuid.UUID, bands []ScaleBand) (*GradeScale, error) {
	if len(bands) == 0 {
		return nil, NewConfigurationError(schoolID, "grade scale (no bands configured)")
	}

	sorted := make([]ScaleBand, len(bands))
	copy(sorted, bands)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Min.LessThan(sorted[j].Min)
	})

	hasPassing := false
	for i := range sorted {
		if sorted[i].Min.GreaterThan(sorted[i].Max) {
			return nil, NewConfigurationError(schoolID,
				"grade scale (band '"+sorted[i].Label+"' has min > max)")
		}
		if !sorted[i].IsFailing {
			hasPassing = true
		}
		if i == 0 {
			continue
		}
		gap := sorted[i].Min.Sub(sorted[i-1].Max)
		if gap.LessThanOrEqual(decimal.Zero) {
			return nil, NewConfigurationError(schoolID,
				"grade scale (bands '"+sorted[i-1].Label+"' and '"+sorted[i].Label+"' overlap)")
		}
		if gap.GreaterThan(bandStep) {
			return nil, NewConfigurationError(schoolID,
				"grade scale (gap between bands '"+sorted[i-1].Label+"' and '"+sorted[i].Label+"')")
		}
	}
	if !hasPassing {
		return nil, NewConfigurationError(schoolID, "grade scale (no passing band)")
	}

	return &GradeScale{SchoolID: schoolID, bands: sorted}, nil
}

// NewGradeScaleFromModels membangun skala dari baris grade_scale_bands.
func NewGradeScaleFromModels(schoolID uuid.UUID, rows []gradingModel.GradeScaleBandModel) (*GradeScale, error) {
	bands := make([]ScaleBand, 0, len(rows))
	for _, r := range rows {
		bands = append(bands, ScaleBand{
			Label:     r.GradeScaleBandLabel,
			Min:       r.GradeScaleBandMin,
			Max:       r.GradeScaleBandMax,
			IsFailing: r.GradeScaleBandIsFailing,
		})
	}
	return NewGradeScale(schoolID, bands)
}

// Bands salinan band terurut (read-only bagi caller)
func (s *GradeScale) Bands() []ScaleBand {
	out := make([]ScaleBand, len(s.bands))
	copy(out, s.bands)
	return out
}

// Bounds rentang numerik yang dicakup skala (min band pertama, max band terakhir)
func (s *GradeScale) Bounds() (decimal.Decimal, decimal.Decimal) {
	return s.bands[0].Min, s.bands[len(s.bands)-1].Max
}

// Classify mengembalikan band pertama yang memuat g, atau ErrNoMatchingBand.
func (s *GradeScale) Classify(g decimal.Decimal) (ScaleBand, error) {
	for _, b := range s.bands {
		if b.Contains(g) {
			return b, nil
		}
	}
	return ScaleBand{}, ErrNoMatchingBand
}

// LabelFor label kualitatif g; NoMatchingBandLabel bila tidak ada band
// yang cocok (eksplisit, bukan tebakan).
func (s *GradeScale) LabelFor(g decimal.Decimal) string {
	b, err := s.Classify(g)
	if err != nil {
		return NoMatchingBandLabel
	}
	return b.Label
}

// PassingThreshold ambang lulus: min dari band non-gagal terendah.
// Selalu terdefinisi karena NewGradeScale menolak skala tanpa band lulus.
func (s *GradeScale) PassingThreshold() decimal.Decimal {
	for _, b := range s.bands {
		if !b.IsFailing {
			return b.Min
		}
	}
	// tidak tercapai; NewGradeScale menjamin ada band non-gagal
	return decimal.Zero
}

// IsFailing true bila g lulus di bawah ambang (strictly below).
func (s *GradeScale) IsFailing(g decimal.Decimal) bool {
	return g.LessThan(s.PassingThreshold())
}
