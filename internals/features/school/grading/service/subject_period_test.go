package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAverageComponents(t *testing.T) {
	tests := []struct {
		name  string
		items []ComponentItem
		want  string
	}{
		{name: "empty dimension is zero, not an error", items: nil, want: "0"},
		{
			name:  "single item",
			items: []ComponentItem{{Description: "Disciplina", Value: dec("4.0")}},
			want:  "4",
		},
		{
			name: "mean of two items",
			items: []ComponentItem{
				{Description: "Quiz 1", Value: dec("3.0")},
				{Description: "Quiz 2", Value: dec("4.0")},
			},
			want: "3.5",
		},
		{
			name: "thirds round half-up to 2 decimals",
			items: []ComponentItem{
				{Value: dec("5.0")}, {Value: dec("5.0")}, {Value: dec("2.5")},
			},
			want: "4.17",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AverageComponents(tt.items)
			assert.True(t, got.Equal(dec(tt.want)), "got %s want %s", got, tt.want)
		})
	}
}

func TestResolveSubjectPeriod_ExplicitPercents(t *testing.T) {
	// 30/30/40 pada 4.0/3.5/5.0 → 1.20+1.05+2.00 = 4.25
	got := ResolveSubjectPeriod(dec("4.0"), dec("3.5"), dec("5.0"), WeightsFromPercents(30, 30, 40))
	assert.True(t, got.Equal(dec("4.25")), "got %s", got)
}

func TestResolveSubjectPeriod_EqualSplit(t *testing.T) {
	w := EqualSplitWeights()

	// bobot rata harus berjumlah tepat 100.00
	assert.True(t, w.Ser.Add(w.Saber).Add(w.Hacer).Equal(dec("100")))

	// skenario end-to-end: SER=4.0 (1 item), SABER=[3.0,4.0], HACER=5.0
	ser := AverageComponents([]ComponentItem{{Value: dec("4.0")}})
	saber := AverageComponents([]ComponentItem{{Value: dec("3.0")}, {Value: dec("4.0")}})
	hacer := AverageComponents([]ComponentItem{{Value: dec("5.0")}})

	got := ResolveSubjectPeriod(ser, saber, hacer, w)
	assert.True(t, got.Equal(dec("4.17")), "got %s", got)
}

func TestResolveSubjectPeriod_HalfUpRounding(t *testing.T) {
	// 33.33*3.0 + 33.33*3.0 + 33.34*3.015 = 300.5001 → 3.005 → half-up 3.01
	got := ResolveSubjectPeriod(dec("3.0"), dec("3.0"), dec("3.015"), EqualSplitWeights())
	assert.True(t, got.Equal(dec("3.01")), "got %s", got)
}
