package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cohort() []RankEntry {
	return []RankEntry{
		{StudentID: uuid.New(), StudentName: "Carlos", Average: decPtr("3.5")},
		{StudentID: uuid.New(), StudentName: "Ana", Average: decPtr("4.5")},
		{StudentID: uuid.New(), StudentName: "Beatriz", Average: decPtr("3.5")},
		{StudentID: uuid.New(), StudentName: "Diego", Average: decPtr("3.0")},
		{StudentID: uuid.New(), StudentName: "Elena", Average: nil},
	}
}

func TestRankSequential(t *testing.T) {
	ranked := RankSequential(cohort())
	require.Len(t, ranked, 5)

	// menurun by average; seri 3.5 dipecah stabil by nama; nil terakhir
	assert.Equal(t, "Ana", ranked[0].StudentName)
	assert.Equal(t, 1, ranked[0].Position)
	assert.Equal(t, "Beatriz", ranked[1].StudentName)
	assert.Equal(t, 2, ranked[1].Position)
	assert.Equal(t, "Carlos", ranked[2].StudentName)
	assert.Equal(t, 3, ranked[2].Position)
	assert.Equal(t, "Diego", ranked[3].StudentName)
	assert.Equal(t, 4, ranked[3].Position)
	assert.Equal(t, "Elena", ranked[4].StudentName)
	assert.Equal(t, 5, ranked[4].Position)
}

func TestRankSharedWithGap(t *testing.T) {
	ranked := RankSharedWithGap(cohort())
	require.Len(t, ranked, 5)

	// 1-2-2-4: Beatriz & Carlos berbagi posisi 2, Diego melompat ke 4
	assert.Equal(t, 1, ranked[0].Position) // Ana 4.5
	assert.Equal(t, 2, ranked[1].Position) // Beatriz 3.5
	assert.Equal(t, 2, ranked[2].Position) // Carlos 3.5
	assert.Equal(t, 4, ranked[3].Position) // Diego 3.0
	assert.Equal(t, 5, ranked[4].Position) // Elena nil
}

func TestRanking_Deterministic(t *testing.T) {
	input := cohort()

	first := RankSequential(input)
	for i := 0; i < 20; i++ {
		again := RankSequential(input)
		for j := range first {
			assert.Equal(t, first[j].StudentID, again[j].StudentID)
			assert.Equal(t, first[j].Position, again[j].Position)
		}
	}
}

func TestRanking_DoesNotMutateInput(t *testing.T) {
	input := cohort()
	names := make([]string, len(input))
	for i, e := range input {
		names[i] = e.StudentName
	}

	_ = RankSequential(input)
	_ = RankSharedWithGap(input)

	for i, e := range input {
		assert.Equal(t, names[i], e.StudentName)
		assert.Equal(t, 0, e.Position)
	}
}
