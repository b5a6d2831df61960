package indexset_test

import (
	"testing"

	"github.com/BlurringShadow/stdsharp/shared/indexset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSet_SortsAndCollapsesDuplicates(t *testing.T) {
	s, err := indexset.Of(6, 4, 1, 4, 0, 1)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 4}, s.Indices())
	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Contains(4))
	assert.False(t, s.Contains(2))
	assert.Equal(t, []int{2, 3, 5}, s.Complement())
}

func TestSet_RejectsOutOfRange(t *testing.T) {
	_, err := indexset.Of(3, 0, 3)
	assert.ErrorIs(t, err, indexset.ErrIndexOutOfRange)

	_, err = indexset.Of(3, -1)
	assert.ErrorIs(t, err, indexset.ErrIndexOutOfRange)
}

func TestSet_EmptyBound(t *testing.T) {
	s := indexset.New(0)
	assert.Empty(t, s.Indices())
	assert.Empty(t, s.Complement())
	assert.ErrorIs(t, s.Insert(0), indexset.ErrIndexOutOfRange)
}
