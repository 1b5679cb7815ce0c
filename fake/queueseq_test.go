package fake

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-seq/api"
)

func TestQueueSeq_FIFOOrder(t *testing.T) {
	s := NewQueueSeq[int](0)

	for i := 1; i <= 3; i++ {
		require.NoError(t, s.Write(i))
	}
	for i := 1; i <= 3; i++ {
		got, err := s.Read()
		require.NoError(t, err)
		assert.Equal(t, i, got)
	}
	_, err := s.Read()
	assert.True(t, api.IsCode(err, api.CodeCellEmpty))
}

func TestQueueSeq_NextDiscardsHead(t *testing.T) {
	s := NewQueueSeq[int](0)
	require.NoError(t, s.Write(1))
	require.NoError(t, s.Write(2))

	require.NoError(t, s.Next())
	got, err := s.Read()
	require.NoError(t, err)
	assert.Equal(t, 2, got)

	assert.True(t, api.IsCode(s.Next(), api.CodeOutOfRange))
}

func TestQueueSeq_CapacityBackpressure(t *testing.T) {
	s := NewQueueSeq[int](2)
	require.NoError(t, s.Write(1))
	require.NoError(t, s.Write(2))
	assert.True(t, api.IsCode(s.Write(3), api.CodeExhausted))

	// Draining one slot unblocks the writer.
	_, err := s.Read()
	require.NoError(t, err)
	assert.NoError(t, s.Write(3))
	assert.Equal(t, 2, s.Len())
}

func TestQueueSeq_Stops(t *testing.T) {
	s := NewQueueSeq[string](0)
	require.NoError(t, s.Write("pending"))

	require.NoError(t, s.StopWrite("producer done"))
	assert.True(t, api.IsCode(s.Write("late"), api.CodeStopped))
	assert.True(t, api.IsCode(s.StopWrite("twice"), api.CodeStopped))

	// Reads drain the leftover items until the read side stops too.
	got, err := s.Read()
	require.NoError(t, err)
	assert.Equal(t, "pending", got)

	require.NoError(t, s.StopRead("consumer done"))
	_, err = s.Read()
	assert.True(t, api.IsCode(err, api.CodeStopped))

	r, w := s.StopReasons()
	assert.Equal(t, "consumer done", r)
	assert.Equal(t, "producer done", w)
}
