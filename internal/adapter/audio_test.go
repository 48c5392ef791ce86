package adapter

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNullAudioAdapter(t *testing.T) {
	adapter := NewNullAudioAdapter(8000, 80)
	assert.Equal(t, 8000, adapter.DeviceRate())

	var calls atomic.Int64

	stream, err := adapter.Open(func(out []float32) {
		assert.Len(t, out, 80)
		calls.Add(1)
	})
	require.NoError(t, err)

	time.Sleep(30 * time.Millisecond)
	assert.Zero(t, calls.Load(), "stream must not run before Start")

	require.NoError(t, stream.Start())
	require.NoError(t, stream.Start())

	require.Eventually(t, func() bool { return calls.Load() >= 3 }, 2*time.Second, 5*time.Millisecond)

	require.NoError(t, stream.Stop())

	stopped := calls.Load()
	time.Sleep(40 * time.Millisecond)
	assert.Equal(t, stopped, calls.Load())

	require.NoError(t, stream.Start())
	require.Eventually(t, func() bool { return calls.Load() > stopped }, 2*time.Second, 5*time.Millisecond)

	require.NoError(t, stream.Close())
	require.NoError(t, stream.Stop())
}
