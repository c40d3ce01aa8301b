package bytehost_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arenabyte/segalloc/internal/bytehost"
	"github.com/arenabyte/segalloc/internal/host"
)

func TestHost_ExtendGrowsMonotonically(t *testing.T) {
	h := bytehost.New(0)

	prev, err := h.Extend(16)
	require.NoError(t, err)
	assert.Equal(t, uint32(0), prev)

	prev, err = h.Extend(8)
	require.NoError(t, err)
	assert.Equal(t, uint32(16), prev)

	start, end := h.Bounds()
	assert.Equal(t, uint32(0), start)
	assert.Equal(t, uint32(24), end)
}

func TestHost_ExtendRespectsLimit(t *testing.T) {
	h := bytehost.New(16)

	_, err := h.Extend(16)
	require.NoError(t, err)

	_, err = h.Extend(1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, host.ErrOutOfMemory))
}

func TestHost_ReadWriteUint32RoundTrips(t *testing.T) {
	h := bytehost.New(0)
	_, err := h.Extend(8)
	require.NoError(t, err)

	h.WriteUint32(0, 0xDEADBEEF)
	assert.Equal(t, uint32(0xDEADBEEF), h.ReadUint32(0))
	h.WriteUint32(4, 24|1)
	assert.Equal(t, uint32(24|1), h.ReadUint32(4))
}

func TestHost_ReadWriteBytesRoundTrips(t *testing.T) {
	h := bytehost.New(0)
	_, err := h.Extend(32)
	require.NoError(t, err)

	payload := []byte("hello, heap!")
	h.WriteBytes(8, payload)
	assert.Equal(t, payload, h.ReadBytes(8, uint32(len(payload))))
}
