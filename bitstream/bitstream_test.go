package bitstream

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Writer
// ---------------------------------------------------------------------------

func TestWriterMSBFirst(t *testing.T) {
	w := NewWriter()
	require.NoError(t, w.WriteBits(0x5, 3)) // 101
	require.NoError(t, w.WriteBits(0x1, 1)) // 1
	require.NoError(t, w.WriteBits(0x3, 4)) // 0011
	require.NoError(t, w.WriteBits(0x1, 2)) // 01

	assert.Equal(t, 10, w.BitLen())
	// 1011 0011 | 01 (000000 padding)
	assert.Equal(t, []byte{0xb3, 0x40}, w.Finish())
}

func TestWriterFlagsAndBytes(t *testing.T) {
	w := NewWriter()
	require.NoError(t, w.WriteFlag(true))
	require.NoError(t, w.WriteBytes([]byte{0xff, 0x00}))
	require.NoError(t, w.WriteFlag(false))

	// 1 11111111 00000000 0 -> 1111 1111 | 1000 0000 | 0(0000000)
	assert.Equal(t, []byte{0xff, 0x80, 0x00}, w.Finish())
}

func TestWriterEmpty(t *testing.T) {
	assert.Empty(t, NewWriter().Finish())
}

func TestWriterOverflow(t *testing.T) {
	cases := []struct {
		value uint32
		width uint
		ok    bool
	}{
		{63, 6, true},
		{64, 6, false},
		{0, 1, true},
		{2, 1, false},
		{255, 8, true},
		{256, 8, false},
		{0xffffffff, 32, true},
	}
	for _, tc := range cases {
		err := NewWriter().WriteBits(tc.value, tc.width)
		if tc.ok {
			assert.NoError(t, err, "value %d width %d", tc.value, tc.width)
		} else {
			assert.True(t, errors.Is(err, ErrOverflow), "value %d width %d: got %v", tc.value, tc.width, err)
		}
	}
}

func TestWriterBadWidth(t *testing.T) {
	w := NewWriter()
	assert.ErrorIs(t, w.WriteBits(0, 0), ErrBadWidth)
	assert.ErrorIs(t, w.WriteBits(0, 33), ErrBadWidth)
}

func TestWriterFinishIsFinal(t *testing.T) {
	w := NewWriter()
	require.NoError(t, w.WriteBits(1, 1))
	first := w.Finish()
	assert.ErrorIs(t, w.WriteBits(1, 1), ErrFinished)
	assert.Equal(t, first, w.Finish())
}

// ---------------------------------------------------------------------------
// Reader
// ---------------------------------------------------------------------------

func TestReaderRoundTrip(t *testing.T) {
	fields := []struct {
		value uint32
		width uint
	}{
		{17, 5}, {0, 1}, {0x3f, 6}, {300, 9}, {7, 3}, {0xdeadbeef, 32}, {1, 1},
	}

	w := NewWriter()
	for _, f := range fields {
		require.NoError(t, w.WriteBits(f.value, f.width))
	}
	r := NewReader(w.Finish())
	for _, f := range fields {
		v, err := r.ReadBits(f.width)
		require.NoError(t, err)
		assert.Equal(t, f.value, v)
	}
	assert.Less(t, r.Remaining(), 8)
}

func TestReaderFlagged(t *testing.T) {
	w := NewWriter()
	require.NoError(t, w.WriteFlag(false))
	require.NoError(t, w.WriteFlag(true))
	require.NoError(t, w.WriteBits(5, 3))

	r := NewReader(w.Finish())
	v, err := r.ReadFlagged(3, -1)
	require.NoError(t, err)
	assert.Equal(t, -1, v)
	v, err = r.ReadFlagged(3, -1)
	require.NoError(t, err)
	assert.Equal(t, 5, v)
}

func TestReaderUnalignedBytes(t *testing.T) {
	w := NewWriter()
	require.NoError(t, w.WriteBits(3, 3))
	require.NoError(t, w.WriteBytes([]byte{0x40, 0x09, 0x21}))

	r := NewReader(w.Finish())
	_, err := r.ReadBits(3)
	require.NoError(t, err)
	b, err := r.ReadBytes(3)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x40, 0x09, 0x21}, b)
}

func TestReaderShort(t *testing.T) {
	r := NewReader([]byte{0xff})
	_, err := r.ReadBits(6)
	require.NoError(t, err)
	_, err = r.ReadBits(3)
	assert.ErrorIs(t, err, ErrShortRead)
	assert.Equal(t, 6, r.Offset())
}
