package snapshot

import (
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummaryRoundTrip(t *testing.T) {
	b, _ := compileDefault(t, false)
	s := b.Summary()

	assert.Equal(t, 1, s.Version)
	assert.Equal(t, "2013-06-01", s.Build)
	require.Len(t, s.Variants, 3)
	assert.Equal(t, "little", s.Variants[0].Order)
	assert.Equal(t, sha256.Sum256(b.Variants[0].Data), s.Variants[0].Digest)
	assert.Equal(t, len(b.Variants[0].Data), s.Variants[0].Stats.Bytes)

	data, err := MarshalSummary(s)
	require.NoError(t, err)
	again, err := MarshalSummary(s)
	require.NoError(t, err)
	assert.Equal(t, data, again)

	got, err := UnmarshalSummary(data)
	require.NoError(t, err)
	assert.Equal(t, s, got)

	_, err = UnmarshalSummary([]byte{0xff})
	assert.Error(t, err)
}
