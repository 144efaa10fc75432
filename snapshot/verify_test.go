package snapshot

import (
	"errors"
	"math"
	"testing"

	"github.com/JoshEngebretson/duktape/builtins"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyDefault(t *testing.T) {
	b, merged := compileDefault(t, false)
	checks, err := b.Verify(tableFor(t, merged))
	require.NoError(t, err)
	require.Len(t, checks, 3)
	for i, c := range checks {
		assert.Equal(t, b.Variants[i].Order, c.Order)
		assert.Equal(t, len(merged), c.Objects)
		assert.Equal(t, b.Variants[i].Stats.NormalProps, c.NormalProps)
		assert.Equal(t, b.Variants[i].Stats.FunctionProps, c.FunctionProps)
		assert.Equal(t, checks[0].Fingerprint, c.Fingerprint)
	}
}

func TestVerifyTagged(t *testing.T) {
	b, merged := compileDefault(t, true)
	require.True(t, b.TagByteOrder)
	checks, err := b.Verify(tableFor(t, merged))
	require.NoError(t, err)
	assert.NotEqual(t, checks[0].Fingerprint, checks[1].Fingerprint)
}

func TestVerifyDetectsDivergence(t *testing.T) {
	objs := func(v float64) []*builtins.Object {
		return []*builtins.Object{plainObject("bi_a", builtins.Property{Name: "x", Value: builtins.Double(v)})}
	}
	tab := tableFor(t, objs(1))
	b, err := Compile(Config{Objects: objs(1), Strings: tab, Orders: []ByteOrder{LittleEndian, BigEndian}})
	require.NoError(t, err)
	_, err = b.Verify(tab)
	require.NoError(t, err)

	enc, err := NewEncoder(objs(math.Inf(-1)), tab)
	require.NoError(t, err)
	other, err := enc.Encode(Options{Order: BigEndian})
	require.NoError(t, err)
	b.Variants[1] = other

	_, err = b.Verify(tab)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCorrupt))
}

func TestVerifyDetectsStatsMismatch(t *testing.T) {
	b, merged := compileDefault(t, false)
	b.Variants[2].Stats.NormalProps++
	_, err := b.Verify(tableFor(t, merged))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCorrupt))
}

func TestFingerprintDoublesByBits(t *testing.T) {
	nan := func(bits uint64) []*builtins.Object {
		return []*builtins.Object{plainObject("bi_a", builtins.Property{Name: "x", Value: builtins.Double(math.Float64frombits(bits))})}
	}
	a, err := fingerprint(nan(0x7ff8000000000000))
	require.NoError(t, err)
	same, err := fingerprint(nan(0x7ff8000000000000))
	require.NoError(t, err)
	other, err := fingerprint(nan(0x7ff8000000000001))
	require.NoError(t, err)
	assert.Equal(t, a, same)
	assert.NotEqual(t, a, other)
}
