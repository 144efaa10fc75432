package snapshot

import (
	"bytes"
	"testing"

	"github.com/JoshEngebretson/duktape/builtins"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compileDefault(t *testing.T, tag bool) (*Build, []*builtins.Object) {
	t.Helper()
	objs := builtins.Default()
	bi := &builtins.BuildInfo{Version: 1, Build: "2013-06-01"}
	merged, err := bi.Merge(objs, builtins.DukObjectID, "")
	require.NoError(t, err)

	b, err := Compile(Config{
		Objects:      objs,
		Strings:      tableFor(t, merged),
		Features:     allFeatures,
		BuildInfo:    bi,
		TagByteOrder: tag,
	})
	require.NoError(t, err)
	return b, merged
}

func TestCompileAllVariants(t *testing.T) {
	b, merged := compileDefault(t, false)
	require.Len(t, b.Variants, 3)
	assert.Equal(t, []ByteOrder{LittleEndian, BigEndian, MiddleEndian},
		[]ByteOrder{b.Variants[0].Order, b.Variants[1].Order, b.Variants[2].Order})

	assert.Len(t, b.Objects(), 43)
	assert.Equal(t, b.Variants[0].Natives, b.Natives())
	require.NotNil(t, b.Variant(MiddleEndian))

	// Same size, different bytes: only the doubles move.
	le, be := b.Variant(LittleEndian), b.Variant(BigEndian)
	assert.Equal(t, len(le.Data), len(be.Data))
	assert.False(t, bytes.Equal(le.Data, be.Data))

	tab := tableFor(t, merged)
	for _, v := range b.Variants {
		got, err := DecodeSnapshot(v, tab)
		require.NoError(t, err, v.Order.String())
		assert.Equal(t, canonList(merged, allFeatures), canonList(got, allFeatures), v.Order.String())

		duk := builtins.Find(got, builtins.DukObjectID)
		require.NotNil(t, duk)
		assert.Equal(t, "version", duk.Values[0].Name)
		assert.Equal(t, builtins.Double(1), duk.Values[0].Value)
		assert.Equal(t, builtins.String("2013-06-01"), duk.Values[1].Value)
	}
}

func TestCompileTagByteOrder(t *testing.T) {
	b, merged := compileDefault(t, true)
	tab := tableFor(t, merged)
	for _, v := range b.Variants {
		got, err := DecodeSnapshot(v, tab)
		require.NoError(t, err)
		duk := builtins.Find(got, builtins.DukObjectID)
		assert.Equal(t, builtins.String("2013-06-01; "+v.Order.String()), duk.Values[1].Value)
	}
}

func TestCompileDoesNotMutateInput(t *testing.T) {
	objs := builtins.Default()
	before := len(builtins.Find(objs, builtins.DukObjectID).Values)
	bi := &builtins.BuildInfo{Version: 2, Build: "x"}
	merged, err := bi.Merge(objs, builtins.DukObjectID, "")
	require.NoError(t, err)

	_, err = Compile(Config{Objects: objs, Strings: tableFor(t, merged), BuildInfo: bi})
	require.NoError(t, err)
	assert.Len(t, builtins.Find(objs, builtins.DukObjectID).Values, before)
}

func TestCompileOrders(t *testing.T) {
	objs := []*builtins.Object{plainObject("bi_a")}
	tab := tableFor(t, objs)

	b, err := Compile(Config{Objects: objs, Strings: tab, Orders: []ByteOrder{BigEndian}})
	require.NoError(t, err)
	require.Len(t, b.Variants, 1)
	assert.Nil(t, b.Variant(LittleEndian))

	_, err = Compile(Config{Objects: objs, Strings: tab, Orders: []ByteOrder{BigEndian, BigEndian}})
	assert.ErrorIs(t, err, ErrSchema)

	_, err = Compile(Config{Objects: objs, Strings: tab, Orders: []ByteOrder{ByteOrder(7)}})
	assert.ErrorIs(t, err, ErrMissing)
}

func TestCompileFailsWhole(t *testing.T) {
	objs := []*builtins.Object{{ID: "bi_a", Class: builtins.ClassObject, InternalPrototype: "bi_nope"}}
	b, err := Compile(Config{Objects: objs, Strings: tableFor(t, objs)})
	assert.ErrorIs(t, err, ErrUnresolved)
	assert.Nil(t, b)
}

func TestCompileMissingBuildTarget(t *testing.T) {
	objs := []*builtins.Object{plainObject("bi_a")}
	_, err := Compile(Config{
		Objects:   objs,
		Strings:   tableFor(t, objs),
		BuildInfo: &builtins.BuildInfo{Version: 1},
	})
	assert.ErrorIs(t, err, ErrUnresolved)
}
