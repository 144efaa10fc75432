package emit

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/JoshEngebretson/duktape/builtins"
	"github.com/JoshEngebretson/duktape/snapshot"
	"github.com/JoshEngebretson/duktape/strtab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallBuild(t *testing.T, orders ...snapshot.ByteOrder) *snapshot.Build {
	t.Helper()
	objs := []*builtins.Object{
		{
			ID:    "bi_global",
			Class: builtins.ClassGlobal,
			Values: []builtins.Property{
				{Name: "PI", Value: builtins.Double(3.141592653589793)},
			},
			Functions: []builtins.Method{
				{Name: "zap", Native: "duk_bi_zap", Length: 1},
				{Name: "alpha", Native: "duk_bi_alpha", Length: 0},
			},
		},
		{ID: "bi_array_prototype", Class: builtins.ClassArray, Length: builtins.Len(0)},
	}
	tab, err := strtab.New(builtins.Strings(objs))
	require.NoError(t, err)
	b, err := snapshot.Compile(snapshot.Config{Objects: objs, Strings: tab, Orders: orders})
	require.NoError(t, err)
	return b
}

func TestIndexDefine(t *testing.T) {
	assert.Equal(t, "DUK_BIDX_GLOBAL", IndexDefine("duk", "bi_global"))
	assert.Equal(t, "DUK_BIDX_ARRAY_PROTOTYPE", IndexDefine("duk", "bi_array_prototype"))
	assert.Equal(t, "DUK_BIDX_TYPE_ERROR_THROWER", IndexDefine("duk", "bi_type_error_thrower"))
	assert.Equal(t, "FOO_BIDX_PLAIN", IndexDefine("foo", "plain"))
}

func TestValidPrefix(t *testing.T) {
	assert.True(t, validPrefix("duk"))
	assert.True(t, validPrefix("_x9"))
	assert.False(t, validPrefix(""))
	assert.False(t, validPrefix("9x"))
	assert.False(t, validPrefix("a-b"))
}

func TestByteRows(t *testing.T) {
	rows := byteRows([]byte{1, 2, 3, 255, 0}, 2)
	assert.Equal(t, []string{"1,2,", "3,255,", "0,"}, rows)
	assert.Empty(t, byteRows(nil, 4))
}

func TestSource(t *testing.T) {
	b := smallBuild(t)
	var buf bytes.Buffer
	require.NoError(t, Source(&buf, b, Options{}))
	out := buf.String()

	assert.Contains(t, out, "Automatically generated by genbuiltins, do not edit!")
	assert.Contains(t, out, "#include \"duk_internal.h\"\n")
	assert.Contains(t, out, "#if defined(DUK_USE_DOUBLE_LE)\n")
	assert.Contains(t, out, "#elif defined(DUK_USE_DOUBLE_BE)\n")
	assert.Contains(t, out, "#elif defined(DUK_USE_DOUBLE_ME)\n")
	assert.True(t, strings.HasSuffix(out, "#else\n#error invalid endianness defines\n#endif\n"))
	assert.Equal(t, 3, strings.Count(out, "/* native functions: 2 */\n"))
	assert.Equal(t, 3, strings.Count(out, "duk_c_function duk_builtin_native_functions[] = {\n"+
		"\t(duk_c_function) duk_bi_alpha,\n"+
		"\t(duk_c_function) duk_bi_zap,\n};\n"))
	assert.Equal(t, 3, strings.Count(out, "char duk_builtins_data[] = {\n"))

	le := strings.Index(out, "DOUBLE_LE")
	be := strings.Index(out, "DOUBLE_BE")
	me := strings.Index(out, "DOUBLE_ME")
	assert.Less(t, le, be)
	assert.Less(t, be, me)
}

func TestSourceDataMatchesVariant(t *testing.T) {
	b := smallBuild(t, snapshot.BigEndian)
	var buf bytes.Buffer
	require.NoError(t, Source(&buf, b, Options{PerLine: 1000}))

	var want strings.Builder
	want.WriteString("char duk_builtins_data[] = {\n\t")
	for _, c := range b.Variants[0].Data {
		want.WriteString(strconv.Itoa(int(c)) + ",")
	}
	want.WriteString("\n};\n")
	assert.Contains(t, buf.String(), want.String())
	assert.Contains(t, buf.String(), "#if defined(DUK_USE_DOUBLE_BE)\n")
	assert.NotContains(t, buf.String(), "#elif")
}

func TestHeader(t *testing.T) {
	b := smallBuild(t, snapshot.LittleEndian, snapshot.MiddleEndian)
	var buf bytes.Buffer
	require.NoError(t, Header(&buf, b, Options{}))
	out := buf.String()

	assert.Contains(t, out, "#ifndef DUK_BUILTINS_H_INCLUDED\n#define DUK_BUILTINS_H_INCLUDED\n")
	assert.True(t, strings.HasSuffix(out, "#endif  /* DUK_BUILTINS_H_INCLUDED */\n"))
	assert.Contains(t, out, "#if defined(DUK_USE_DOUBLE_LE)\n")
	assert.Contains(t, out, "#elif defined(DUK_USE_DOUBLE_ME)\n")
	assert.NotContains(t, out, "DOUBLE_BE")
	assert.Equal(t, 2, strings.Count(out, "extern duk_c_function duk_builtin_native_functions[];\n"))
	assert.Equal(t, 2, strings.Count(out, "extern char duk_builtins_data[];\n"))
	assert.Equal(t, 2, strings.Count(out, "#define DUK_BIDX_GLOBAL 0\n#define DUK_BIDX_ARRAY_PROTOTYPE 1\n"))
	assert.Equal(t, 2, strings.Count(out, "#define DUK_NUM_BUILTINS 2\n"))

	for _, v := range b.Variants {
		assert.Contains(t, out, "#define DUK_BUILTINS_DATA_LENGTH "+strconv.Itoa(len(v.Data))+"\n")
	}
}

func TestPrefix(t *testing.T) {
	b := smallBuild(t, snapshot.LittleEndian)
	var src, hdr bytes.Buffer
	opts := Options{Prefix: "Eng", Generator: "tool"}
	require.NoError(t, Source(&src, b, opts))
	require.NoError(t, Header(&hdr, b, opts))

	assert.Contains(t, src.String(), "generated by tool,")
	assert.Contains(t, src.String(), "#include \"eng_internal.h\"")
	assert.Contains(t, src.String(), "eng_c_function eng_builtin_native_functions[]")
	assert.Contains(t, src.String(), "#if defined(ENG_USE_DOUBLE_LE)")
	assert.Contains(t, hdr.String(), "#define ENG_BIDX_GLOBAL 0")
	assert.Contains(t, hdr.String(), "ENG_BUILTINS_H_INCLUDED")
	assert.NotContains(t, hdr.String(), "DUK_")
}

func TestRenderErrors(t *testing.T) {
	b := smallBuild(t)
	var buf bytes.Buffer
	assert.Error(t, Source(&buf, b, Options{Prefix: "1bad"}))
	assert.Error(t, Header(&buf, &snapshot.Build{}, Options{}))
	assert.Zero(t, buf.Len())
}
