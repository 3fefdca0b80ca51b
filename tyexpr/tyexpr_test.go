package tyexpr_test

import (
	"testing"

	"github.com/buildgen/typestate/tyexpr"
	"github.com/stretchr/testify/require"
)

func TestParse_Plain(t *testing.T) {
	ty, err := tyexpr.Parse("u32")
	require.NoError(t, err)
	require.Equal(t, tyexpr.Named("u32"), ty)
	require.Equal(t, "u32", ty.String())
}

func TestParse_OptionWrapper(t *testing.T) {
	ty, err := tyexpr.Parse("Option<u32>")
	require.NoError(t, err)
	require.True(t, ty.IsOption())

	inner, ok := ty.OptionParam()
	require.True(t, ok)
	require.Equal(t, tyexpr.Named("u32"), inner)
	require.Equal(t, "Option<u32>", ty.String())
}

func TestParse_NestedAndMultiArg(t *testing.T) {
	ty, err := tyexpr.Parse("Map<String, Option<Vec<u8>>>")
	require.NoError(t, err)
	require.Equal(t, "Map", ty.Name)
	require.Len(t, ty.Args, 2)
	require.True(t, ty.Args[1].IsOption())
	// Canonical rendering round-trips.
	require.Equal(t, "Map<String, Option<Vec<u8>>>", ty.String())
}

func TestParse_WhitespaceAndQualified(t *testing.T) {
	ty, err := tyexpr.Parse("Option< core.Duration >")
	require.NoError(t, err)
	inner, ok := ty.OptionParam()
	require.True(t, ok)
	require.Equal(t, "core.Duration", inner.Name)
}

func TestParse_Malformed(t *testing.T) {
	for _, src := range []string{"", "Option<", "Option<u32", "Option<u32>>", "<u32>", "Vec<,u32>", "u32 extra", "a..b"} {
		_, err := tyexpr.Parse(src)
		require.ErrorIs(t, err, tyexpr.ErrSyntax, "input %q", src)
	}
}

func TestProbes(t *testing.T) {
	// bool is the two-valued type; Option<bool> is a wrapper, not a bool.
	require.True(t, tyexpr.Named("bool").IsBool())
	require.False(t, tyexpr.MustParse("Option<bool>").IsBool())
	require.False(t, tyexpr.Named("u32").IsBool())

	// Option must carry exactly one argument to count as the wrapper.
	require.False(t, tyexpr.Named("Option").IsOption())
	require.False(t, tyexpr.MustParse("Option<A, B>").IsOption())

	_, ok := tyexpr.Named("u32").OptionParam()
	require.False(t, ok)
}

func TestEqual(t *testing.T) {
	a := tyexpr.MustParse("Map<String, Option<u8>>")
	b := tyexpr.MustParse("Map<String,Option<u8>>")
	require.True(t, a.Equal(b))
	require.False(t, a.Equal(tyexpr.MustParse("Map<String, Option<u16>>")))
	require.False(t, a.Equal(tyexpr.MustParse("Map<String>")))
}

func TestMustParse_PanicsOnMalformed(t *testing.T) {
	require.Panics(t, func() { tyexpr.MustParse("Option<") })
}
