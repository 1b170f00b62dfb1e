package value_test

import (
	"math"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ftl-lang/ftl/dir"
	"github.com/ftl-lang/ftl/value"
)

// roundTrip prints v then reparses it with its own type's Parse, matching
// spec §8's "parse(print(v)) = v" property.
func roundTrip(t *testing.T, v value.Value) value.Value {
	t.Helper()
	printed := v.Kind().Print(v, v)
	require.NotEmpty(t, printed)
	parsed, ok := v.Kind().Parse(&printed)
	require.True(t, ok, "failed to reparse %q", printed)
	return parsed
}

func TestRoundTripInt(t *testing.T) {
	for _, n := range []int64{0, 1, 3, 4, -1, 100, math.MaxInt64, math.MinInt64} {
		v := value.NewInt(nil, n)
		got := roundTrip(t, v)
		assert.True(t, value.Equal(v, got), "round-trip mismatch for %d: got %s", n, got.String(nil))
	}
}

func TestRoundTripString(t *testing.T) {
	for _, s := range []string{"", "hello", "with \"quotes\" and \\backslash\\", "line\nbreak\ttab"} {
		v := value.NewFromString(nil, s)
		got := roundTrip(t, v)
		assert.True(t, value.Equal(v, got), "round-trip mismatch for %q", s)
	}
}

func TestRoundTripNull(t *testing.T) {
	got := roundTrip(t, value.TheNull)
	assert.True(t, value.IsNull(got))
}

func TestRoundTripIPAddr(t *testing.T) {
	v := value.NewIPAddr(nil, net.ParseIP("192.168.1.1"))
	got := roundTrip(t, v)
	assert.True(t, value.Equal(v, got))
}

func TestRoundTripMACAddr(t *testing.T) {
	mac, err := net.ParseMAC("aa:bb:cc:dd:ee:ff")
	require.NoError(t, err)
	v := value.NewMACAddr(nil, mac)
	got := roundTrip(t, v)
	assert.True(t, value.Equal(v, got))
}

// TestNultermIdempotent: nulterm(nulterm(s)) compares equal to nulterm(s)
// (spec §8), even though the two calls need not share an address (spec §9
// open question, resolved as "may return a new address").
func TestNultermIdempotent(t *testing.T) {
	s := value.NewFromString(nil, "hello")
	once := value.Nulterm(nil, s)
	twice := value.Nulterm(nil, once)
	assert.True(t, value.Equal(once, twice))
}

// TestSubstringWholeRange: substring(s, 0, len(s)) compares equal to s,
// by content rather than by pointer identity (spec §8).
func TestSubstringWholeRange(t *testing.T) {
	s := value.NewFromString(nil, "hello world")
	sub := value.NewSubstring(nil, s, 0, s.Len())
	assert.True(t, value.Equal(s, sub))
}

func TestSubstringWindow(t *testing.T) {
	s := value.NewFromString(nil, "hello world")
	sub := value.NewSubstring(nil, s, 6, 5)
	assert.Equal(t, "world", string(sub.Get()))
}

// TestLocalsProtocol: a freshly allocated value starts on its locals list
// (invariant: "immediately after creation v is on s.locals") and Unlocal
// removes it in O(1), the standard commitment point once it's placed into
// a rooted container.
func TestLocalsProtocol(t *testing.T) {
	heap := value.NewHeap()
	value.InstallStatics(heap)
	locals := value.NewLocals(heap)

	s := value.NewCopy(locals, []byte("scratch"))
	assert.True(t, value.IsLocal(s))

	value.Unlocal(s)
	assert.False(t, value.IsLocal(s))

	// Unlocal is idempotent/safe to call again.
	value.Unlocal(s)
	assert.False(t, value.IsLocal(s))
}

// TestCollectKeepsRootReachable mirrors spec §8 scenario 6 at the value
// layer: a value reachable from the heap's root directory survives a
// Collect cycle once removed from its locals list.
func TestCollectKeepsRootReachable(t *testing.T) {
	heap := value.NewHeap()
	value.InstallStatics(heap)
	locals := value.NewLocals(heap)
	root := dir.NewIDDir(locals)
	heap.SetRoot(root)
	value.Unlocal(root)

	s := value.NewCopy(locals, []byte("hello"))
	root.Add("s", s)
	value.Unlocal(s)

	heap.Collect()

	got := root.Get("s")
	require.False(t, value.IsNull(got))
	gs, ok := got.(*value.Str)
	require.True(t, ok)
	assert.Equal(t, "hello", string(gs.Get()))
}

func TestCompareValuesDifferentKinds(t *testing.T) {
	i := value.NewInt(nil, 1)
	s := value.NewFromString(nil, "1")
	assert.False(t, value.Equal(i, s))
	assert.NotEqual(t, 0, value.CompareValues(i, s))
}

func TestCompareValuesNil(t *testing.T) {
	assert.Equal(t, 0, value.CompareValues(nil, nil))
	assert.True(t, value.CompareValues(nil, value.TheNull) < 0)
	assert.True(t, value.CompareValues(value.TheNull, nil) > 0)
}
