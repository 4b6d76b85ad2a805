package probemap

import (
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/require"
)

func TestMakeDefaultHashFunc(t *testing.T) {
	f := MakeDefaultHashFunc[string]()

	require.Equal(t, f("foo"), f("foo"))
	require.NotEqual(t, f("foo"), f("bar"))
}

func TestStringHash(t *testing.T) {
	require.Equal(t, xxhash.Sum64String("foo"), StringHash("foo"))
	require.Equal(t, StringHash("foo"), StringHash("foo"))
	require.NotEqual(t, StringHash("foo"), StringHash("bar"))
}

func TestUint64Hash(t *testing.T) {
	require.Equal(t, Uint64Hash(42), Uint64Hash(42))
	require.NotEqual(t, Uint64Hash(0), Uint64Hash(1))
}

func TestHashFuncsPlugIntoMap(t *testing.T) {
	sm := New(16, WithHashFunc[string, int](StringHash))
	require.NoError(t, sm.Set("foo", 1))

	v, err := sm.Get("foo")
	require.NoError(t, err)
	require.Equal(t, 1, v)

	um := New(16, WithHashFunc[uint64, int](Uint64Hash))
	require.NoError(t, um.Set(7, 2))

	v, err = um.Get(7)
	require.NoError(t, err)
	require.Equal(t, 2, v)
}
