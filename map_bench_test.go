package probemap

import (
	"strconv"
	"testing"
)

const benchSize = 1 << 16

func benchKeysUint64(n int) []uint64 {
	keys := make([]uint64, n)
	for i := range keys {
		keys[i] = uint64(i) * 2654435761
	}

	return keys
}

func benchKeysString(n int) []string {
	keys := make([]string, n)
	for i := range keys {
		keys[i] = strconv.Itoa(i * 31)
	}

	return keys
}

func BenchmarkMapSet(b *testing.B) {
	b.Run("variant=stdMap", func(b *testing.B) {
		keys := benchKeysUint64(benchSize)
		m := make(map[uint64]uint64, benchSize)
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			k := keys[i%benchSize]
			m[k] = k
		}
	})

	b.Run("variant=probeMap", func(b *testing.B) {
		keys := benchKeysUint64(benchSize)
		m := New[uint64, uint64](benchSize * 2)
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			k := keys[i%benchSize]
			_ = m.Set(k, k)
		}
	})
}

func BenchmarkMapGet_Hit(b *testing.B) {
	b.Run("variant=stdMap", func(b *testing.B) {
		keys := benchKeysUint64(benchSize)
		m := make(map[uint64]uint64, benchSize)
		for _, k := range keys {
			m[k] = k
		}
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			_ = m[keys[i%benchSize]]
		}
	})

	b.Run("variant=probeMap", func(b *testing.B) {
		keys := benchKeysUint64(benchSize)
		m := New[uint64, uint64](benchSize * 2)
		for _, k := range keys {
			_ = m.Set(k, k)
		}
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			_, _ = m.Lookup(keys[i%benchSize])
		}
	})
}

func BenchmarkMapGet_Miss(b *testing.B) {
	b.Run("variant=stdMap", func(b *testing.B) {
		keys := benchKeysUint64(benchSize)
		m := make(map[uint64]uint64, benchSize)
		for _, k := range keys {
			m[k] = k
		}
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			_ = m[uint64(i)+1<<62]
		}
	})

	b.Run("variant=probeMap", func(b *testing.B) {
		keys := benchKeysUint64(benchSize)
		m := New[uint64, uint64](benchSize * 2)
		for _, k := range keys {
			_ = m.Set(k, k)
		}
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			_, _ = m.Lookup(uint64(i) + 1<<62)
		}
	})
}

func BenchmarkMapGet_String(b *testing.B) {
	keys := benchKeysString(benchSize)
	m := New(benchSize*2, WithHashFunc[string, int](StringHash))
	for i, k := range keys {
		_ = m.Set(k, i)
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = m.Lookup(keys[i%benchSize])
	}
}

// A value-less Map doubles as a set.
func BenchmarkMapAsSet(b *testing.B) {
	keys := benchKeysUint64(benchSize)
	m := New[uint64, struct{}](benchSize * 2)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = m.Set(keys[i%benchSize], struct{}{})
	}
}
