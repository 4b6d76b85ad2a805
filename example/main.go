// Demonstrates how probing collisions vary with load factor: inserts keys
// until the table has resized a few times, then reports average collisions
// per operation at each capacity the table passed through.
package main

import (
	"fmt"
	"log"
	"strconv"

	"go.uber.org/zap"

	"github.com/probekit/probemap"
)

const numKeys = 20000

func main() {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel) // resize events only
	logger, err := cfg.Build()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	// Deterministic hash so the numbers are comparable across runs.
	m := probemap.New(8,
		probemap.WithHashFunc[string, int](probemap.StringHash),
		probemap.WithLogger[string, int](logger),
	)

	for i := range numKeys {
		if err := m.Set(strconv.Itoa(i), i); err != nil {
			log.Fatalf("failed to insert key %d: %v", i, err)
		}
	}

	stats := m.Stats()
	fmt.Printf("\ninserted %d keys: capacity=%d load_factor=%.3f total_collisions=%d\n\n",
		stats.Size, stats.Capacity, stats.LoadFactor, stats.TotalCollisions)

	// Group the per-operation records by the capacity they ran against.
	type bucket struct {
		capacity   int
		ops        int
		collisions int
	}

	var buckets []bucket
	for _, rec := range m.CollisionLog() {
		if len(buckets) == 0 || buckets[len(buckets)-1].capacity != rec.Capacity {
			buckets = append(buckets, bucket{capacity: rec.Capacity})
		}

		b := &buckets[len(buckets)-1]
		b.ops++
		b.collisions += rec.Collisions
	}

	fmt.Println("collisions vs capacity:")
	for _, b := range buckets {
		fmt.Printf("  capacity=%7d  ops=%7d  avg_collisions_per_op=%.3f\n",
			b.capacity, b.ops, float64(b.collisions)/float64(b.ops))
	}

	// Spot-check a few reads and show the per-call counter.
	for _, key := range []string{"0", "1000", strconv.Itoa(numKeys - 1)} {
		v, err := m.Get(key)
		if err != nil {
			log.Fatalf("failed to read key %s: %v", key, err)
		}

		fmt.Printf("get %q = %d (%d collisions)\n", key, v, m.Stats().LastOpCollisions)
	}
}
