package bfs_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridwalk/bfs"
	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/search"
)

// BenchmarkBFS_OpenGrid measures a full corner-to-corner run on an empty
// 200×200 grid, resetting between iterations.
// Complexity: O(W×H) per run.
func BenchmarkBFS_OpenGrid(b *testing.B) {
	const n = 200
	g := grid.NewFilled(n, n)
	g.Set(grid.Coord{X: 0, Y: 0}, grid.StartCell())
	g.Set(grid.Coord{X: n - 1, Y: n - 1}, grid.EndCell())

	f, err := bfs.New(g)
	if err != nil {
		b.Fatalf("setup bfs.New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.Reset()
		if _, err := search.Run(f, 0); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkBFS_RandomObstacles runs on a 200×200 grid with ~25% obstacles.
func BenchmarkBFS_RandomObstacles(b *testing.B) {
	const n = 200
	r := rand.New(rand.NewSource(42))
	g := randomGrid(r, n, n, 0.25)

	f, err := bfs.New(g)
	if err != nil {
		b.Fatalf("setup bfs.New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.Reset()
		if _, err := search.Run(f, 0); err != nil {
			b.Fatal(err)
		}
	}
}
