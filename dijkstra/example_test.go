// Package dijkstra_test provides examples demonstrating the stepping Dijkstra finder.
// Each example is runnable via “go test -run Example”, showing both code and expected output.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/gridwalk/dijkstra"
	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/search"
)

// ExampleDijkstra_WeightedRow demonstrates crossing a weight-2 obstacle when no
// detour exists: 1 + (2+1)*6 + 1 + 1 = 21.
func ExampleDijkstra_weightedRow() {
	g := grid.MustParse("S.2.E")
	f, err := dijkstra.New(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// Step until the end cell is popped from the heap.
	for {
		reached, err := f.Step()
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		if reached {
			break
		}
	}

	p, _ := f.Path()
	fmt.Println(p)
	fmt.Print(g)
	// Output:
	// path (0,0) -> (4,0): length=21 hops=4 visited=3
	// S***E
}

// ExampleDijkstra_Detour shows the same obstacle being avoided once a free
// second row makes the detour cheaper.
func ExampleDijkstra_detour() {
	f, err := dijkstra.New(grid.MustParse(`
		S.2.E
		.....`))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if _, err = search.Run(f, 0); err != nil {
		fmt.Println("error:", err)
		return
	}

	p, _ := f.Path()
	fmt.Println("length:", p.Length, "status:", f.Status())
	// Output:
	// length: 6 status: completed
}
