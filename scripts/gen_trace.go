// Command gen_trace writes a random allocator trace script to stdout or
// a file, for feeding heapctl and heapexplorer.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"math/rand"
	"os"
)

var (
	outputFile = flag.String("output", "", "Output trace file (stdout if not specified)")
	ops        = flag.Int("ops", 200, "Number of operations to generate")
	maxSize    = flag.Int("max-size", 512, "Largest request size")
	seed       = flag.Int64("seed", 1, "Random seed")
	resizeFrac = flag.Int("resize-pct", 20, "Percent of non-alloc ops that resize instead of free")
)

func main() {
	flag.Parse()

	out := os.Stdout
	if *outputFile != "" {
		f, err := os.Create(*outputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}
	w := bufio.NewWriter(out)
	defer w.Flush()

	rng := rand.New(rand.NewSource(*seed))
	fmt.Fprintf(w, "# generated: %d ops, max size %d, seed %d\n", *ops, *maxSize, *seed)

	var live []int
	nextID := 0
	for remaining := *ops; remaining > 0; remaining-- {
		// Favor allocation until a population builds up.
		if len(live) == 0 || rng.Intn(100) < 55 {
			fmt.Fprintf(w, "a %d %d\n", nextID, 1+rng.Intn(*maxSize))
			live = append(live, nextID)
			nextID++
			continue
		}
		j := rng.Intn(len(live))
		if rng.Intn(100) < *resizeFrac {
			fmt.Fprintf(w, "r %d %d\n", live[j], 1+rng.Intn(*maxSize))
			continue
		}
		fmt.Fprintf(w, "f %d\n", live[j])
		live[j] = live[len(live)-1]
		live = live[:len(live)-1]
	}
	for _, id := range live {
		fmt.Fprintf(w, "f %d\n", id)
	}
}
