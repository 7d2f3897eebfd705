// Command life-trace runs a simulation headless and prints per-generation
// population and change-list sizes.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"

	"torus-life/pkg/core"
	_ "torus-life/pkg/sims/life"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("life-trace: ")

	sim := flag.String("sim", "life", "simulation to run")
	size := flag.Int("size", 64, "board dimension (cells per side)")
	gens := flag.Int("gens", 100, "generations to run")
	every := flag.Int("every", 10, "print every n-th generation")
	flag.Parse()

	s, err := core.Lookup(*sim, map[string]string{"size": fmt.Sprint(*size)})
	if err != nil {
		log.Fatal(err)
	}
	if err := trace(os.Stdout, s, *gens, *every); err != nil {
		log.Fatal(err)
	}
}

func trace(out io.Writer, sim core.Sim, gens, every int) error {
	if gens < 0 {
		return fmt.Errorf("gens must not be negative, got %d", gens)
	}
	if every <= 0 {
		return fmt.Errorf("every must be positive, got %d", every)
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "gen\tpop\tchanged\tflipped\t")
	row := func() {
		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t\n",
			sim.Generation(), sim.Population(), len(sim.Cells()), len(sim.Flipped()))
	}
	row()
	for i := 1; i <= gens; i++ {
		sim.Tick()
		if i%every == 0 || i == gens {
			row()
		}
	}
	return tw.Flush()
}
