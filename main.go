package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/leonelquinteros/gotext"

	"gridfall/pkg/engine/input"
	"gridfall/pkg/game/devtools"
	"gridfall/pkg/game/renderer"
	"gridfall/pkg/game/state"
)

const headlessTickDuration = 1.0 / 60.0

func initGotext() {
	gotext.Configure("mo", "en_GB", "default")
}

func main() {
	seed := flag.Int64("seed", 0, "world seed (0 picks one from the clock)")
	tutorial := flag.Bool("tutorial", false, "start in the tutorial pen")
	headless := flag.Bool("headless", false, "run the simulation without a window")
	ticks := flag.Int("ticks", 600, "simulation ticks to run in headless mode")
	dumpMap := flag.Bool("dump-map", false, "print the generated layout, write map.txt and exit")
	flag.Parse()

	initGotext()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	g := state.NewGame(*seed, *tutorial)

	if *dumpMap {
		devtools.PrintGrid(g.Controller.Grid())
		path, err := devtools.DumpLevelToFile(g)
		if err != nil {
			fmt.Fprintf(os.Stderr, "map dump failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("wrote %s\n", path)
		return
	}

	if *headless {
		runHeadless(g, *ticks)
		return
	}

	if err := renderer.Run(g); err != nil {
		log.Fatal(err)
	}
}

// runHeadless advances the simulation with a constant walk-forward intent.
// Useful for smoke-testing generation and progression without a display.
func runHeadless(g *state.Game, ticks int) {
	for i := 0; i < ticks && !g.GameOver; i++ {
		g.Tick(input.Intent{Forward: 1}, headlessTickDuration)
	}

	fmt.Printf("level: %d\n", g.Level)
	fmt.Printf("entities: %d\n", g.Scene.Len())
	fmt.Printf("hostiles: %d\n", g.Hostiles.Count())
	fmt.Printf("cleared: %v\n", g.Controller.Cleared())
	fmt.Printf("game_over: %v\n", g.GameOver)
	for _, msg := range g.Messages {
		fmt.Printf("message: %s\n", msg)
	}
}
