package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"gridcast/internal/app"
	"gridcast/internal/bench"
	"gridcast/internal/core"
	_ "gridcast/internal/maps/arena"
	_ "gridcast/internal/maps/pillars"
	_ "gridcast/internal/maps/reference"
	"gridcast/pkg/raycast"
	"gridcast/pkg/trig"
)

type job struct {
	layout   core.Layout
	strategy raycast.Strategy
}

func main() {
	rounds := flag.Int("rounds", 4, "full turns to render per layout and strategy")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	maps := flag.String("maps", "", "comma separated layouts (all registered layouts when empty)")
	var set app.KVList
	flag.Var(&set, "set", "renderer or map override in key=value form (repeatable)")
	flag.Parse()

	log := app.ConsoleLogger()
	overrides := set.Map()
	cfg := raycast.FromMap(overrides)
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("bad config")
	}

	names := core.Names()
	if *maps != "" {
		names = strings.Split(*maps, ",")
	}
	var layouts []core.Layout
	for _, name := range names {
		l, err := core.Build(strings.TrimSpace(name), overrides)
		if err != nil {
			log.Fatal().Err(err).Msg("cannot build layout")
		}
		layouts = append(layouts, l)
	}

	tables := trig.New()
	strategies := []raycast.Strategy{raycast.StrategyDDA, raycast.StrategyMarch}
	fmt.Printf("Sweeping %d layouts x %d strategies (%d workers, %d rounds, %d rays at %dx%d)\n",
		len(layouts), len(strategies), *workers, *rounds, cfg.Rays, cfg.ScreenWidth, cfg.ScreenHeight)

	jobs := make(chan job)
	results := make(chan bench.Result)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				c := cfg
				c.Strategy = j.strategy
				res, err := bench.Sweep(j.layout, tables, c, *rounds)
				if err != nil {
					log.Error().Err(err).Str("map", j.layout.Name).Msg("sweep failed")
					continue
				}
				results <- res
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, l := range layouts {
			for _, s := range strategies {
				jobs <- job{layout: l, strategy: s}
			}
		}
		close(jobs)
	}()

	start := time.Now()
	var all []bench.Result
	for res := range results {
		if res.Escaped > 0 {
			log.Warn().Str("map", res.Layout).Str("strategy", res.Strategy.String()).Int("escaped", res.Escaped).Msg("rays escaped")
		}
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Layout != all[j].Layout {
			return all[i].Layout < all[j].Layout
		}
		return all[i].Strategy < all[j].Strategy
	})

	fmt.Printf("\nTimings (elapsed %s):\n", time.Since(start).Round(time.Millisecond))
	for _, res := range all {
		fmt.Println(res)
	}

	fmt.Println("\nMarch drift against the grid search:")
	failed := false
	for _, l := range layouts {
		d, err := bench.Compare(l, tables, cfg)
		if err != nil {
			log.Error().Err(err).Str("map", l.Name).Msg("compare failed")
			failed = true
			continue
		}
		fmt.Println(d)
	}
	if failed || len(all) != len(layouts)*len(strategies) {
		os.Exit(1)
	}
}
