// Command nuccalc runs a single detonation effects calculation and prints a
// formatted report. It resolves weapon and city presets from the same
// catalogs the service uses, so numbers here match the API exactly.
//
// Usage:
//
//	go run ./cmd/nuccalc -weapon "W80" -city Berlin -wind 10
//	go run ./cmd/nuccalc -yield 1.2 -burst optimum -city Vienna
//	go run ./cmd/nuccalc -list
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/larseberhart/nuccalc/internal/catalog"
	"github.com/larseberhart/nuccalc/internal/effects"
	"github.com/larseberhart/nuccalc/internal/observability"
	"github.com/larseberhart/nuccalc/internal/service"
)

func main() {
	weapon := flag.String("weapon", "", "weapon preset name")
	yield := flag.Float64("yield", 0, "explicit yield in megatons (overrides -weapon)")
	burst := flag.String("burst", "", "burst type: surface, optimum, low, high, thermal, blast")
	height := flag.Float64("height", -1, "explicit burst height in meters (overrides -burst)")
	city := flag.String("city", "", "target city preset name")
	wind := flag.Float64("wind", 0, "wind speed in km/h")
	rings := flag.Int("rings", effects.DefaultRingCount, "casualty integration ring count")
	weaponsFile := flag.String("weapons-file", "", "weapons catalog JSON (default: embedded)")
	citiesFile := flag.String("cities-file", "", "cities catalog JSON (default: embedded)")
	list := flag.Bool("list", false, "list available weapon and city presets")
	asJSON := flag.Bool("json", false, "print the raw result as JSON")
	flag.Parse()

	os.Exit(run(os.Stdout, *weapon, *yield, *burst, *height, *city, *wind,
		*rings, *weaponsFile, *citiesFile, *list, *asJSON))
}

func run(out io.Writer, weapon string, yield float64, burst string, height float64,
	city string, wind float64, rings int, weaponsFile, citiesFile string,
	list, asJSON bool) int {

	cat, err := catalog.Load(weaponsFile, citiesFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load catalogs: %v\n", err)
		return 1
	}

	if list {
		printCatalogs(out, cat)
		return 0
	}

	req := service.Request{
		Weapon:    weapon,
		BurstType: burst,
		City:      city,
		WindSpeed: wind,
	}
	if yield > 0 {
		req.YieldMegatons = &yield
	}
	if height >= 0 {
		req.BurstHeight = &height
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	svc := service.New(cat, nil, logger, observability.NewMetricsForTesting(), rings)

	res, err := svc.Calculate(context.Background(), req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "calculate: %v\n", err)
		return 1
	}

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			fmt.Fprintf(os.Stderr, "encode result: %v\n", err)
			return 1
		}
		return 0
	}

	printReport(out, res)
	return 0
}

func printCatalogs(out io.Writer, cat *catalog.Catalog) {
	fmt.Fprintln(out, "Weapon presets:")
	for _, w := range cat.Weapons() {
		burst := "surface"
		if w.Airburst {
			burst = fmt.Sprintf("air %4.0f m", w.TypicalHeight)
		}
		fmt.Fprintf(out, "  %-28s %-14s %8.3f MT  %s\n", w.Name, w.Type, w.YieldMegatons, burst)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "City presets:")
	for _, c := range cat.Cities() {
		fmt.Fprintf(out, "  %-16s %-16s %6.2fM people, %8.1f km2\n",
			c.Name, c.Country, c.PopulationMillions, c.AreaKm2)
	}
}

func printReport(out io.Writer, res effects.Result) {
	det := res.Detonation

	burst := "surface"
	if det.Airburst {
		burst = fmt.Sprintf("airburst at %.0f m", det.BurstHeight)
	}
	fmt.Fprintf(out, "=== Detonation Effects Report (%s) ===\n", res.ID)
	fmt.Fprintf(out, "Yield: %.3f MT   Burst: %s   Wind: %.0f km/h\n",
		det.YieldMegatons, burst, det.WindSpeed)
	fmt.Fprintf(out, "Fireball temperature: %.0f K\n\n", effects.FireballTemperature(det.YieldMegatons))

	fmt.Fprintf(out, "%-22s %12s %12s %12s\n", "Effect radii", "severe", "moderate", "light")
	printLevels(out, "Thermal radiation", res.Thermal)
	printLevels(out, "Blast overpressure", res.Blast)
	printLevels(out, "Initial radiation", res.Radiation)
	fmt.Fprintln(out)

	f := res.Fallout
	fmt.Fprintln(out, "Fallout pattern:")
	if f.FalloutAngle >= 360 {
		fmt.Fprintf(out, "  circular, radius %.2f km, dangerous zone %.3f km2\n",
			f.MaxDownwindDistance, f.DangerousZoneArea)
	} else {
		fmt.Fprintf(out, "  downwind %.2f km, width %.2f km, angle %.1f deg, dangerous zone %.3f km2\n",
			f.MaxDownwindDistance, f.MaxWidth, f.FalloutAngle, f.DangerousZoneArea)
	}
	fmt.Fprintln(out)

	if heights, err := effects.OptimalBurstHeights(det.YieldMegatons); err == nil {
		fmt.Fprintln(out, "Optimal burst heights:")
		fmt.Fprintf(out, "  thermal %.0f m, blast %.0f m, combined %.0f m\n\n",
			heights.Thermal, heights.Blast, heights.Combined)
	}

	c := res.Casualties
	fmt.Fprintln(out, "Casualty estimate:")
	fmt.Fprintf(out, "  %-22s %12.0f\n", "deaths", c.Deaths)
	fmt.Fprintf(out, "  %-22s %12.0f\n", "severe injuries", c.SevereInjuries)
	fmt.Fprintf(out, "  %-22s %12.0f\n", "light injuries", c.LightInjuries)
	fmt.Fprintf(out, "  %-22s %12.0f\n", "total affected", c.Total())
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Delayed mortality among the injured:")
	fmt.Fprintf(out, "  %-22s %12.0f\n", "within 1 year", c.Delayed1Year)
	fmt.Fprintf(out, "  %-22s %12.0f\n", "within 5 years", c.Delayed5Year)
	fmt.Fprintf(out, "  %-22s %12.0f\n", "within 10 years", c.Delayed10Year)
	fmt.Fprintf(out, "  %-22s %12.0f\n", "within 20 years", c.Delayed20Year)
}

func printLevels(out io.Writer, label string, levels effects.EffectLevels) {
	fmt.Fprintf(out, "%-22s %10.0f m %10.0f m %10.0f m\n",
		label, levels.Severe.Radius, levels.Moderate.Radius, levels.Light.Radius)
}
