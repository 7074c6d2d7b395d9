package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/faiface/pixel/pixelgl"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/primevis/primevis/game"
)

const (
	minFrameRate = 10
	maxFrameRate = 40

	minWindowSize = 800
	maxWindowSize = 2000
)

var (
	gameConfig = game.NewGameConfig()
	configPath = ""
	verbose    = false
)

var rootCmd = &cobra.Command{
	Use:   "primevis",
	Short: "Animate the Sieve of Eratosthenes on a numbered grid",
	Long: `primevis lays the numbers 1..N² out on an N×N grid and animates the
Sieve of Eratosthenes over them, one step per tick: primes turn red,
composites light blue.

While the window is focused:
    1-9    reset the grid; digit d selects a (d+9)×(d+9) grid (10×10 - 18×18)
    Space  pause or resume the animation
    Right  advance a single step while paused
    Enter  restart the finished animation
    Q      quit
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			log.SetLevel(log.DebugLevel)
		}

		if configPath != "" {
			if err := applyDisplayConfig(cmd, configPath); err != nil {
				return err
			}
		}

		log.WithFields(log.Fields{
			"frame_rate": gameConfig.FrameRate,
			"dimensions": gameConfig.Dimensions,
		}).Debug("starting")

		pixelgl.Run(func() {
			game.Run(gameConfig)
		})
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// applyDisplayConfig folds the YAML display configuration into gameConfig.
// Values set explicitly on the command line win over file values.
func applyDisplayConfig(cmd *cobra.Command, path string) error {
	displayConfig, err := game.LoadDisplayConfig(path)
	if err != nil {
		return err
	}

	if displayConfig.FrameRate != 0 && !cmd.Flags().Changed("frame-rate") {
		if err := checkRange("frame_rate", displayConfig.FrameRate, minFrameRate, maxFrameRate); err != nil {
			return err
		}
		gameConfig.FrameRate = displayConfig.FrameRate
	}

	if displayConfig.Dimensions != 0 && !cmd.Flags().Changed("dimensions") {
		if err := checkRange("dimensions", displayConfig.Dimensions, minWindowSize, maxWindowSize); err != nil {
			return err
		}
		gameConfig.Dimensions = displayConfig.Dimensions
	}

	palette, err := displayConfig.Palette()
	if err != nil {
		return err
	}
	gameConfig.Palette = palette

	return nil
}

func checkRange(name string, value, min, max uint) error {
	if value < min || value > max {
		return fmt.Errorf("%s %d out of range [%d, %d]", name, value, min, max)
	}
	return nil
}

// boundedUintValue is a pflag.Value holding an unsigned integer restricted to
// a closed range; out-of-range arguments fail flag parsing with a usage
// error.
type boundedUintValue struct {
	value    *uint
	min, max uint
}

func newBoundedUintValue(val uint, p *uint, min, max uint) *boundedUintValue {
	*p = val
	return &boundedUintValue{value: p, min: min, max: max}
}

func (v *boundedUintValue) String() string {
	return strconv.FormatUint(uint64(*v.value), 10)
}

func (v *boundedUintValue) Set(raw string) error {
	parsed, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return fmt.Errorf("invalid integer %q", raw)
	}
	if err := checkRange("value", uint(parsed), v.min, v.max); err != nil {
		return err
	}
	*v.value = uint(parsed)
	return nil
}

func (v *boundedUintValue) Type() string {
	return "uint"
}

func init() {
	rootCmd.Flags().Var(
		newBoundedUintValue(12, &gameConfig.FrameRate, minFrameRate, maxFrameRate),
		"frame-rate", "sieve steps drawn per second")
	rootCmd.Flags().Var(
		newBoundedUintValue(800, &gameConfig.Dimensions, minWindowSize, maxWindowSize),
		"dimensions", "square window size, in pixels")
	rootCmd.Flags().StringVar(&configPath, "config", "",
		"path to a YAML display configuration (colors, frame_rate, dimensions)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
