// Package layoutconfig holds the engine's tuning knobs: scrollbar
// width, the fix-point attempt cap, the epsilon used for float
// comparisons, and the default table-row height floor. SPEC_FULL.md's
// AMBIENT STACK calls these "compile-time or injected" configuration
// (spec.md §5) — this package is the injection point, loadable from
// flags, environment, and an optional TOML file via
// github.com/spf13/viper, the same configuration-loading pattern used
// by other_examples/tj-smith47/shelly-cli.
package layoutconfig

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config are the tunables the Fix-Point Driver (C11) and Scrollbar
// Reconciler (C9) read. Defaults match the values spec.md names
// explicitly (scrollbar 16px, MAX_ATTEMPTS 100, epsilon 0.01).
type Config struct {
	// ScrollbarSize is the fixed-width strip reserved on the opposite
	// axis when a Scroll/Auto container's content overflows (C9).
	ScrollbarSize float32 `mapstructure:"scrollbar_size"`

	// MaxFixPointAttempts bounds the Fix-Point Driver (C11); exceeding
	// it is a KindFixPointDivergence fatal error.
	MaxFixPointAttempts int `mapstructure:"max_fix_point_attempts"`

	// Epsilon is the tolerance used to decide whether an Expand
	// container's content extent "differs" from its current calculated
	// size (C8), and whether resize_children changed a child's
	// calculated size enough to warrant another fix-point iteration.
	Epsilon float32 `mapstructure:"epsilon"`

	// DefaultTableCellHeight is the row-height floor the Table Solver
	// (C7) uses when no cell in a row declares a height.
	DefaultTableCellHeight float32 `mapstructure:"default_table_cell_height"`

	// DefaultFontSize is the pixel font size the Hard-Size Propagator
	// (C3) passes to FontMetrics.MeasureText when sizing a RawText leaf
	// that declares no width of its own. The container tree carries no
	// per-node font-size style (out of scope per spec.md's text-shaping
	// Non-goal), so one engine-wide size stands in for it.
	DefaultFontSize float32 `mapstructure:"default_font_size"`
}

// Default returns the engine's default configuration.
func Default() Config {
	return Config{
		ScrollbarSize:          16,
		MaxFixPointAttempts:    100,
		Epsilon:                0.01,
		DefaultTableCellHeight: 25,
		DefaultFontSize:        16,
	}
}

// Load builds a Config from (in increasing precedence order) the
// defaults, an optional TOML file, LAYOUTCALC_*-prefixed environment
// variables, and the given flag set.
func Load(flags *pflag.FlagSet, configFile string) (Config, error) {
	v := viper.New()
	d := Default()
	v.SetDefault("scrollbar_size", d.ScrollbarSize)
	v.SetDefault("max_fix_point_attempts", d.MaxFixPointAttempts)
	v.SetDefault("epsilon", d.Epsilon)
	v.SetDefault("default_table_cell_height", d.DefaultTableCellHeight)
	v.SetDefault("default_font_size", d.DefaultFontSize)

	v.SetEnvPrefix("LAYOUTCALC")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, err
		}
	}

	if flags != nil {
		for _, key := range []string{"scrollbar_size", "max_fix_point_attempts", "epsilon", "default_table_cell_height", "default_font_size"} {
			if f := flags.Lookup(strings.ReplaceAll(key, "_", "-")); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, err
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Flags registers the Config's CLI flags on the given flag set, for use
// by cmd/layoutcalc.
func Flags(flags *pflag.FlagSet) {
	d := Default()
	flags.Float32("scrollbar-size", d.ScrollbarSize, "scrollbar reservation width/height in pixels")
	flags.Int("max-fix-point-attempts", d.MaxFixPointAttempts, "fix-point driver iteration cap before FixPointDivergence")
	flags.Float32("epsilon", d.Epsilon, "float tolerance for expand/resize change detection")
	flags.Float32("default-table-cell-height", d.DefaultTableCellHeight, "row-height floor when no cell in a table row declares a height")
	flags.Float32("default-font-size", d.DefaultFontSize, "pixel font size used to measure an unsized RawText leaf")
}
