package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/strataui/layout/container"
	"github.com/strataui/layout/layout"
	"github.com/strataui/layout/layout/fontmetrics"
	"github.com/strataui/layout/layoutconfig"
)

var renderCmd = &cobra.Command{
	Use:   "render <file>",
	Short: "Calculate a Container tree's layout and print its geometry",
	Args:  cobra.ExactArgs(1),
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().Float32("width", 1024, "root viewport width in pixels")
	renderCmd.Flags().Float32("height", 768, "root viewport height in pixels")
	renderCmd.Flags().String("format", "json", `input tree format: "json" or "yaml"`)
	renderCmd.Flags().String("font-metrics", "truetype", `text measurement backend: "truetype" (needs --font-file) or "fixed"`)
	renderCmd.Flags().String("font-file", "", "TrueType/OpenType font file for --font-metrics=truetype")
	renderCmd.Flags().String("config", "", "optional TOML configuration file for layoutconfig tunables")

	layoutconfig.Flags(renderCmd.Flags())
}

func runRender(cmd *cobra.Command, args []string) (err error) {
	flags := cmd.Flags()

	width, _ := flags.GetFloat32("width")
	height, _ := flags.GetFloat32("height")
	format, _ := flags.GetString("format")
	metricsKind, _ := flags.GetString("font-metrics")
	fontFile, _ := flags.GetString("font-file")
	configFile, _ := flags.GetString("config")

	cfg, cfgErr := layoutconfig.Load(flags, configFile)
	if cfgErr != nil {
		return fmt.Errorf("load configuration: %w", cfgErr)
	}

	b, readErr := os.ReadFile(args[0])
	if readErr != nil {
		return fmt.Errorf("read tree file: %w", readErr)
	}

	root, decodeErr := decodeTree(b, format)
	if decodeErr != nil {
		return decodeErr
	}
	root.CalculatedWidth = width
	root.CalculatedHeight = height

	metrics, metricsErr := buildMetrics(metricsKind, fontFile)
	if metricsErr != nil {
		return metricsErr
	}

	defer func() {
		if r := recover(); r != nil {
			fe, ok := r.(*container.FatalError)
			if !ok {
				panic(r)
			}
			slog.Error("layout calculation failed", "kind", fe.Kind, "message", fe.Message)
			fmt.Fprintln(os.Stderr, "offending subtree:")
			fmt.Fprintln(os.Stderr, truncatedDump(root, 0, 3))
			err = fmt.Errorf("layout: %s", fe.Kind)
		}
	}()

	layout.Calculate(root, metrics, cfg)

	out, marshalErr := json.MarshalIndent(toResult(root), "", "  ")
	if marshalErr != nil {
		return fmt.Errorf("marshal result: %w", marshalErr)
	}
	fmt.Println(string(out))
	return nil
}

func buildMetrics(kind, fontFile string) (layout.FontMetrics, error) {
	switch kind {
	case "fixed":
		return fontmetrics.NewFixed(), nil
	case "truetype":
		if fontFile == "" {
			return nil, fmt.Errorf("--font-metrics=truetype requires --font-file")
		}
		b, err := os.ReadFile(fontFile)
		if err != nil {
			return nil, fmt.Errorf("read font file: %w", err)
		}
		return fontmetrics.NewTrueType(b)
	default:
		return nil, fmt.Errorf("unknown --font-metrics %q", kind)
	}
}

func truncatedDump(c *container.Container, depth, maxDepth int) string {
	if c == nil {
		return ""
	}
	indent := strings.Repeat("  ", depth)
	line := fmt.Sprintf("%s%s {w:%.1f h:%.1f x:%.1f y:%.1f}", indent, c.Element, c.CalculatedWidth, c.CalculatedHeight, c.CalculatedX, c.CalculatedY)
	if depth >= maxDepth {
		if len(c.Children) > 0 {
			line += " ...(truncated)"
		}
		return line
	}
	var b strings.Builder
	b.WriteString(line)
	for _, child := range c.Children {
		b.WriteString("\n")
		b.WriteString(truncatedDump(child, depth+1, maxDepth))
	}
	return b.String()
}
