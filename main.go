// Package main provides the riscfetch command-line tool for displaying
// RISC-V architecture information with vendor ASCII art logos.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"riscfetch/ascii"
	"riscfetch/isa"
	"riscfetch/sysinfo"
)

// options holds the CLI flag values.
type options struct {
	logo      string
	style     string
	gap       int
	explain   bool
	all       bool
	jsonOut   bool
	yamlOut   bool
	riscvOnly bool
	debug     bool
}

// ansiRegex matches ANSI escape codes for removal/measurement purposes
var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// isaDisplayMax clamps the raw ISA string in the pretty view; real boards
// ship strings long enough to wreck the column layout.
const isaDisplayMax = 64

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "riscfetch",
		Short: "RISC-V architecture information display tool",
		Long: `Riscfetch reports the ISA extensions, vector capabilities, hardware
identification CSRs and board identity of a RISC-V host, alongside
generic OS, memory and uptime information.

Output is a decorated terminal view by default; --json and --yaml emit
the same data in machine-readable form.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.logo, "logo", "l", "default",
		"vendor logo (default, sifive, starfive, thead, milkv, sipeed, pine64, kendryte, allwinner, espressif, spacemit, sophgo, wch)")
	flags.StringVar(&opts.style, "style", "normal", "logo style (normal, small, none)")
	flags.IntVar(&opts.gap, "gap", 4, "number of spaces between logo and info")
	flags.BoolVarP(&opts.explain, "explain", "e", false, "show detailed explanation of each ISA extension")
	flags.BoolVarP(&opts.all, "all", "a", false, "show all known extensions with support markers")
	flags.BoolVarP(&opts.jsonOut, "json", "j", false, "output in JSON format (machine-readable)")
	flags.BoolVarP(&opts.yamlOut, "yaml", "y", false, "output in YAML format (machine-readable)")
	flags.BoolVarP(&opts.riscvOnly, "riscv-only", "r", false, "show only RISC-V specific info")
	flags.BoolVar(&opts.debug, "debug", false, "enable debug logging on stderr")

	return cmd
}

func run(opts *options) error {
	level := slog.LevelWarn
	if opts.debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if !sysinfo.IsRISCV() {
		if opts.yamlOut {
			fmt.Println("error: not_riscv\nmessage: This system is not RISC-V")
		} else if opts.jsonOut {
			fmt.Println(`{"error": "not_riscv", "message": "This system is not RISC-V"}`)
		} else {
			fmt.Printf("\n%s\n\n", colorize("Sorry, not RISC-V", sysinfo.ColorRed))
		}
		os.Exit(1)
	}

	if opts.jsonOut || opts.yamlOut {
		return outputStructured(opts)
	}

	vendor, ok := ascii.VendorInfo(opts.logo)
	if !ok {
		slog.Debug("unknown vendor alias, using default", "alias", opts.logo)
		vendor = ascii.DefaultVendor()
	}
	logo := ascii.GetLogo(vendor, opts.style)

	switch {
	case opts.explain:
		displayExplained(logo)
	case opts.all:
		displayAll(logo)
	default:
		displayCompact(logo, opts)
	}
	return nil
}

// outputStructured serializes the collected information as JSON or YAML.
func outputStructured(opts *options) error {
	var data any
	if opts.riscvOnly {
		data = sysinfo.CollectRiscv()
	} else {
		data = sysinfo.CollectAll()
	}

	if opts.yamlOut {
		out, err := yaml.Marshal(data)
		if err != nil {
			return fmt.Errorf("marshal yaml: %w", err)
		}
		fmt.Print(string(out))
		return nil
	}

	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// displayCompact renders the logo and the category-grouped extension
// summary side-by-side, logo left, info right.
func displayCompact(logo []string, opts *options) {
	isaString := sysinfo.ISAString()

	userColored := colorize(username(), sysinfo.ColorCyan)
	hostColored := colorize(hostname(), sysinfo.ColorCyan)
	sepLen := getVisibleWidth(userColored) + getVisibleWidth(hostColored) + 1

	infoLines := []string{
		"",
		fmt.Sprintf("%s@%s", userColored, hostColored),
		strings.Repeat("-", sepLen),
		fmt.Sprintf("%s: %s", colorize("ISA", sysinfo.ColorCyan), sysinfo.TruncateString(isaString, isaDisplayMax)),
	}

	if base := isa.ParseBaseExtensions(isaString); base != "" {
		infoLines = append(infoLines, fmt.Sprintf("%s: %s", colorize("Ext", sysinfo.ColorYellow), base))
	}
	infoLines = append(infoLines, groupedLines("Z", isa.ParseZExtensionsWithCategory(isaString))...)
	infoLines = append(infoLines, groupedLines("S", isa.ParseSExtensionsWithCategory(isaString))...)

	if vector := sysinfo.VectorDetail(); vector != "" {
		infoLines = append(infoLines, fmt.Sprintf("%s: %s", colorize("Vector", sysinfo.ColorMagenta), vector))
	}

	infoLines = append(infoLines, fmt.Sprintf("%s: %s", colorize("Harts", sysinfo.ColorCyan), sysinfo.HartCount()))

	if ids := sysinfo.ReadHardwareIDs(); !ids.Empty() {
		infoLines = append(infoLines, fmt.Sprintf("%s: %s", colorize("HW IDs", sysinfo.ColorGreen), formatHardwareIDs(ids)))
	}
	if cache := sysinfo.CacheSizes(); cache != "" {
		infoLines = append(infoLines, fmt.Sprintf("%s: %s", colorize("Cache", sysinfo.ColorCyan), cache))
	}

	if !opts.riscvOnly {
		infoLines = append(infoLines, "")
		if board := sysinfo.BoardModel(); board != "" {
			infoLines = append(infoLines, fmt.Sprintf("%s: %s", colorize("Board", sysinfo.ColorBlue), board))
		}
		infoLines = append(infoLines,
			fmt.Sprintf("%s: %s", colorize("OS", sysinfo.ColorBlue), sysinfo.OSName()),
			fmt.Sprintf("%s: %s", colorize("Kernel", sysinfo.ColorBlue), sysinfo.KernelVersion()),
			fmt.Sprintf("%s: %s", colorize("Memory", sysinfo.ColorBlue), sysinfo.MemoryInfo()),
			fmt.Sprintf("%s: %s", colorize("Uptime", sysinfo.ColorBlue), sysinfo.Uptime()),
		)
	}
	infoLines = append(infoLines, "")

	renderColumns(logo, infoLines, opts.gap)
}

// groupedLines renders one "Z-Label: name name" line per detected
// category, groups in deterministic category-id order.
func groupedLines(namespace string, exts []isa.ExtensionInfo) []string {
	categoryName := isa.ZCategoryName
	if namespace == "S" {
		categoryName = isa.SCategoryName
	}

	var lines []string
	for _, group := range isa.GroupByCategory(exts) {
		names := make([]string, len(group.Extensions))
		for i, ext := range group.Extensions {
			names[i] = ext.Name
		}
		label := fmt.Sprintf("%s-%s", namespace, categoryName(group.Category))
		color := sysinfo.ColorYellow
		if namespace == "S" {
			color = sysinfo.ColorMagenta
		}
		lines = append(lines, fmt.Sprintf("%s: %s", colorize(label, color), strings.Join(names, " ")))
	}
	return lines
}

// displayExplained prints the logo on top and every detected extension
// with its description, grouped by category.
func displayExplained(logo []string) {
	for _, line := range logo {
		fmt.Println(line)
	}
	fmt.Println()

	isaString := sysinfo.ISAString()
	fmt.Printf("%s %s\n\n", colorize("ISA:", sysinfo.ColorCyan), isaString)

	fmt.Println(colorize("Extensions:", sysinfo.ColorYellow))
	for _, ext := range isa.ParseBaseExplained(isaString) {
		fmt.Printf("  %s %s\n", colorize(sysinfo.PadRight(ext.Name, 10), sysinfo.ColorGreen), ext.Description)
	}

	printExplainedGroups("Z", isa.ParseZExtensionsWithCategory(isaString))
	printExplainedGroups("S", isa.ParseSExtensionsWithCategory(isaString))

	fmt.Println()
	if vector := sysinfo.VectorDetail(); vector != "" {
		fmt.Printf("%s %s\n", colorize("Vector:", sysinfo.ColorMagenta), vector)
	}
	fmt.Printf("%s %s\n", colorize("Harts:", sysinfo.ColorCyan), sysinfo.HartCount())
	fmt.Println()
}

func printExplainedGroups(namespace string, exts []isa.ExtensionInfo) {
	categoryName := isa.ZCategoryName
	color := sysinfo.ColorYellow
	if namespace == "S" {
		categoryName = isa.SCategoryName
		color = sysinfo.ColorMagenta
	}

	for _, group := range isa.GroupByCategory(exts) {
		fmt.Println()
		fmt.Println(colorize(fmt.Sprintf("%s-Extensions (%s):", namespace, categoryName(group.Category)), color))
		for _, ext := range group.Extensions {
			fmt.Printf("  %s %s\n", colorize(sysinfo.PadRight(ext.Name, 10), sysinfo.ColorGreen), ext.Description)
		}
	}
}

// displayAll prints every catalog entry with a support marker.
func displayAll(logo []string) {
	for _, line := range logo {
		fmt.Println(line)
	}
	fmt.Println()

	isaString := sysinfo.ISAString()
	fmt.Printf("%s %s\n\n", colorize("ISA:", sysinfo.ColorCyan), isaString)

	fmt.Println(colorize("Base extensions:", sysinfo.ColorYellow))
	printStatuses(isa.AllBaseWithStatus(isaString))

	fmt.Println()
	fmt.Println(colorize("Z-extensions:", sysinfo.ColorYellow))
	printStatuses(isa.AllZWithStatus(isaString))

	fmt.Println()
	fmt.Println(colorize("S-extensions:", sysinfo.ColorMagenta))
	printStatuses(isa.AllSWithStatus(isaString))
	fmt.Println()
}

func printStatuses(statuses []isa.ExtensionStatus) {
	for _, status := range statuses {
		mark := colorize("✗", sysinfo.ColorRed)
		if status.Supported {
			mark = colorize("✓", sysinfo.ColorGreen)
		}
		fmt.Printf("  %s %s %s\n", mark, sysinfo.PadRight(status.Name, 12), status.Description)
	}
}

// renderColumns prints logo and info lines side-by-side, top-aligned,
// padding the logo column to its widest visible line.
func renderColumns(logo, infoLines []string, gapSize int) {
	logoWidth := 0
	for _, line := range logo {
		if w := getVisibleWidth(line); w > logoWidth {
			logoWidth = w
		}
	}

	maxLines := len(logo)
	if len(infoLines) > maxLines {
		maxLines = len(infoLines)
	}

	gap := strings.Repeat(" ", gapSize)
	for i := 0; i < maxLines; i++ {
		var logoLine, infoLine string

		if i < len(logo) {
			logoLine = logo[i]
			if padding := logoWidth - getVisibleWidth(logoLine); padding > 0 {
				logoLine += strings.Repeat(" ", padding)
			}
		} else {
			logoLine = strings.Repeat(" ", logoWidth)
		}

		if i < len(infoLines) {
			infoLine = infoLines[i]
		}

		fmt.Printf("%s%s%s\n", logoLine, gap, infoLine)
	}
}

func formatHardwareIDs(ids sysinfo.HardwareIDs) string {
	var parts []string
	if ids.MVendorID != "" {
		parts = append(parts, "vendor:"+ids.MVendorID)
	}
	if ids.MArchID != "" {
		parts = append(parts, "arch:"+ids.MArchID)
	}
	if ids.MImpID != "" {
		parts = append(parts, "impl:"+ids.MImpID)
	}
	return strings.Join(parts, " ")
}

func username() string {
	if user := os.Getenv("USER"); user != "" {
		return user
	}
	return "unknown"
}

func hostname() string {
	host, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return host
}

// getVisibleWidth calculates the display width of a string excluding
// ANSI escape codes.
func getVisibleWidth(s string) int {
	return runewidth.StringWidth(ansiRegex.ReplaceAllString(s, ""))
}

// colorize wraps text with ANSI color codes, honoring NO_COLOR.
func colorize(text, color string) string {
	if os.Getenv("NO_COLOR") != "" {
		return text
	}
	return color + text + sysinfo.ColorReset
}
