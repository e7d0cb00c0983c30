// Package main provides the CLI entrypoint for hiterror.
package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"hiterror/analysis"
	"hiterror/replay"
)

var (
	cfgPath string

	analyzeSystem string
	analyzeLevel  int
	analyzeStart  float64
	analyzeEnd    float64
	analyzeMute   []int
	analyzeJSON   string
	analyzeHTML   string

	windowsSystem string
	windowsLevel  int
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "hiterror",
		Short:         "Timing deviation analysis for mania plays",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to hiterror.toml (default: ./hiterror.toml)")
	rootCmd.AddCommand(newAnalyzeCmd())
	rootCmd.AddCommand(newWindowsCmd())
	return rootCmd
}

func newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze <dump.json|url>",
		Short: "Analyze a timing deviation dump",
		Args:  cobra.ExactArgs(1),
		RunE:  runAnalyzeCmd,
	}
	cmd.Flags().StringVar(&analyzeSystem, "system", "", "scoring system: mania-v1, mania-v2, stepmania")
	cmd.Flags().IntVar(&analyzeLevel, "level", -1, "OD 0-10 for mania, judge 1-9 for stepmania")
	cmd.Flags().Float64Var(&analyzeStart, "start", 0, "selection start as a fraction of the map (0-1)")
	cmd.Flags().Float64Var(&analyzeEnd, "end", 1, "selection end as a fraction of the map (0-1)")
	cmd.Flags().IntSliceVar(&analyzeMute, "mute", nil, "columns to hide from the aggregate view")
	cmd.Flags().StringVar(&analyzeJSON, "json", "", "also write the full results to this JSON file")
	cmd.Flags().StringVar(&analyzeHTML, "html", "", "also render density and scatter charts to this HTML file")
	return cmd
}

func runAnalyzeCmd(cmd *cobra.Command, args []string) error {
	fileCfg, err := loadConfig(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "system", &analyzeSystem, fileCfg.Analyze.System)
	applyIntConfig(cmd, "level", &analyzeLevel, fileCfg.Analyze.Level)
	applyFloatConfig(cmd, "start", &analyzeStart, fileCfg.Analyze.Start)
	applyFloatConfig(cmd, "end", &analyzeEnd, fileCfg.Analyze.End)

	source := args[0]
	set, err := loadDump(source)
	if err != nil {
		return err
	}
	for _, r := range replay.Sanitize(set) {
		log.Printf("dropped %s", r)
	}

	session := analysis.NewSession(set)
	if analyzeSystem != "" {
		system, err := parseSystem(analyzeSystem)
		if err != nil {
			return err
		}
		level := analyzeLevel
		if level < 0 {
			// Only --system was given: mania keeps the dump's OD,
			// StepMania starts at judge 4.
			level = session.Profile().Level
			if system == analysis.StepMania {
				level = 4
			}
		}
		session.SetProfile(system, level)
	} else if analyzeLevel >= 0 {
		session.SetProfile(session.Profile().System, analyzeLevel)
	}
	session.SetSelection(analyzeStart, analyzeEnd)
	for _, col := range analyzeMute {
		session.ToggleColumn(col)
	}

	printReport(os.Stdout, session, source)

	if analyzeJSON != "" {
		if err := writeReportJSON(analyzeJSON, session, source); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", analyzeJSON)
	}
	if analyzeHTML != "" {
		if err := writeCharts(analyzeHTML, session, source); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", analyzeHTML)
	}
	return nil
}

func loadDump(source string) (*analysis.SampleSet, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return fetchDump(source)
	}
	return replay.DecodeFile(source)
}

func parseSystem(s string) (analysis.System, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mania-v1", "v1", "mania":
		return analysis.ManiaV1, nil
	case "mania-v2", "v2":
		return analysis.ManiaV2, nil
	case "stepmania", "sm", "etterna":
		return analysis.StepMania, nil
	}
	return 0, fmt.Errorf("unknown system %q (want mania-v1, mania-v2 or stepmania)", s)
}

func newWindowsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "windows",
		Short: "Print the hit windows of a scoring profile",
		Args:  cobra.NoArgs,
		RunE:  runWindowsCmd,
	}
	cmd.Flags().StringVar(&windowsSystem, "system", "mania-v1", "scoring system: mania-v1, mania-v2, stepmania")
	cmd.Flags().IntVar(&windowsLevel, "level", 8, "OD 0-10 for mania, judge 1-9 for stepmania")
	return cmd
}

func runWindowsCmd(cmd *cobra.Command, _ []string) error {
	system, err := parseSystem(windowsSystem)
	if err != nil {
		return err
	}
	p := analysis.NewProfile(system, windowsLevel)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s level %d\n", p.System, p.Level)
	w := p.Thresholds()
	for j := analysis.Exact; j <= analysis.Poor; j++ {
		fmt.Fprintf(out, "  %-6v +-%.0fms\n", j, w[j])
	}
	fmt.Fprintf(out, "  %-6v beyond\n", analysis.Miss)
	return nil
}
