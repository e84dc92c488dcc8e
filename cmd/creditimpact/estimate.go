package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dshills/creditimpact/internal/content"
	"github.com/dshills/creditimpact/internal/impact"
	"github.com/dshills/creditimpact/internal/logging"
	"github.com/dshills/creditimpact/internal/render"
	"github.com/dshills/creditimpact/internal/scenario"
	"github.com/dshills/creditimpact/internal/schema"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

type estimateFlags struct {
	latePayment  bool
	newAccount   bool
	hardInquiry  bool
	utilization  string
	scenarioPath string
	contentName  string
	contentFile  string
	format       string
	out          string
	clamp        bool
	failOn       string
	noColor      bool
	verbose      bool

	// set when any action flag was given explicitly
	actionFlags bool

	stdout io.Writer
	stderr io.Writer
}

func newEstimateCmd() *cobra.Command {
	f := &estimateFlags{}

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate the credit impact of a set of actions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range []string{"late-payment", "new-account", "hard-inquiry", "utilization"} {
				if cmd.Flags().Changed(name) {
					f.actionFlags = true
				}
			}
			f.stdout = cmd.OutOrStdout()
			f.stderr = cmd.ErrOrStderr()
			return runEstimate(f)
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&f.latePayment, "late-payment", false, "A 30+ day late payment occurred")
	flags.BoolVar(&f.newAccount, "new-account", false, "A new credit account was opened")
	flags.BoolVar(&f.hardInquiry, "hard-inquiry", false, "A hard inquiry was recorded")
	flags.StringVar(&f.utilization, "utilization", "0", "Credit utilization change in percentage points (negative = decrease)")
	flags.StringVar(&f.scenarioPath, "scenario", "", "Scenario file (YAML or JSON) with one or more inputs")
	flags.StringVar(&f.contentName, "content", content.DefaultName, "Built-in content set for tips and disclaimer")
	flags.StringVar(&f.contentFile, "content-file", "", "Content YAML file (overrides --content)")
	flags.StringVar(&f.format, "format", "text", "Output format: text, md, or json")
	flags.StringVar(&f.out, "out", "", "Output file path (default: stdout)")
	flags.BoolVar(&f.clamp, "clamp", false, "Clamp utilization change into [-100, 100] instead of rejecting it")
	flags.StringVar(&f.failOn, "fail-on", "", "Exit non-zero if any risk level meets this level: low, medium, or high")
	flags.BoolVar(&f.noColor, "no-color", false, "Disable coloured text output")
	flags.BoolVar(&f.verbose, "verbose", false, "Print processing steps to stderr")

	return cmd
}

func runEstimate(f *estimateFlags) error {
	if f.stdout == nil {
		f.stdout = os.Stdout
	}
	if f.stderr == nil {
		f.stderr = os.Stderr
	}
	level := "warn"
	if f.verbose {
		level = "debug"
	}
	logger := logging.New(f.stderr, level, isTerminal(f.stderr))

	// validate output options up front so a bad flag never half-writes a report
	switch f.format {
	case "text", "md", "json":
	default:
		return exitError(3, "unknown format: %s", f.format)
	}
	var threshold impact.RiskLevel
	if f.failOn != "" {
		var err error
		if threshold, err = parseRiskLevel(f.failOn); err != nil {
			return exitError(3, "%v", err)
		}
	}

	// 1. Load content
	cnt, err := loadContent(f)
	if err != nil {
		return exitError(3, "failed to load content: %v", err)
	}
	logger.Debug("loaded content", "name", cnt.Name, "tips", len(cnt.Tips))

	// 2. Collect inputs
	var (
		scenarios []scenario.Scenario
		source    impact.Source
	)
	if f.scenarioPath != "" {
		if f.actionFlags {
			return exitError(3, "action flags cannot be combined with --scenario")
		}
		logger.Debug("loading scenarios", "path", f.scenarioPath)
		sf, err := scenario.Load(f.scenarioPath)
		if err != nil {
			return exitError(3, "failed to load scenarios: %v", err)
		}
		scenarios = sf.Scenarios
		source = impact.Source{File: filepath.Base(sf.FilePath), Hash: sf.Hash}
		logger.Debug("loaded scenarios", "count", len(scenarios), "hash", sf.Hash)
	} else {
		util, clean := scenario.ParseUtilization(f.utilization)
		if !clean && strings.TrimSpace(f.utilization) != "" {
			logger.Warn("utilization is not an integer, coerced", "input", f.utilization, "value", util)
		}
		scenarios = []scenario.Scenario{{Input: impact.Input{
			LatePayment:       f.latePayment,
			NewAccount:        f.newAccount,
			HardInquiry:       f.hardInquiry,
			UtilizationChange: util,
		}}}
	}

	// 3. Validate
	var validationErrs []schema.ValidationError
	clamped := make([]bool, len(scenarios))
	for i := range scenarios {
		prefix := ""
		if f.scenarioPath != "" {
			prefix = fmt.Sprintf("scenarios[%d]", i)
		}
		errs := schema.Validate(scenarios[i].Input, prefix)
		if len(errs) == 0 {
			continue
		}
		if !f.clamp {
			validationErrs = append(validationErrs, errs...)
			continue
		}
		scenarios[i].Input, clamped[i] = schema.Clamp(scenarios[i].Input)
		logger.Warn("utilization clamped", "scenario", scenarios[i].Name, "value", scenarios[i].UtilizationChange)
	}
	if len(validationErrs) > 0 {
		fmt.Fprintln(f.stderr, "Input validation errors:")
		for _, e := range validationErrs {
			fmt.Fprintf(f.stderr, "  %s\n", e)
		}
		return exitError(3, "input failed validation (use --clamp to clamp utilization)")
	}

	// 4. Evaluate
	reports := make([]impact.Report, len(scenarios))
	for i, s := range scenarios {
		res := impact.Evaluate(s.Input)
		logger.Debug("evaluated", "scenario", s.Name, "total", res.TotalImpact, "label", res.Label, "risk", res.Risk)

		src := source
		if f.scenarioPath != "" {
			src.Scenario = s.Name
		}
		src.Clamped = clamped[i]
		reports[i] = impact.Report{
			Tool:       "creditimpact",
			Version:    version,
			Source:     src,
			Input:      s.Input,
			Result:     res,
			Title:      cnt.Title,
			Subtitle:   cnt.Subtitle,
			Tips:       cnt.Tips,
			Disclaimer: cnt.Disclaimer,
			Notes:      cnt.Notes,
			Copyright:  cnt.Copyright,
		}
	}

	// 5. Render
	output, err := renderReports(reports, f.format, f.colorEnabled())
	if err != nil {
		return err
	}

	if f.out != "" {
		logger.Debug("writing output", "path", f.out)
		if err := os.WriteFile(f.out, []byte(output), 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else if _, err := io.WriteString(f.stdout, output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	// 6. Exit code based on --fail-on
	if threshold != "" {
		for _, r := range reports {
			if riskMeetsThreshold(r.Result.Risk, threshold) {
				return exitError(2, "risk level %s meets fail threshold %s", r.Result.Risk, threshold)
			}
		}
	}

	return nil
}

func loadContent(f *estimateFlags) (*content.Content, error) {
	if f.contentFile != "" {
		return content.Load(f.contentFile)
	}
	return content.LoadBuiltin(f.contentName)
}

// renderReports renders every report in the chosen format. In text and md
// output the static tips, disclaimer and footer are only shown once, after
// the last report; text output also shows the title only once.
func renderReports(reports []impact.Report, format string, color bool) (string, error) {
	switch format {
	case "json":
		var v any = reports
		if len(reports) == 1 {
			v = reports[0]
		}
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to marshal output: %w", err)
		}
		return string(data) + "\n", nil
	case "md":
		parts := make([]string, len(reports))
		for i := range reports {
			r := reports[i]
			if i < len(reports)-1 {
				stripStatic(&r)
			}
			parts[i] = render.Markdown(&r)
		}
		return strings.Join(parts, "\n"), nil
	case "text":
		var b strings.Builder
		for i := range reports {
			r := reports[i]
			if i < len(reports)-1 {
				stripStatic(&r)
			}
			if i > 0 {
				r.Title, r.Subtitle = "", ""
				b.WriteString("\n")
			}
			if err := render.Text(&b, &r, render.TextOptions{Color: color}); err != nil {
				return "", err
			}
		}
		return b.String(), nil
	}
	return "", exitError(3, "unknown format: %s", format)
}

func stripStatic(r *impact.Report) {
	r.Tips = nil
	r.Disclaimer = ""
	r.Notes = nil
	r.Copyright = ""
}

func (f *estimateFlags) colorEnabled() bool {
	if f.noColor || f.out != "" || f.format != "text" {
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return isTerminal(f.stdout)
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}

func parseRiskLevel(s string) (impact.RiskLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return impact.RiskLow, nil
	case "medium":
		return impact.RiskMedium, nil
	case "high":
		return impact.RiskHigh, nil
	}
	return "", fmt.Errorf("unrecognized --fail-on value %q (valid: low, medium, high)", s)
}

func riskMeetsThreshold(risk, threshold impact.RiskLevel) bool {
	if !risk.Valid() || !threshold.Valid() {
		return false
	}
	return risk.Order() >= threshold.Order()
}
