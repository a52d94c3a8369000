package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/robotomize/go-allure-match/allure"
	"github.com/robotomize/go-allure-match/allurematch"
	"github.com/robotomize/go-allure-match/internal/config"
	"github.com/robotomize/go-allure-match/internal/expectation"
	"github.com/robotomize/go-allure-match/internal/results"
	"github.com/robotomize/go-allure-match/store"
)

var ErrExpectationsFailed = errors.New("expectations failed")

var checkCmd = &cobra.Command{
	Use:          "check",
	Long:         "Evaluate every expectation against the results directory",
	Short:        "check allure results",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(envFileFlag)
		if err != nil {
			return fmt.Errorf("config.Load: %w", err)
		}

		if cmd.Flags().Changed("results-dir") {
			cfg.ResultsDir = resultsDirFlag
		}

		if cmd.Flags().Changed("expect") {
			cfg.ExpectFile = expectFileFlag
		}

		if cmd.Flags().Changed("failed-dir") {
			cfg.FailedDir = failedDirFlag
		}

		if verboseFlag {
			cfg.Verbose = true
		}

		if noColorFlag {
			cfg.NoColor = true
		}

		if cfg.NoColor {
			color.NoColor = true
		}

		log := newLogger(cmd.ErrOrStderr(), cfg.Verbose)

		s, err := runCheck(cmd.Context(), cmd.OutOrStdout(), log, cfg)
		if err != nil {
			return err
		}

		if s.Failed > 0 {
			return fmt.Errorf("%d of %d: %w", s.Failed, s.Total, ErrExpectationsFailed)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

type outcome struct {
	Title  string
	Passed bool
	Detail string

	// Result is the evaluated document, nil when nothing was selected.
	Result *allure.Result
}

type summary struct {
	Total    int
	Failed   int
	Outcomes []outcome
}

func runCheck(ctx context.Context, out io.Writer, log logrus.FieldLogger, cfg *config.Config) (summary, error) {
	if cfg.ExpectFile == "" {
		return summary{}, fmt.Errorf("expectation file is required: -f <expect.yaml> or %s", config.EnvExpectFile)
	}

	f, err := os.Open(cfg.ExpectFile)
	if err != nil {
		return summary{}, fmt.Errorf("os.Open: %w", err)
	}
	defer f.Close()

	file, err := expectation.Parse(f)
	if err != nil {
		return summary{}, fmt.Errorf("expectation.Parse: %w", err)
	}

	set, err := results.NewLoader(os.DirFS(cfg.ResultsDir), results.WithLogger(log)).Load(ctx)
	if err != nil {
		return summary{}, fmt.Errorf("results Load: %w", err)
	}

	if set.Err != nil {
		log.WithError(set.Err).Warn("some result files were skipped")
	}

	log.WithFields(logrus.Fields{
		"dir":          cfg.ResultsDir,
		"results":      len(set.Files),
		"expectations": len(file.Expectations),
	}).Info("checking allure results")

	lookup := store.NewDir(cfg.ResultsDir)

	s := evaluate(file.Expectations, set, lookup, log)
	printSummary(out, s)

	if cfg.FailedDir != "" {
		if err := exportFailed(ctx, cfg.FailedDir, s, lookup, log); err != nil {
			return s, fmt.Errorf("exportFailed: %w", err)
		}
	}

	return s, nil
}

func evaluate(expectations []expectation.Expectation, set results.Set, lookup store.Lookup, log logrus.FieldLogger) summary {
	var s summary

	docs := set.Results()
	for _, e := range expectations {
		selected := e.Select(docs)
		if len(selected) == 0 {
			s.add(outcome{Title: e.Title(), Detail: "no result matched the selector"})
			continue
		}

		m := e.Compile(lookup)
		for _, doc := range selected {
			o := outcome{Title: e.Title(), Passed: true, Result: doc}
			if err := allurematch.Check(doc, m); err != nil {
				o.Passed = false
				o.Detail = strings.TrimSpace(err.Error())
			}

			log.WithFields(logrus.Fields{
				"expectation": e.Title(),
				"passed":      o.Passed,
			}).Debug("expectation evaluated")

			s.add(o)
		}
	}

	return s
}

func (s *summary) add(o outcome) {
	s.Total++
	if !o.Passed {
		s.Failed++
	}

	s.Outcomes = append(s.Outcomes, o)
}

func printSummary(w io.Writer, s summary) {
	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	bold := color.New(color.Bold).SprintFunc()

	for _, o := range s.Outcomes {
		if o.Passed {
			_, _ = fmt.Fprintf(w, "%s %s\n", green("PASS"), o.Title)
			continue
		}

		_, _ = fmt.Fprintf(w, "%s %s\n", red("FAIL"), o.Title)
		for _, line := range strings.Split(o.Detail, "\n") {
			_, _ = fmt.Fprintf(w, "    %s\n", line)
		}
	}

	_, _ = fmt.Fprintf(w, "\n%s %d passed, %d failed\n", bold("Summary:"), s.Total-s.Failed, s.Failed)
}
