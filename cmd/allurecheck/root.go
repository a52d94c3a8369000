package main

import (
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	verboseFlag    bool
	noColorFlag    bool
	resultsDirFlag string
	expectFileFlag string
	envFileFlag    string
	failedDirFlag  string
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(
		&verboseFlag,
		"verbose",
		"v",
		false,
		"verbose",
	)
	rootCmd.PersistentFlags().BoolVarP(
		&noColorFlag,
		"no-color",
		"",
		false,
		"disable colored output",
	)
	rootCmd.PersistentFlags().StringVarP(
		&resultsDirFlag,
		"results-dir",
		"d",
		"",
		"path to allure results: -d <allure-results>",
	)
	rootCmd.PersistentFlags().StringVarP(
		&expectFileFlag,
		"expect",
		"f",
		"",
		"path to the expectation file: -f <expect.yaml>",
	)
	rootCmd.PersistentFlags().StringVarP(
		&envFileFlag,
		"env-file",
		"",
		".env",
		"dotenv file with ALLURE_* settings",
	)
	rootCmd.PersistentFlags().StringVarP(
		&failedDirFlag,
		"failed-dir",
		"",
		"",
		"copy failed results and their attachments to: --failed-dir <dir>",
	)
}

var rootCmd = &cobra.Command{
	Use:          "allurecheck",
	Long:         "Check allure results against an expectation file",
	SilenceUsage: true,
}

func newLogger(w io.Writer, verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	return log
}
