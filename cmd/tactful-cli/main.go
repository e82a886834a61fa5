// Package main is the tactful-cli command: sentence segmentation, fragment
// inspection and model table management from the shell.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	tactful "github.com/jamesainslie/go-tactful"
	"github.com/jamesainslie/go-tactful/document"
)

// version is set at build time via ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "tactful-cli",
	Short: "Split text into sentences with a naive Bayes boundary model",
	Long: `tactful-cli detects sentence boundaries. Text is cut at every word ending in
'.', '?' or '!', each candidate is scored against the model tables, and the
candidates above the threshold close a sentence.

Input comes from positional arguments, --file, or standard input.

Examples:
  tactful-cli segment --model model.pb "Dr. Smith arrived. He was late."
  cat article.txt | tactful-cli segment --format json
  tactful-cli tables convert model.json model.db`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogger(viper.GetString("log-level"))
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default: ./tactful.yaml or ~/.config/tactful/config.yaml)")
	flags.StringP("model", "m", "", "path to model tables (.pb, .json, .db)")
	flags.Float64P("threshold", "t", document.DefaultThreshold, "boundary probability threshold")
	flags.String("log-level", "warn", "log level: debug, info, warn, error")

	for _, name := range []string{"model", "threshold", "log-level"} {
		_ = viper.BindPFlag(name, flags.Lookup(name))
	}
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("tactful")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "tactful"))
		}
	}

	viper.SetEnvPrefix("TACTFUL")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		slog.Debug("using config file", "path", viper.ConfigFileUsed())
	}
}

// setupLogger installs a text handler on stderr at the named level.
func setupLogger(level string) error {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: l,
	})
	slog.SetDefault(slog.New(handler))
	return nil
}

// newSegmenter loads the configured model.
func newSegmenter() (*tactful.Segmenter, error) {
	modelPath := viper.GetString("model")
	if modelPath == "" {
		return nil, fmt.Errorf("no model given: use --model, TACTFUL_MODEL or the config file")
	}

	return tactful.New(modelPath,
		tactful.WithThreshold(viper.GetFloat64("threshold")),
		tactful.WithLogger(slog.Default()),
	)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := fang.Execute(ctx, rootCmd, fang.WithVersion(version)); err != nil {
		os.Exit(1)
	}
}
