// Package cli implements the suffixkit command tree: every command builds the
// substring structures over one text and renders them as a table, JSON or YAML.
package cli

import (
	"io"
	"os"

	"github.com/katalvlaran/suffixkit/index"
	"github.com/katalvlaran/suffixkit/internal/input"
	"github.com/katalvlaran/suffixkit/suffixarray"

	"github.com/nuclio/errors"
	"github.com/nuclio/logger"
	"github.com/nuclio/zap"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

type RootCommandeer struct {
	loggerInstance logger.Logger
	cmd            *cobra.Command
	verbose        bool
	output         string
	file           string
	strategyName   string
	keepNewline    bool
	strategy       suffixarray.Strategy
}

func NewRootCommandeer() *RootCommandeer {
	commandeer := &RootCommandeer{}

	cmd := &cobra.Command{
		Use:           "suffixkit [command]",
		Short:         "Suffix array, LCP and suffix automaton explorer",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	defaultOutput := os.Getenv("SUFFIXKIT_OUTPUT")
	if defaultOutput == "" {
		defaultOutput = OutputFormatText
	}

	defaultStrategy := os.Getenv("SUFFIXKIT_STRATEGY")
	if defaultStrategy == "" {
		defaultStrategy = suffixarray.StrategyComparison.String()
	}

	cmd.PersistentFlags().BoolVarP(&commandeer.verbose, "verbose", "v", false, "Verbose output")
	cmd.PersistentFlags().StringVarP(&commandeer.output, "output", "o", defaultOutput, "Output format - \"text\", \"json\" or \"yaml\"")
	cmd.PersistentFlags().StringVarP(&commandeer.file, "file", "f", "", "Read the text from a file (.gz, .zst and .xz are decompressed)")
	cmd.PersistentFlags().StringVarP(&commandeer.strategyName, "strategy", "", defaultStrategy, "Suffix array sort strategy - \"comparison\" or \"radix\"")
	cmd.PersistentFlags().BoolVarP(&commandeer.keepNewline, "keep-newline", "", false, "Keep the trailing newline of file or stdin input")

	// add children
	cmd.AddCommand(
		newSuffixesCommandeer(commandeer).cmd,
		newAutomatonCommandeer(commandeer).cmd,
		newVerifyCommandeer(commandeer).cmd,
		newSearchCommandeer(commandeer).cmd,
	)

	commandeer.cmd = cmd

	return commandeer
}

// Execute uses os.Args to execute the command
func (rc *RootCommandeer) Execute() error {
	err := rc.cmd.Execute()
	if err == nil {
		return nil
	}

	// argument errors fire before any command initialized the logger
	if rc.loggerInstance == nil {
		loggerInstance, loggerErr := rc.createLogger()
		if loggerErr != nil {
			return err
		}

		rc.loggerInstance = loggerInstance
	}

	rc.loggerInstance.ErrorWith("Command failed", "err", errors.GetErrorStackString(err, 10))

	return err
}

// GetCmd returns the underlying cobra command
func (rc *RootCommandeer) GetCmd() *cobra.Command {
	return rc.cmd
}

func (rc *RootCommandeer) initialize() error {
	var err error

	switch rc.output {
	case OutputFormatText, OutputFormatJSON, OutputFormatYAML:
		break
	default:
		return errors.Errorf("Invalid output format %q. Must be one of text / json / yaml", rc.output)
	}

	rc.strategy, err = suffixarray.ParseStrategy(rc.strategyName)
	if err != nil {
		return errors.Wrap(err, "Failed to parse strategy")
	}

	if rc.loggerInstance == nil {
		rc.loggerInstance, err = rc.createLogger()
		if err != nil {
			return errors.Wrap(err, "Failed to create logger")
		}
	}

	rc.loggerInstance.DebugWith("Initialized root",
		"output", rc.output,
		"strategy", rc.strategy.String())

	return nil
}

func (rc *RootCommandeer) createLogger() (logger.Logger, error) {
	var loggerLevel nucliozap.Level

	if rc.verbose {
		loggerLevel = nucliozap.DebugLevel
	} else {
		loggerLevel = nucliozap.InfoLevel
	}

	loggerInstance, err := nucliozap.NewNuclioZapCmd("suffixkit", loggerLevel)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to create logger")
	}

	return loggerInstance, nil
}

// resolveText picks the command's text from its arguments, --file, piped
// stdin or defaultText, in that order.
func (rc *RootCommandeer) resolveText(cmd *cobra.Command, args []string, defaultText string) (string, error) {
	stdin := cmd.InOrStdin()

	text, origin, err := input.Resolve(args, rc.file, input.Options{
		Stdin:           stdin,
		StdinIsTerminal: isTerminal(stdin),
		Default:         defaultText,
		KeepNewline:     rc.keepNewline,
	})
	if err != nil {
		return "", errors.Wrap(err, "Failed to resolve input text")
	}

	rc.loggerInstance.DebugWith("Resolved input text",
		"origin", string(origin),
		"runes", len([]rune(text)))

	return text, nil
}

// buildIndex indexes text with the configured strategy.
func (rc *RootCommandeer) buildIndex(text string) *index.Index[rune] {
	idx := index.NewString(text, index.WithStrategy(rc.strategy))

	rc.loggerInstance.DebugWith("Built index",
		"length", idx.Len(),
		"states", idx.Automaton().NumStates())

	return idx
}

// isTerminal reports whether r is an interactive terminal. Readers that are
// not files (tests, pipes wrapped by cobra) never are.
func isTerminal(r io.Reader) bool {
	file, ok := r.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(file.Fd()))
}
