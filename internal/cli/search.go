package cli

import (
	"github.com/nuclio/errors"
	"github.com/spf13/cobra"
)

const defaultSearchText = "abracadabra"

type searchReport struct {
	Text        string `json:"text"`
	Pattern     string `json:"pattern"`
	Positions   []int  `json:"positions"`
	Occurrences int    `json:"occurrences"`
	Contains    bool   `json:"contains"`
	IsSuffix    bool   `json:"isSuffix"`
	Repeated    string `json:"longestRepeated"`
}

type searchCommandeer struct {
	cmd            *cobra.Command
	rootCommandeer *RootCommandeer
	pattern        string
}

func newSearchCommandeer(rootCommandeer *RootCommandeer) *searchCommandeer {
	commandeer := &searchCommandeer{
		rootCommandeer: rootCommandeer,
	}

	cmd := &cobra.Command{
		Use:   "search [text] --pattern PATTERN",
		Short: "Find every occurrence of a pattern",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if commandeer.pattern == "" {
				return errors.New("Search requires a non-empty --pattern")
			}

			// initialize root
			if err := rootCommandeer.initialize(); err != nil {
				return errors.Wrap(err, "Failed to initialize root")
			}

			text, err := rootCommandeer.resolveText(cmd, args, defaultSearchText)
			if err != nil {
				return errors.Wrap(err, "Failed to get text")
			}

			report := commandeer.report(text)
			if report.Occurrences != len(report.Positions) {
				return errors.Errorf("Occurrence counts disagree: lookup %d, automaton %d",
					len(report.Positions),
					report.Occurrences)
			}

			return commandeer.render(newRenderer(cmd.OutOrStdout()), report)
		},
	}

	cmd.Flags().StringVarP(&commandeer.pattern, "pattern", "p", "", "Pattern to search for")

	commandeer.cmd = cmd

	return commandeer
}

func (sc *searchCommandeer) report(text string) *searchReport {
	idx := sc.rootCommandeer.buildIndex(text)
	pattern := []rune(sc.pattern)

	positions := idx.Lookup(pattern)
	if positions == nil {
		positions = []int{}
	}

	return &searchReport{
		Text:        text,
		Pattern:     sc.pattern,
		Positions:   positions,
		Occurrences: idx.Occurrences(pattern),
		Contains:    idx.Contains(pattern),
		IsSuffix:    idx.Automaton().IsSuffix(pattern),
		Repeated:    string(idx.LongestRepeated()),
	}
}

func (sc *searchCommandeer) render(r *renderer, report *searchReport) error {
	if sc.rootCommandeer.output != OutputFormatText {
		return r.renderStructured(sc.rootCommandeer.output, report)
	}

	records := make([][]interface{}, 0, len(report.Positions))
	for _, position := range report.Positions {
		context := []rune(report.Text)[position:]
		records = append(records, []interface{}{position, string(context)})
	}

	r.renderLine("String: %s", report.Text)
	r.renderLine("Pattern: %s", report.Pattern)
	r.renderTable([]interface{}{"Position", "Suffix"}, records)
	r.renderLine("Occurrences: %d", report.Occurrences)
	r.renderLine("Is suffix: %t", report.IsSuffix)
	r.renderLine("Longest repeated substring: %s", report.Repeated)

	return nil
}
