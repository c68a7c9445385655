package cli

import (
	"github.com/nuclio/errors"
	"github.com/spf13/cobra"
)

const defaultSuffixesText = "banana"

// suffixRow is one rendered line of the sorted suffix listing.
type suffixRow struct {
	Index  int    `json:"index"`
	SA     int    `json:"sa"`
	Suffix string `json:"suffix"`
	LCP    int    `json:"lcp"`
}

type suffixesReport struct {
	Text     string      `json:"text"`
	Strategy string      `json:"strategy"`
	Suffixes []suffixRow `json:"suffixes"`
	Distinct int64       `json:"distinctSubstrings"`
}

type suffixesCommandeer struct {
	cmd            *cobra.Command
	rootCommandeer *RootCommandeer
}

func newSuffixesCommandeer(rootCommandeer *RootCommandeer) *suffixesCommandeer {
	commandeer := &suffixesCommandeer{
		rootCommandeer: rootCommandeer,
	}

	cmd := &cobra.Command{
		Use:   "suffixes [text]",
		Short: "List the sorted suffixes with their LCP values and count distinct substrings",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {

			// initialize root
			if err := rootCommandeer.initialize(); err != nil {
				return errors.Wrap(err, "Failed to initialize root")
			}

			text, err := rootCommandeer.resolveText(cmd, args, defaultSuffixesText)
			if err != nil {
				return errors.Wrap(err, "Failed to get text")
			}

			return commandeer.render(newRenderer(cmd.OutOrStdout()), commandeer.report(text))
		},
	}

	commandeer.cmd = cmd

	return commandeer
}

func (sc *suffixesCommandeer) report(text string) *suffixesReport {
	idx := sc.rootCommandeer.buildIndex(text)

	report := &suffixesReport{
		Text:     text,
		Strategy: sc.rootCommandeer.strategy.String(),
		Suffixes: make([]suffixRow, 0, idx.Len()),
		Distinct: idx.DistinctCount(),
	}

	for _, row := range idx.Rows() {
		report.Suffixes = append(report.Suffixes, suffixRow{
			Index:  row.Rank,
			SA:     row.Start,
			Suffix: string(idx.Suffix(row)),
			LCP:    row.LCP,
		})
	}

	return report
}

func (sc *suffixesCommandeer) render(r *renderer, report *suffixesReport) error {
	if sc.rootCommandeer.output != OutputFormatText {
		return r.renderStructured(sc.rootCommandeer.output, report)
	}

	records := make([][]interface{}, 0, len(report.Suffixes))
	for _, row := range report.Suffixes {
		records = append(records, []interface{}{row.Index, row.SA, row.Suffix, row.LCP})
	}

	r.renderLine("String: %s", report.Text)
	r.renderTable([]interface{}{"Index", "SA", "Suffix", "LCP"}, records)
	r.renderLine("Distinct substrings: %d", report.Distinct)

	return nil
}
