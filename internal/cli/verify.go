package cli

import (
	"github.com/katalvlaran/suffixkit/suffixarray"

	"github.com/nuclio/errors"
	"github.com/spf13/cobra"
)

const defaultVerifyText = "mississippi"

type checkResult struct {
	Name  string `json:"name"`
	Error string `json:"error,omitempty"`
}

type verifyReport struct {
	Text   string        `json:"text"`
	Checks []checkResult `json:"checks"`
	Passed bool          `json:"passed"`
}

type verifyCommandeer struct {
	cmd            *cobra.Command
	rootCommandeer *RootCommandeer
}

func newVerifyCommandeer(rootCommandeer *RootCommandeer) *verifyCommandeer {
	commandeer := &verifyCommandeer{
		rootCommandeer: rootCommandeer,
	}

	cmd := &cobra.Command{
		Use:   "verify [text]",
		Short: "Validate the suffix array and LCP array and cross-check the distinct-substring counts",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {

			// initialize root
			if err := rootCommandeer.initialize(); err != nil {
				return errors.Wrap(err, "Failed to initialize root")
			}

			text, err := rootCommandeer.resolveText(cmd, args, defaultVerifyText)
			if err != nil {
				return errors.Wrap(err, "Failed to get text")
			}

			report := commandeer.report(text)
			if err := commandeer.render(newRenderer(cmd.OutOrStdout()), report); err != nil {
				return errors.Wrap(err, "Failed to render report")
			}

			if !report.Passed {
				return errors.New("Verification failed")
			}

			return nil
		},
	}

	commandeer.cmd = cmd

	return commandeer
}

func (vc *verifyCommandeer) report(text string) *verifyReport {
	idx := vc.rootCommandeer.buildIndex(text)
	runes := []rune(text)

	checks := []struct {
		name  string
		check func() error
	}{
		{name: "suffix array", check: func() error { return suffixarray.Validate(runes, idx.SuffixArray()) }},
		{name: "lcp array", check: func() error { return suffixarray.ValidateLCP(runes, idx.SuffixArray(), idx.LCP()) }},
		{name: "distinct count", check: idx.CrossCheck},
	}

	report := &verifyReport{
		Text:   text,
		Passed: true,
	}

	for _, c := range checks {
		result := checkResult{Name: c.name}
		if err := c.check(); err != nil {
			result.Error = err.Error()
			report.Passed = false

			vc.rootCommandeer.loggerInstance.WarnWith("Check failed", "check", c.name, "err", err.Error())
		}

		report.Checks = append(report.Checks, result)
	}

	return report
}

func (vc *verifyCommandeer) render(r *renderer, report *verifyReport) error {
	if vc.rootCommandeer.output != OutputFormatText {
		return r.renderStructured(vc.rootCommandeer.output, report)
	}

	records := make([][]interface{}, 0, len(report.Checks))
	for _, result := range report.Checks {
		status := "ok"
		if result.Error != "" {
			status = result.Error
		}

		records = append(records, []interface{}{result.Name, status})
	}

	r.renderLine("String: %s", report.Text)
	r.renderTable([]interface{}{"Check", "Status"}, records)

	return nil
}
