package cli

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/suffixkit/automaton"

	"github.com/nuclio/errors"
	"github.com/spf13/cobra"
)

const (
	defaultAutomatonText  = "ababa"
	defaultAutomatonProbe = "baba"
)

type stateRow struct {
	ID     int    `json:"id"`
	Len    int    `json:"len"`
	Link   int    `json:"link"`
	Cloned bool   `json:"cloned"`
	Edges  string `json:"edges"`
}

type automatonReport struct {
	Text       string     `json:"text"`
	States     int        `json:"states"`
	Distinct   int64      `json:"distinctSubstrings"`
	Probe      string     `json:"probe"`
	LCS        int        `json:"lcs"`
	Common     string     `json:"common"`
	ProbeStart int        `json:"probeStart"`
	Arena      []stateRow `json:"arena,omitempty"`
}

type automatonCommandeer struct {
	cmd            *cobra.Command
	rootCommandeer *RootCommandeer
	probe          string
	showStates     bool
}

func newAutomatonCommandeer(rootCommandeer *RootCommandeer) *automatonCommandeer {
	commandeer := &automatonCommandeer{
		rootCommandeer: rootCommandeer,
	}

	cmd := &cobra.Command{
		Use:   "automaton [text]",
		Short: "Build the suffix automaton, count distinct substrings and match a probe",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {

			// initialize root
			if err := rootCommandeer.initialize(); err != nil {
				return errors.Wrap(err, "Failed to initialize root")
			}

			text, err := rootCommandeer.resolveText(cmd, args, defaultAutomatonText)
			if err != nil {
				return errors.Wrap(err, "Failed to get text")
			}

			return commandeer.render(newRenderer(cmd.OutOrStdout()), commandeer.report(text))
		},
	}

	cmd.Flags().StringVarP(&commandeer.probe, "probe", "p", defaultAutomatonProbe, "String to find the longest common substring with")
	cmd.Flags().BoolVarP(&commandeer.showStates, "states", "s", false, "List every automaton state in topological order")

	commandeer.cmd = cmd

	return commandeer
}

func (ac *automatonCommandeer) report(text string) *automatonReport {
	idx := ac.rootCommandeer.buildIndex(text)
	sam := idx.Automaton()
	probe := []rune(ac.probe)
	match := idx.CommonSubstring(probe)

	report := &automatonReport{
		Text:       text,
		States:     sam.NumStates(),
		Distinct:   idx.DistinctCountAutomaton(),
		Probe:      ac.probe,
		LCS:        match.Length,
		Common:     string(probe[match.ProbeStart : match.ProbeStart+match.Length]),
		ProbeStart: match.ProbeStart,
	}

	if ac.showStates {
		snapshot := sam.Snapshot()
		for _, id := range sam.TopologicalOrder() {
			state := snapshot[id]
			report.Arena = append(report.Arena, stateRow{
				ID:     state.ID,
				Len:    state.Len,
				Link:   state.Link,
				Cloned: state.Cloned,
				Edges:  formatEdges(state.Edges),
			})
		}
	}

	return report
}

func (ac *automatonCommandeer) render(r *renderer, report *automatonReport) error {
	if ac.rootCommandeer.output != OutputFormatText {
		return r.renderStructured(ac.rootCommandeer.output, report)
	}

	r.renderLine("Original string: %s", report.Text)
	r.renderLine("Number of states: %d", report.States)
	r.renderLine("Distinct substrings count: %d", report.Distinct)
	r.renderLine("LCS with '%s': %d", report.Probe, report.LCS)

	if len(report.Arena) > 0 {
		records := make([][]interface{}, 0, len(report.Arena))
		for _, state := range report.Arena {
			records = append(records, []interface{}{state.ID, state.Len, state.Link, state.Cloned, state.Edges})
		}

		r.renderTable([]interface{}{"State", "Len", "Link", "Cloned", "Edges"}, records)
	}

	return nil
}

// formatEdges renders transitions as "a:1 b:3".
func formatEdges(edges []automaton.Edge[rune]) string {
	parts := make([]string, len(edges))
	for i, edge := range edges {
		parts[i] = fmt.Sprintf("%c:%d", edge.Symbol, edge.Target)
	}

	return strings.Join(parts, " ")
}
