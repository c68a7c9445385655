package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/nuclio/errors"
	"sigs.k8s.io/yaml"
)

const (
	OutputFormatText = "text"
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"
)

// renderer writes command reports as aligned tables, JSON or YAML.
type renderer struct {
	output io.Writer
}

func newRenderer(output io.Writer) *renderer {
	return &renderer{
		output: output,
	}
}

// renderStructured renders item as JSON or YAML according to format.
func (r *renderer) renderStructured(format string, item interface{}) error {
	switch format {
	case OutputFormatJSON:
		return r.renderJSON(item)
	case OutputFormatYAML:
		return r.renderYAML(item)
	default:
		return errors.Errorf("Unsupported structured output format: %s", format)
	}
}

func (r *renderer) renderTable(header []interface{}, records [][]interface{}) {
	tw := table.NewWriter()
	tw.SetOutputMirror(r.output)
	tw.SetStyle(table.Style{
		Name: "Suffixkit",
		Box: table.BoxStyle{
			MiddleVertical: "|",
			PaddingLeft:    " ",
			PaddingRight:   " ",
		},
		Options: table.Options{
			DoNotColorBordersAndSeparators: true,
			DrawBorder:                     false,
			SeparateColumns:                true,
			SeparateFooter:                 false,
			SeparateHeader:                 false,
			SeparateRows:                   false,
		},
		Color:  table.ColorOptionsDefault,
		Format: table.FormatOptionsDefault,
		HTML:   table.DefaultHTMLOptions,
		Title:  table.TitleOptionsDefault,
	})
	tw.AppendHeader(table.Row(header), table.RowConfig{})

	rows := make([]table.Row, len(records))
	for rowIndex, record := range records {
		rows[rowIndex] = table.Row(record)
	}
	tw.AppendRows(rows, table.RowConfig{})
	tw.Render()
}

func (r *renderer) renderLine(format string, args ...interface{}) {
	fmt.Fprintf(r.output, format+"\n", args...) // nolint: errcheck
}

func (r *renderer) renderYAML(item interface{}) error {
	body, err := yaml.Marshal(item)
	if err != nil {
		return errors.Wrap(err, "Failed to render YAML")
	}

	fmt.Fprint(r.output, string(body)) // nolint: errcheck

	return nil
}

func (r *renderer) renderJSON(item interface{}) error {
	body, err := json.Marshal(item)
	if err != nil {
		return errors.Wrap(err, "Failed to render JSON")
	}

	var pbody bytes.Buffer
	if err := json.Indent(&pbody, body, "", "\t"); err != nil {
		return errors.Wrap(err, "Failed to indent JSON")
	}

	fmt.Fprintln(r.output, pbody.String()) // nolint: errcheck

	return nil
}
