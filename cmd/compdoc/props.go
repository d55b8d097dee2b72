package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/gnana997/compdoc/pkg/docs"
	"github.com/gnana997/compdoc/pkg/extractor"
)

func newPropsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "props <component>",
		Short: "Print the declared props of a component as a table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.service().Component(args[0])
			if err != nil {
				return err
			}
			printComponentProps(cmd.OutOrStdout(), c)
			return nil
		},
	}
}

// printComponentProps prints a component header followed by its props table.
func printComponentProps(w io.Writer, c *docs.Component) {
	fmt.Fprintf(w, "%s  (%s)\n", c.Name, c.Path)
	if c.Description.Present {
		fmt.Fprintf(w, "\n%s\n", c.Description.Text)
	}
	fmt.Fprintln(w)

	if len(c.Props) == 0 {
		fmt.Fprintln(w, "Props  (none)")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"NAME", "TYPE", "REQ", "DESCRIPTION"})
	for _, p := range c.Props {
		t.AppendRow(table.Row{p.Name, p.Type, yesNo(p.Required), propDescription(p)})
	}
	t.Render()
}

func propDescription(p extractor.PropDescriptor) string {
	if p.Description == "" {
		return "-"
	}
	return strings.ReplaceAll(p.Description, "\n", " ")
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
