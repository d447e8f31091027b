package cmd

import (
	"fmt"
	"strings"

	"github.com/hostm-sh/hostm/config"
	"github.com/hostm-sh/hostm/hosts"
	"github.com/hostm-sh/hostm/ui"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	searchCmd := &cobra.Command{
		Use:     "search <term>",
		Short:   "Find lines containing a term",
		Long:    "Prints every line of the hosts file containing <term>, with its line number.",
		Args:    cobra.ExactArgs(1),
		GroupID: refGroup("query", "Query Commands"),
		Run: func(cmd *cobra.Command, args []string) {
			term := args[0]
			f, err := hosts.Load(hostsPath())
			if err != nil {
				fail(err)
			}
			found := false
			for i, l := range f.Lines {
				if text := l.Text(); strings.Contains(text, term) {
					found = true
					fmt.Printf("%s %s\n", ui.AccentStyle.Render(fmt.Sprintf("%4d:", i+1)), text)
				}
			}
			if !found {
				fmt.Println(ui.FaintStyle.Render(fmt.Sprintf("no lines contain %q", term)))
			}
		},
	}

	resolveCmd := &cobra.Command{
		Use:     "resolve <domain>",
		Short:   "Look up the address mapped to a domain",
		Args:    cobra.ExactArgs(1),
		GroupID: refGroup("query", "Query Commands"),
		Run: func(cmd *cobra.Command, args []string) {
			domain := args[0]
			adr, ok, err := hosts.Resolve(hostsPath(), domain)
			if err != nil {
				fail(err)
			}
			if !ok {
				ui.ExitWithError(fmt.Sprintf("%s is not mapped", domain))
			}
			fmt.Println(adr)
		},
	}

	listCmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all hostname mappings",
		Args:    cobra.NoArgs,
		GroupID: refGroup("query", "Query Commands"),
		Run: func(cmd *cobra.Command, args []string) {
			f, err := hosts.Load(hostsPath())
			if err != nil {
				fail(err)
			}
			mappings := lo.Filter(f.Lines, func(l hosts.Line, _ int) bool { return l.IsMapping() })
			if len(mappings) == 0 {
				fmt.Println(ui.FaintStyle.Render("no mappings"))
				return
			}
			width := 0
			for _, l := range mappings {
				width = max(width, len(l.Address))
			}
			for _, l := range mappings {
				row := ui.FixedBlock("", l.Address, width) + "  " + l.Hostname
				if l.Comment != "" {
					row += "  " + ui.FaintStyle.Render("# "+l.Comment)
				}
				fmt.Println(row)
			}
		},
	}

	config.RootCommand.AddCommand(searchCmd, resolveCmd, listCmd)
}
