package cmd

import (
	"fmt"

	"github.com/hostm-sh/hostm/config"
	"github.com/hostm-sh/hostm/hosts"
	"github.com/hostm-sh/hostm/ui"
	"github.com/hostm-sh/hostm/xlog"

	"github.com/spf13/cobra"
)

func init() {
	removeCmd := &cobra.Command{
		Use:     "remove <domain>",
		Aliases: []string{"delete", "rm"},
		Short:   "Remove a hostname mapping",
		Long: "Removes every mapping line for <domain> from the hosts file.\n" +
			"Removing a domain that is not mapped is a no-op.",
		Args:    cobra.ExactArgs(1),
		GroupID: refGroup("hosts", "Hosts File Commands"),
		Run: func(cmd *cobra.Command, args []string) {
			domain := args[0]
			path := hostsPath()
			xlog.Debug().Str("file", path).Str("domain", domain).Msg("removing mapping")
			res, err := hosts.Apply(path, hosts.Mutation{Domain: domain})
			if err != nil {
				fail(err)
			}
			if res.Matched == 0 {
				fmt.Println(ui.RenderOkLine(fmt.Sprintf("%s is not mapped, nothing to remove", domain)))
			} else {
				fmt.Println(ui.RenderOkLine(fmt.Sprintf("removed %d mapping(s) for %s", res.Matched, domain)))
			}
		},
	}
	config.RootCommand.AddCommand(removeCmd)
}
