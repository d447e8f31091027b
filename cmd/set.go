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
	setCmd := &cobra.Command{
		Use:     "set <domain> <ip>",
		Aliases: []string{"create", "update"},
		Short:   "Create or update a hostname mapping",
		Long: "Maps <domain> to <ip> in the hosts file. An existing mapping is\n" +
			"replaced in place, otherwise a new line is appended.",
		Args:    cobra.ExactArgs(2),
		GroupID: refGroup("hosts", "Hosts File Commands"),
		Run: func(cmd *cobra.Command, args []string) {
			domain, ip := args[0], args[1]
			path := hostsPath()
			xlog.Debug().Str("file", path).Str("domain", domain).Str("ip", ip).Msg("upserting mapping")
			res, err := hosts.Apply(path, hosts.Mutation{Domain: domain, IP: ip})
			if err != nil {
				fail(err)
			}
			switch {
			case !res.Changed:
				fmt.Println(ui.RenderOkLine(fmt.Sprintf("%s already maps to %s", domain, ip)))
			case res.Matched > 0:
				fmt.Println(ui.RenderOkLine(fmt.Sprintf("updated %s -> %s", domain, ip)))
			default:
				fmt.Println(ui.RenderOkLine(fmt.Sprintf("created %s -> %s", domain, ip)))
			}
			if res.Matched > 1 {
				fmt.Println(ui.FaintStyle.Render(fmt.Sprintf(
					"note: %d duplicate entries for %s were left untouched", res.Matched-1, domain)))
			}
		},
	}
	config.RootCommand.AddCommand(setCmd)
}
