package cmd

import (
	"fmt"

	"github.com/hostm-sh/hostm/config"
	"github.com/hostm-sh/hostm/ui"

	"github.com/spf13/cobra"
)

func init() {
	useCmd := &cobra.Command{
		Use:     "use [path]",
		Short:   "Persist the default hosts file path",
		Long:    "Stores [path] as the default hosts file for future invocations.\nWithout an argument, reverts to the system hosts file.",
		Args:    cobra.MaximumNArgs(1),
		GroupID: refGroup("settings", "Settings Commands"),
		Run: func(cmd *cobra.Command, args []string) {
			path := ""
			if len(args) > 0 {
				path = args[0]
			}
			err := config.Update(func(c *config.Config) error {
				c.HostsFile = path
				return nil
			})
			if err != nil {
				ui.ExitWithError(err)
			}
			if path == "" {
				fmt.Println(ui.RenderOkLine("using the system hosts file"))
			} else {
				fmt.Println(ui.RenderOkLine("using " + path))
			}
		},
	}

	logCmd := &cobra.Command{
		Use:     "log [name]",
		Short:   "Persist a rotating log file for hostm",
		Long:    "Mirrors hostm output into a rotating log file. Relative names land\nunder the hostm home directory. Without an argument, disables it.",
		Args:    cobra.MaximumNArgs(1),
		GroupID: refGroup("settings", "Settings Commands"),
		Run: func(cmd *cobra.Command, args []string) {
			name := ""
			if len(args) > 0 {
				name = args[0]
			}
			err := config.Update(func(c *config.Config) error {
				c.LogFile = name
				return nil
			})
			if err != nil {
				ui.ExitWithError(err)
			}
			if name == "" {
				fmt.Println(ui.RenderOkLine("file logging disabled"))
			} else {
				fmt.Println(ui.RenderOkLine("logging to " + name))
			}
		},
	}

	config.RootCommand.AddCommand(useCmd, logCmd)
}
