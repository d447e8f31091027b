package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/hostm-sh/hostm/config"
	"github.com/hostm-sh/hostm/hosts"
	"github.com/hostm-sh/hostm/revision"
	"github.com/hostm-sh/hostm/ui"
	"github.com/hostm-sh/hostm/xlog"

	"github.com/spf13/cobra"
)

func refGroup(id, name string) string {
	if !config.RootCommand.ContainsGroup(id) {
		config.RootCommand.AddGroup(&cobra.Group{
			ID:    id,
			Title: name + ":",
		})
	}
	return id
}

// hostsPath resolves the file to operate on: the --file flag, then the
// persisted config, then the platform default.
func hostsPath() string {
	if *config.HostsFile != "" {
		return *config.HostsFile
	}
	if p := config.Get().HostsFile; p != "" {
		return p
	}
	return hosts.DefaultPath()
}

// Exit codes per engine error kind, so scripts can tell the failures
// apart.
const (
	exitGeneric    = 1
	exitPermission = 2
	exitNotFound   = 3
	exitWrite      = 4
)

func fail(err error) {
	xlog.Debug().Stack().Err(xlog.WrapStackError(err)).Msg("operation failed")
	code := exitGeneric
	msg := err.Error()
	switch {
	case errors.Is(err, hosts.ErrPermissionDenied):
		code = exitPermission
		msg += "\n      try again with elevated privileges (sudo)"
	case errors.Is(err, hosts.ErrNotFound):
		code = exitNotFound
	case errors.Is(err, hosts.ErrWriteFailed):
		code = exitWrite
	}
	fmt.Println(ui.RenderErrorLine(msg))
	os.Exit(code)
}

func Execute() {
	config.RootCommand.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if *config.Verbose {
			xlog.SetLoggerLevel(xlog.LevelDebug)
		}
		if lf := config.Get().LogFile; lf != "" {
			xlog.SetDefaultOutput(xlog.StderrWriter(), xlog.FileWriter(lf))
		}
	}
	config.RootCommand.Short += ui.FaintStyle.Render(" (" + revision.GetVersion() + ")")
	if err := config.RootCommand.Execute(); err != nil {
		ui.ExitWithError(err)
	}
}
