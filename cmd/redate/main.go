package main

import (
	"github.com/alecthomas/kong"

	"github.com/kxue43/redate/redate"
	"github.com/kxue43/redate/version"
)

func main() {
	var cli redate.Cmd

	ctx := kong.Parse(
		&cli,
		kong.Name("redate"),
		kong.Description("Replace the YYYY-MM-DD prefix of every entry in a directory with a fixed date."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{"version": version.FromBuildInfo()},
	)

	logger, err := redate.NewLogger(cli.Verbose)
	ctx.FatalIfErrorf(err)

	err = ctx.Run(logger)

	_ = logger.Sync()

	ctx.FatalIfErrorf(err)
}
