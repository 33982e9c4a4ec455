package main

import (
	"errors"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/sitenav/cmd/sitenav/commands"
	ferrors "git.home.luguber.info/inful/sitenav/internal/foundation/errors"
	"git.home.luguber.info/inful/sitenav/internal/version"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	var cli commands.CLI
	parser, err := kong.New(&cli,
		kong.Name("sitenav"),
		kong.Description("Resolve and validate the navigation of a documentation site."),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
	)
	if err != nil {
		return ferrors.NewCLIErrorAdapter(false, nil).HandleError(err)
	}
	kctx, err := parser.Parse(args)
	if err != nil {
		parser.Errorf("%s", err)
		return 2
	}

	global := commands.NewGlobal(&cli, os.Stdout)
	runErr := kctx.Run(global, &cli)
	if err := global.Flush(&cli); err != nil && runErr == nil {
		runErr = err
	}

	var code commands.ExitCode
	if errors.As(runErr, &code) {
		return int(code)
	}
	return ferrors.NewCLIErrorAdapter(cli.Verbose, nil).HandleError(runErr)
}
