package main

import (
	"log"
	"os"

	"github.com/masmgr/truechurn-go/cmd"
	"github.com/urfave/cli/v2"
)

func main() {
	// Build the app with subcommands
	app := cmd.App()

	// Legacy flag kept for backward compatibility with the v1 interface
	app.Flags = append(app.Flags,
		&cli.StringFlag{
			Name:  "exdir",
			Usage: "exclude Git repository subdirectory (legacy mode)",
		},
	)

	// Override the default action for legacy support
	app.Action = func(c *cli.Context) error {
		// If a subcommand was invoked, this won't be called
		// If no args, show help
		if c.NArg() == 0 {
			return cli.ShowAppHelp(c)
		}

		// Legacy mode: positional arguments in the original
		// `after=... before=... author=... dir=...` form
		args, err := parseLegacyArgs(c.Args().Slice())
		if err != nil {
			return err
		}
		args.ExcludeDir = c.String("exdir")

		return Churn(c.Context, args)
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}
