package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"
)

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "[stkscript] %v\n", err)
	os.Exit(1)
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "stkscript"
	app.Usage = "Render and assemble BTC staking scripts."
	app.Commands = append(app.Commands, initCommand)
	app.Commands = append(app.Commands, adminCommands...)
	app.Commands = append(app.Commands, scriptCommands...)
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fatal(err)
	}
}
