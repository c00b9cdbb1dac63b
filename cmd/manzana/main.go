// Command manzana runs the Apple 1 emulator against the current
// terminal.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"manzana/apple1"
	"manzana/seed"
	"manzana/tecla"
	"manzana/terminal"
)

func main() {
	app := &cli.App{
		Name:      "manzana",
		Usage:     "run an Apple 1 emulator in this terminal",
		ArgsUsage: "[path[:HEX_ADDR],...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "trace, debug, info, warn, or error",
				Value: "info",
			},
			&cli.StringFlag{
				Name:  "log-file",
				Usage: "append-only trace log path",
				Value: "manzana.trace.log",
			},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	level, err := zerolog.ParseLevel(c.String("log-level"))
	if err != nil {
		return cli.Exit(fmt.Sprintf("invalid --log-level: %v", err), 2)
	}

	log, closeLog, err := newLogger(level, c.String("log-file"))
	if err != nil {
		return cli.Exit(fmt.Sprintf("cannot open log file: %v", err), 2)
	}
	defer closeLog()

	regions, err := seed.Parse(c.Args().First())
	if err != nil {
		return cli.Exit(fmt.Sprintf("invalid seed argument: %v", err), 2)
	}
	var seedRegions []apple1.SeedRegion
	for _, r := range regions {
		seedRegions = append(seedRegions, apple1.SeedRegion{Addr: r.Addr, Data: r.Data})
	}

	if err := terminal.Init(); err != nil {
		return cli.Exit(fmt.Sprintf("cannot initialize terminal: %v", err), 3)
	}
	defer terminal.Close()

	keyboardCh := make(chan tecla.Key, 1024)
	displayCh := make(chan tecla.Key, 1024)
	powerOffCh := make(chan struct{}, 1)

	kb := terminal.NewKeyboard(keyboardCh)
	display := terminal.NewDisplay(displayCh)

	go kb.Run()
	go display.Run()

	m := apple1.New(apple1.Config{
		KeyboardIn:  keyboardCh,
		DisplayOut:  displayCh,
		PowerOffOut: powerOffCh,
		PowerOffIn:  powerOffCh,
		Seed:        seedRegions,
		Log:         log,
	})

	runErr := m.Run()
	kb.Stop()
	if runErr != nil {
		return cli.Exit(fmt.Sprintf("emulator exited: %v", runErr), 4)
	}
	return nil
}
