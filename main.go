package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

const toolName = "struct2java"

func newApp(stdout io.Writer) *cli.App {
	return &cli.App{
		Name:   toolName,
		Usage:  "Output the field offsets of a C struct as Java constants",
		Writer: stdout,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "enable debug logging",
			},
		},
		Before: func(c *cli.Context) error {
			logrus.SetOutput(os.Stderr)
			if c.Bool("verbose") {
				logrus.SetLevel(logrus.DebugLevel)
			} else {
				logrus.SetLevel(logrus.WarnLevel)
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:      "gen",
				Usage:     "write the struct's offset constants to stdout",
				ArgsUsage: "<elf-file> <struct-or-typedef-name>",
				Action: func(c *cli.Context) error {
					if c.NArg() != 2 {
						return fmt.Errorf("expected an ELF file and a struct name, got %d arguments", c.NArg())
					}
					return StructToJava(stdout, c.Args().Get(0), c.Args().Get(1))
				},
			},
			{
				Name:  "fetch-deps",
				Usage: "fetch the project dependencies listed by the build",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "deps-json",
						Usage: "path of the generated dependency list",
						Value: defaultDepsJSON,
					},
					&cli.StringFlag{
						Name:  "buck",
						Usage: "build command used to list and fetch dependencies",
						Value: "buck",
					},
				},
				Action: func(c *cli.Context) error {
					return newDepFetcher(c.String("buck"), c.String("deps-json")).fetchAll()
				},
			},
		},
	}
}

// run executes the CLI and maps any failure to the tool's single
// error contract: one `struct2java: <description>` line on stderr and
// a non-zero exit code, with nothing on stdout.
func run(args []string, stdout, stderr io.Writer) int {
	if err := newApp(stdout).Run(args); err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", toolName, err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}
