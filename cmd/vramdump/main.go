package main

import (
	"errors"
	"io/ioutil"
	"log"
	"os"
	"strings"

	"github.com/bodgit/vramdump"
	"github.com/bodgit/vramdump/raster"
	"github.com/urfave/cli/v2"
)

var errNegativeChunks = errors.New("chunks must not be negative")

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func options(c *cli.Context) (vramdump.Options, error) {
	opts := vramdump.DefaultOptions()
	opts.Offset = c.Int64("offset")

	if c.IsSet("chunks") {
		if c.Int("chunks") < 0 {
			return opts, errNegativeChunks
		}
		opts.MaxChunks = c.Int("chunks")
	}

	if c.Bool("msb-top") {
		opts.BitOrder = vramdump.MSBTop
	}

	return opts, nil
}

func newApp() *cli.App {
	app := cli.NewApp()

	app.Name = "vramdump"
	app.Usage = "Render a terminal font video RAM dump as an image"
	app.Version = "1.0.0"
	app.ArgsUsage = "INPUT OUTPUT"

	app.Flags = []cli.Flag{
		&cli.Int64Flag{
			Name:  "offset",
			Value: vramdump.DefaultOffset,
			Usage: "start offset into the dump, e.g. 0x8000",
		},
		&cli.IntFlag{
			Name:  "chunks",
			Usage: "limit the number of 256 byte chunks to decode",
		},
		&cli.BoolFlag{
			Name:  "msb-top",
			Usage: "use the MSB as the top of each 8 pixel column (default: LSB)",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Action = func(c *cli.Context) error {
		if c.NArg() < 2 {
			cli.ShowAppHelpAndExit(c, 1)
		}

		logger := log.New(ioutil.Discard, "", 0)
		if c.Bool("verbose") {
			logger.SetOutput(os.Stderr)
		}

		opts, err := options(c)
		if err != nil {
			return cli.NewExitError(err, 1)
		}

		var encoder vramdump.Encoder
		if raster.Available() {
			encoder = raster.Encoder{}
			logger.Printf("Raster formats: %s\n", strings.Join(raster.Formats(), ", "))
		}

		conv := vramdump.New(encoder, logger, c.App.Writer)

		out, err := conv.Convert(c.Args().Get(0), c.Args().Get(1), opts)
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		logger.Printf("Wrote %s\n", out)

		return nil
	}

	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
