package main

import (
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"strings"

	"github.com/bodgit/genlogo"
	"github.com/bodgit/genlogo/bsram"
	"github.com/bodgit/genlogo/render"
	"github.com/urfave/cli/v2"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newLogger(c *cli.Context) *log.Logger {
	logger := log.New(ioutil.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}
	return logger
}

func variantNames() string {
	names := make([]string, 0, len(genlogo.Variants))
	for _, v := range genlogo.Variants {
		names = append(names, v.Name)
	}
	return strings.Join(names, ", ")
}

func options(c *cli.Context) (genlogo.Options, error) {
	o := genlogo.DefaultOptions()

	v, err := genlogo.LookupVariant(c.String("variant"))
	if err != nil {
		return o, err
	}
	v.Apply(&o)

	if c.IsSet("text") {
		o.Text = c.String("text")
	}
	if c.IsSet("threshold") {
		t := c.Int("threshold")
		if t < 0 || t > 255 {
			return o, fmt.Errorf("threshold %d is out of range", t)
		}
		o.Threshold = uint8(t)
	}

	if o.Color, err = genlogo.ParseColor(c.String("color")); err != nil {
		return o, err
	}
	if o.Engine, err = render.ParseEngine(c.String("engine")); err != nil {
		return o, err
	}

	o.Font = c.String("font")
	o.Scale = c.Int("scale")
	o.Prefix = c.String("prefix")
	o.Preview = c.String("output")
	o.Zoom = c.Int("zoom")
	o.Colors = c.Int("colors")

	return o, nil
}

func generate(c *cli.Context) error {
	o, err := options(c)
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	g, err := genlogo.New(o, newLogger(c))
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	if _, err := g.Generate(os.Stdout); err != nil {
		return cli.NewExitError(err, 1)
	}

	return nil
}

func main() {
	app := cli.NewApp()

	app.Name = "genlogo"
	app.Usage = "Tang FPGA core logo block RAM generator"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	generateFlags := []cli.Flag{
		&cli.StringFlag{
			Name:    "font",
			EnvVars: []string{"GENLOGO_FONT"},
			Value:   genlogo.DefaultFont,
			Usage:   "path to TrueType or OpenType font",
		},
		&cli.StringFlag{
			Name:  "variant",
			Value: genlogo.TangCore.Name,
			Usage: "logo preset, one of " + variantNames(),
		},
		&cli.StringFlag{
			Name:  "text",
			Usage: "logo text, overrides the preset",
		},
		&cli.IntFlag{
			Name:  "threshold",
			Usage: "luminance cutoff 0-255, overrides the preset",
		},
		&cli.StringFlag{
			Name:  "color",
			Value: "30,150,220",
			Usage: "logo color as R,G,B or #RRGGBB",
		},
		&cli.IntFlag{
			Name:  "scale",
			Value: render.DefaultScale,
			Usage: "oversampling factor per bitmap pixel",
		},
		&cli.StringFlag{
			Name:  "engine",
			Value: render.OpenType.String(),
			Usage: "font rasterizer, opentype or freetype",
		},
		&cli.StringFlag{
			Name:  "prefix",
			Value: bsram.DefaultPrefix,
			Usage: "block RAM parameter name prefix",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Value:   genlogo.DefaultPreview,
			Usage:   "preview image filename, empty to skip",
		},
		&cli.IntFlag{
			Name:  "zoom",
			Value: 1,
			Usage: "preview enlargement factor",
		},
		&cli.IntFlag{
			Name:  "colors",
			Usage: "reduce the preview to this many colors",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "generate",
			Usage:       "Render the logo and print the block RAM initialization",
			Description: "",
			Flags:       generateFlags,
			Action:      generate,
		},
		{
			Name:        "decode",
			Usage:       "Print the bitmap held in previously generated initialization",
			Description: "",
			ArgsUsage:   "FILE",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				f, err := os.Open(c.Args().First())
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer f.Close()

				m, err := bsram.Decode(f)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				fmt.Println(m)

				return nil
			},
		},
	}

	// Running without a command behaves like the original script
	app.Flags = append(app.Flags, generateFlags...)
	app.Action = generate

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
