// Package cmd implements the command line interface.
package cmd

import (
	"github.com/urfave/cli"
)

// NewApp builds the command tree.
func NewApp() *cli.App {
	// -v is the debug flag, so --version loses its short alias
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "montecarlo-raytracer"
	app.Usage = "render sphere scenes with a Monte Carlo path tracer"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable debug logging",
		},
		cli.StringFlag{
			Name:  "log-file",
			Usage: "also write JSON logs to this rotating file",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a scene to an image",
			Description: `
Render a built-in scene or a YAML scene file. Settings are resolved from the
defaults, then the optional --config file, then the flags given here.

Use --out - to write the image to stdout (PPM unless --format is given).`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scene, s",
					Usage: "built-in scene name or path to a .yaml scene file",
				},
				cli.StringFlag{
					Name:  "config, c",
					Usage: "YAML render configuration file",
				},
				cli.IntFlag{
					Name:  "width",
					Value: 400,
					Usage: "image width",
				},
				cli.IntFlag{
					Name:  "height",
					Value: 225,
					Usage: "image height",
				},
				cli.IntFlag{
					Name:  "spp",
					Value: 100,
					Usage: "samples per pixel",
				},
				cli.IntFlag{
					Name:  "depth",
					Value: 50,
					Usage: "maximum number of bounces per path",
				},
				cli.Int64Flag{
					Name:  "seed",
					Value: 42,
					Usage: "random seed, the same seed reproduces the same image",
				},
				cli.IntFlag{
					Name:  "workers",
					Usage: "number of render workers, 0 uses every CPU",
				},
				cli.IntFlag{
					Name:  "tile-size",
					Value: 32,
					Usage: "edge length of the square render tiles",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "render.png",
					Usage: "output image path",
				},
				cli.StringFlag{
					Name:  "format",
					Usage: "output format (png or ppm), defaults to the output extension",
				},
			},
			Action: Render,
		},
		{
			Name:  "scenes",
			Usage: "list built-in scenes and scene files",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "dir, d",
					Value: "scenes",
					Usage: "directory scanned for .yaml scene files",
				},
			},
			Action: ListScenes,
		},
		{
			Name:  "serve",
			Usage: "serve renders over HTTP",
			Description: `
Start an HTTP server with the endpoints
  GET /api/health
  GET /api/scenes
  GET /api/render?scene=three-spheres&width=400&height=225&spp=100&depth=50&seed=42
The render endpoint responds with a PNG. Closing the connection stops the render.`,
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "port, p",
					Value: 8080,
					Usage: "port to listen on",
				},
				cli.StringFlag{
					Name:  "dir, d",
					Value: "scenes",
					Usage: "directory scanned for .yaml scene files",
				},
				cli.StringFlag{
					Name:  "config, c",
					Usage: "YAML render configuration providing request defaults",
				},
			},
			Action: Serve,
		},
	}

	return app
}
