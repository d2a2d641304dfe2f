package cmd

import "github.com/urfave/cli"

// Flag for selecting a builtin scene instead of a scene file.
var sceneFlag = cli.StringFlag{
	Name:  "scene, s",
	Usage: "render the builtin scene with this name instead of a scene file",
}

// GlobalFlags are accepted by all commands.
var GlobalFlags = []cli.Flag{
	cli.BoolFlag{
		Name:  "v",
		Usage: "enable verbose logging",
	},
	cli.BoolFlag{
		Name:  "vv",
		Usage: "enable even more verbose logging",
	},
	cli.StringFlag{
		Name:  "log-level",
		Usage: "set the log level (debug, info, notice, warning, error)",
	},
}

// SceneFlags are accepted by the scene-info command.
var SceneFlags = []cli.Flag{
	sceneFlag,
}

// RenderFlags are accepted by the render command. Frame dimensions and
// sampling settings default to the values defined by the scene.
var RenderFlags = []cli.Flag{
	sceneFlag,
	cli.IntFlag{
		Name:  "width",
		Usage: "frame width in pixels",
	},
	cli.IntFlag{
		Name:  "height",
		Usage: "frame height in pixels",
	},
	cli.IntFlag{
		Name:  "max-depth",
		Value: 10,
		Usage: "max number of reflection and refraction bounces",
	},
	cli.Float64Flag{
		Name:  "min-k",
		Value: 1e-4,
		Usage: "ignore secondary rays whose contribution falls below this value",
	},
	cli.IntFlag{
		Name:  "threads",
		Usage: "number of render workers (default: number of cpus - 2)",
	},
	cli.BoolFlag{
		Name:  "super-sampling",
		Usage: "enable anti-aliasing",
	},
	cli.IntFlag{
		Name:  "rays",
		Value: 64,
		Usage: "number of extra rays per pixel when anti-aliasing is enabled",
	},
	cli.BoolFlag{
		Name:  "soft-shadows",
		Usage: "enable soft shadows for lights with a radius",
	},
	cli.IntFlag{
		Name:  "shadow-rays",
		Value: 64,
		Usage: "number of extra shadow rays per light when soft shadows are enabled",
	},
	cli.Int64Flag{
		Name:  "seed",
		Value: 1,
		Usage: "seed for the random sampling",
	},
	cli.IntFlag{
		Name:  "grid",
		Usage: "draw a grid with this pixel interval over the frame",
	},
	cli.StringFlag{
		Name:  "grid-color",
		Value: "255 255 255",
		Usage: "grid color as 'r g b'",
	},
	cli.BoolFlag{
		Name:  "progress",
		Usage: "print render progress to stderr",
	},
	cli.StringFlag{
		Name:  "out, o",
		Value: "frame.png",
		Usage: "image filename for the rendered frame",
	},
}
