package main

import (
	"os"

	"github.com/urfave/cli"
	"github.com/yanky319/Ray-tracing/cmd"
	"github.com/yanky319/Ray-tracing/log"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "raytracer"
	app.Usage = "render scenes using recursive ray tracing"
	app.Version = "0.1.0"
	app.Flags = cmd.GlobalFlags
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a single frame",
			Description: `
Load a scene from an xml scene file or select one of the builtin scenes with
--scene, render it using all available cpus and write the frame to a png file.`,
			ArgsUsage: "[scene_file.xml]",
			Flags:     cmd.RenderFlags,
			Action:    cmd.RenderFrame,
		},
		{
			Name:      "scene-info",
			Usage:     "display scene statistics",
			ArgsUsage: "[scene_file.xml]",
			Flags:     cmd.SceneFlags,
			Action:    cmd.ShowSceneInfo,
		},
		{
			Name:   "list-scenes",
			Usage:  "list the builtin scenes",
			Action: cmd.ListScenes,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.New("raytracer").Errorf("%s", err.Error())
		os.Exit(1)
	}
}
