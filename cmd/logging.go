package cmd

import (
	"github.com/urfave/cli"
	"github.com/yanky319/Ray-tracing/log"
)

var logger = log.New("raytracer")

// Apply the global logging flags. An explicit --log-level takes precedence
// over -v and -vv.
func setupLogging(ctx *cli.Context) error {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}

	if name := ctx.GlobalString("log-level"); name != "" {
		level, err := log.ParseLevel(name)
		if err != nil {
			return err
		}
		log.SetLevel(level)
	}
	return nil
}
