package cmd

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
	"github.com/yanky319/Ray-tracing/renderer"
	"github.com/yanky319/Ray-tracing/renderer/writer"
	"github.com/yanky319/Ray-tracing/scene/compiler"
	"github.com/yanky319/Ray-tracing/types"
)

// Render a still frame.
func RenderFrame(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	sc, spec, err := loadScene(ctx)
	if err != nil {
		return err
	}

	opts, err := renderOptions(ctx, spec)
	if err != nil {
		return err
	}

	if err = compiler.Compile(sc); err != nil {
		return err
	}

	r, err := renderer.New(sc, opts)
	if err != nil {
		return err
	}

	frame := writer.New(opts.FrameW, opts.FrameH)
	var progress renderer.ProgressFunc
	if ctx.Bool("progress") {
		progress = func(percent int) {
			fmt.Fprintf(os.Stderr, "\rrendering: %3d%%", percent)
			if percent == 100 {
				fmt.Fprintln(os.Stderr)
			}
		}
	}

	err = r.Render(frame, progress)
	displayFrameStats(r.Stats())
	if err != nil {
		return err
	}

	if interval, color, err := gridSettings(ctx, spec); err != nil {
		return err
	} else if interval > 0 {
		if err = frame.PrintGrid(interval, color); err != nil {
			return err
		}
	}

	imgFile := ctx.String("out")
	if err = frame.SavePNG(imgFile); err != nil {
		return err
	}
	logger.Noticef("wrote frame to %s", imgFile)
	return nil
}

// Build render options from the command line flags. Settings that are not
// explicitly set fall back to the values suggested by the scene.
func renderOptions(ctx *cli.Context, spec sceneSpec) (renderer.Options, error) {
	opts := renderer.DefaultOptions()
	opts.FrameW, opts.FrameH = spec.width, spec.height
	if spec.entry != nil {
		opts.SuperSampling = spec.entry.SuperSampling
		opts.SoftShadows = spec.entry.SoftShadows
		if spec.entry.Rays > 0 {
			opts.Rays = spec.entry.Rays
		}
	}

	if ctx.IsSet("width") {
		opts.FrameW = ctx.Int("width")
	}
	if ctx.IsSet("height") {
		opts.FrameH = ctx.Int("height")
	}
	if ctx.IsSet("max-depth") {
		opts.MaxDepth = ctx.Int("max-depth")
	}
	if ctx.IsSet("min-k") {
		opts.MinK = ctx.Float64("min-k")
	}
	if ctx.IsSet("threads") {
		opts.Threads = ctx.Int("threads")
	}
	if ctx.IsSet("super-sampling") {
		opts.SuperSampling = ctx.Bool("super-sampling")
	}
	if ctx.IsSet("rays") {
		opts.Rays = ctx.Int("rays")
	}
	if ctx.IsSet("soft-shadows") {
		opts.SoftShadows = ctx.Bool("soft-shadows")
	}
	if ctx.IsSet("shadow-rays") {
		opts.ShadowRays = ctx.Int("shadow-rays")
	}
	if ctx.IsSet("seed") {
		opts.Seed = ctx.Int64("seed")
	}

	if opts.FrameW <= 0 || opts.FrameH <= 0 {
		return opts, renderer.ErrInvalidFrame
	}
	if opts.MaxDepth < 0 {
		return opts, fmt.Errorf("max-depth must not be negative; got %d", opts.MaxDepth)
	}
	return opts, nil
}

// Get the grid overlay settings. A zero interval disables the grid.
func gridSettings(ctx *cli.Context, spec sceneSpec) (int, types.Color, error) {
	interval, color := 0, types.RGB(255, 255, 255)
	if spec.entry != nil && spec.entry.GridInterval > 0 {
		interval, color = spec.entry.GridInterval, spec.entry.GridColor
	}

	if ctx.IsSet("grid") {
		interval = ctx.Int("grid")
	}
	if ctx.IsSet("grid-color") {
		var err error
		if color, err = parseColor(ctx.String("grid-color")); err != nil {
			return 0, color, err
		}
	}
	return interval, color, nil
}

// Parse a color given as "r g b" or "r,g,b".
func parseColor(value string) (types.Color, error) {
	tokens := strings.FieldsFunc(value, func(r rune) bool { return r == ',' || r == ' ' })
	if len(tokens) != 3 {
		return types.Black, fmt.Errorf("invalid color %q; expected 3 components", value)
	}

	var c types.Color
	for index, token := range tokens {
		v, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return types.Black, fmt.Errorf("invalid color %q: %s", value, err.Error())
		}
		c[index] = v
	}
	return c, nil
}

func displayFrameStats(stats renderer.FrameStats) {
	logger.Noticef("frame statistics\n%s", frameStatsTable(stats))
}

func frameStatsTable(stats renderer.FrameStats) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Worker", "Status", "Pixels", "% of frame", "Render time"})

	var pixels int
	for _, stat := range stats.Tracers {
		status := "ok"
		if stat.Failed {
			status = "failed"
		}
		pixels += stat.Pixels
		table.Append([]string{
			stat.Id,
			status,
			fmt.Sprintf("%d", stat.Pixels),
			fmt.Sprintf("%02.1f %%", stat.FramePercent),
			stat.RenderTime.String(),
		})
	}
	table.SetFooter([]string{"", "", fmt.Sprintf("%d", pixels), "TOTAL", stats.RenderTime.String()})

	table.Render()
	return buf.String()
}
