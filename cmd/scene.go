package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"sort"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
	"github.com/yanky319/Ray-tracing/scene"
	"github.com/yanky319/Ray-tracing/scene/builtin"
	"github.com/yanky319/Ray-tracing/scene/compiler"
	"github.com/yanky319/Ray-tracing/scene/reader"
)

var errMissingScene = errors.New("missing scene file argument or --scene flag")

// The frame settings that accompany a loaded scene.
type sceneSpec struct {
	width  int
	height int

	// Set for builtin scenes.
	entry *builtin.Entry
}

// Load the scene selected by the --scene flag or the first argument.
func loadScene(ctx *cli.Context) (*scene.Scene, sceneSpec, error) {
	if name := ctx.String("scene"); name != "" {
		sc, entry, err := builtin.Load(name)
		if err != nil {
			return nil, sceneSpec{}, err
		}
		return sc, sceneSpec{width: entry.Width, height: entry.Height, entry: &entry}, nil
	}

	if ctx.NArg() != 1 {
		return nil, sceneSpec{}, errMissingScene
	}

	sc, img, err := reader.ReadScene(ctx.Args().First())
	if err != nil {
		return nil, sceneSpec{}, err
	}
	return sc, sceneSpec{width: img.Width, height: img.Height}, nil
}

// Display scene statistics.
func ShowSceneInfo(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	sc, spec, err := loadScene(ctx)
	if err != nil {
		return err
	}
	if err = compiler.Compile(sc); err != nil {
		return err
	}

	logger.Noticef("scene %q (%dx%d):\n%s", sc.Name, spec.width, spec.height, sceneStatsTable(sc.Stats()))
	return nil
}

// List the builtin scenes.
func ListScenes(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Name", "Frame", "Anti-aliasing", "Soft shadows", "Description"})
	for _, name := range builtin.Names() {
		e, _ := builtin.Lookup(name)
		table.Append([]string{
			e.Name,
			fmt.Sprintf("%dx%d", e.Width, e.Height),
			fmt.Sprintf("%t", e.SuperSampling),
			fmt.Sprintf("%t", e.SoftShadows),
			e.Description,
		})
	}
	table.Render()

	logger.Noticef("builtin scenes\n%s", buf.String())
	return nil
}

func sceneStatsTable(stats scene.Stats) string {
	types := make([]scene.SurfaceType, 0, len(stats.Surfaces))
	for surfaceType := range stats.Surfaces {
		types = append(types, surfaceType)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Item", "Count"})
	for _, surfaceType := range types {
		table.Append([]string{surfaceType.String(), fmt.Sprintf("%d", stats.Surfaces[surfaceType])})
	}
	table.Append([]string{"nested aggregates", fmt.Sprintf("%d", stats.Aggregates)})
	table.Append([]string{"unbounded surfaces", fmt.Sprintf("%d", stats.Unbounded)})
	table.Append([]string{"lights", fmt.Sprintf("%d", stats.Lights)})
	table.Append([]string{"bvh nodes", fmt.Sprintf("%d", stats.BvhNodes)})
	table.Append([]string{"bvh leafs", fmt.Sprintf("%d", stats.BvhLeafs)})
	table.Append([]string{"bvh depth", fmt.Sprintf("%d", stats.BvhDepth)})
	table.SetFooter([]string{"TOTAL SURFACES", fmt.Sprintf("%d", stats.TotalSurfaces())})

	table.Render()
	return buf.String()
}
