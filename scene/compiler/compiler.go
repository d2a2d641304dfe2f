package compiler

import (
	"errors"
	"time"

	"github.com/yanky319/Ray-tracing/log"
	"github.com/yanky319/Ray-tracing/scene"
)

var ErrNoCamera = errors.New("compiler: scene has no camera")

type sceneCompiler struct {
	scene  *scene.Scene
	logger log.Logger
}

// Compile validates a scene and builds its acceleration structure. After
// compilation the scene can no longer be modified and is safe to share
// between render workers.
func Compile(sc *scene.Scene) error {
	if sc.Compiled() {
		return scene.ErrSceneCompiled
	}

	compiler := &sceneCompiler{
		scene:  sc,
		logger: log.New("scene compiler"),
	}

	start := time.Now()
	compiler.logger.Noticef("compiling scene %q", sc.Name)

	var err error
	err = compiler.validateCamera()
	if err != nil {
		return err
	}

	err = compiler.partitionGeometry()
	if err != nil {
		return err
	}

	compiler.logger.Noticef("compiled scene in %d ms", time.Since(start).Nanoseconds()/1e6)
	return nil
}

func (sc *sceneCompiler) validateCamera() error {
	if sc.scene.Camera == nil {
		return ErrNoCamera
	}
	return sc.scene.ViewPlane.Validate()
}

// Build the scene BVH from the geometry aggregate.
func (sc *sceneCompiler) partitionGeometry() error {
	start := time.Now()
	sc.logger.Infof("building scene BVH tree (%d top level items)", sc.scene.Geometries.Len())

	bvh, err := BuildBVH(sc.scene.Geometries)
	if err != nil {
		return err
	}
	sc.scene.BVH = bvh

	stats := sc.scene.Stats()
	sc.logger.Infof(
		"partitioned %d surfaces (%d unbounded) and %d lights in %d ms; BVH nodes: %d, leafs: %d, depth: %d",
		stats.TotalSurfaces(), stats.Unbounded, stats.Lights,
		time.Since(start).Nanoseconds()/1e6,
		stats.BvhNodes, stats.BvhLeafs, stats.BvhDepth,
	)
	return nil
}
