package renderer

import "errors"

var (
	ErrSceneNotDefined  = errors.New("renderer: no scene defined")
	ErrSceneNotCompiled = errors.New("renderer: scene must be compiled before rendering")
	ErrCameraNotDefined = errors.New("renderer: no camera defined")
	ErrInvalidFrame     = errors.New("renderer: frame width and height must be greater than zero")
	ErrWorkerFault      = errors.New("renderer: render worker failed")
)
