package reader

import (
	"encoding/xml"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/yanky319/Ray-tracing/log"
	"github.com/yanky319/Ray-tracing/scene"
)

var (
	ErrMissingElement   = errors.New("reader: missing element")
	ErrMissingAttribute = errors.New("reader: missing attribute")
	ErrInvalidAttribute = errors.New("reader: invalid attribute")
	ErrUnknownElement   = errors.New("reader: unknown element")
)

// ImageSpec holds the output image resolution defined by a scene file.
type ImageSpec struct {
	Name string

	// Number of pixels along each axis.
	Width  int
	Height int
}

type xmlSceneReader struct {
	logger log.Logger

	// Resources currently being parsed; used to detect include cycles.
	openPaths []string
}

// Read a scene description from a local file or an http(s) url.
//
// The expected document layout is:
//
//	<scene background-color="r g b" screen-distance="d">
//	  <ambient-light color="r g b" ka="1"/>
//	  <camera P0="x y z" Vto="x y z" Vup="x y z"/>
//	  <image screen-width="w" screen-height="h" Nx="px" Ny="px"/>
//	  <geometries>...</geometries>
//	  <lights>...</lights>
//	</scene>
//
// A <geometries> element may contain <include path="..."/> elements that
// load the geometries of another file into a nested aggregate. Relative
// include paths are resolved against the including file.
func ReadScene(pathToScene string) (*scene.Scene, ImageSpec, error) {
	res, err := newResource(pathToScene, nil)
	if err != nil {
		return nil, ImageSpec{}, err
	}
	defer res.Close()

	return newXMLReader().read(res)
}

func newXMLReader() *xmlSceneReader {
	return &xmlSceneReader{
		logger: log.New("reader"),
	}
}

func (r *xmlSceneReader) read(res *resource) (*scene.Scene, ImageSpec, error) {
	r.logger.Infof("parsing scene from %s", res.Path())
	start := time.Now()

	root, err := r.decode(res, "scene")
	if err != nil {
		return nil, ImageSpec{}, err
	}

	sc, spec, err := r.parseScene(res, root)
	if err != nil {
		return nil, ImageSpec{}, fmt.Errorf("%s: %w", res.Path(), err)
	}

	r.logger.Infof("parsed scene %q in %d ms", sc.Name, time.Since(start).Nanoseconds()/1e6)
	return sc, spec, nil
}

// Decode a document and check that its root element matches rootName.
func (r *xmlSceneReader) decode(res *resource, rootName string) (*xmlElement, error) {
	var root xmlElement
	if err := xml.NewDecoder(res).Decode(&root); err != nil {
		return nil, fmt.Errorf("%s: could not parse xml: %w", res.Path(), err)
	}
	if root.XMLName.Local != rootName {
		return nil, fmt.Errorf("%s: %w: expected root element <%s>; got <%s>", res.Path(), ErrUnknownElement, rootName, root.XMLName.Local)
	}
	return &root, nil
}

func (r *xmlSceneReader) parseScene(res *resource, root *xmlElement) (*scene.Scene, ImageSpec, error) {
	var spec ImageSpec
	rootAttrs := newAttrs(root)

	name := rootAttrs.values["name"]
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(res.url.Path), filepath.Ext(res.url.Path))
	}
	sc := scene.New(name)
	spec.Name = name

	var err error
	if sc.Background, err = rootAttrs.colorOr("background-color", sc.Background); err != nil {
		return nil, spec, err
	}
	if sc.ViewPlane.Distance, err = rootAttrs.float("screen-distance"); err != nil {
		return nil, spec, err
	}

	var seenImage bool
	for index := range root.Children {
		el := &root.Children[index]
		switch el.XMLName.Local {
		case "ambient-light":
			sc.Ambient, err = parseAmbientLight(newAttrs(el))
		case "camera":
			sc.Camera, err = parseCamera(newAttrs(el))
		case "image":
			seenImage = true
			err = parseImage(newAttrs(el), &sc.ViewPlane, &spec)
		case "geometries":
			var agg *scene.Aggregate
			if agg, err = r.parseGeometries(res, el); err == nil {
				err = sc.AddGeometries(agg.Items()...)
			}
		case "lights":
			var lights []scene.Light
			if lights, err = parseLights(el); err == nil {
				err = sc.AddLights(lights...)
			}
		default:
			err = fmt.Errorf("%w: <%s>", ErrUnknownElement, el.XMLName.Local)
		}
		if err != nil {
			return nil, spec, err
		}
	}

	if sc.Camera == nil {
		return nil, spec, fmt.Errorf("%w: <camera>", ErrMissingElement)
	}
	if !seenImage {
		return nil, spec, fmt.Errorf("%w: <image>", ErrMissingElement)
	}

	return sc, spec, nil
}

func parseAmbientLight(a attrs) (scene.AmbientLight, error) {
	var (
		light scene.AmbientLight
		err   error
	)
	if light.Color, err = a.color("color"); err != nil {
		return light, err
	}
	light.Ka, err = a.floatOr("ka", 1)
	return light, err
}

func parseCamera(a attrs) (*scene.Camera, error) {
	position, err := a.vec3("P0")
	if err != nil {
		return nil, err
	}
	to, err := a.vec3("Vto")
	if err != nil {
		return nil, err
	}
	up, err := a.vec3("Vup")
	if err != nil {
		return nil, err
	}
	return scene.NewCamera(position, to, up)
}

func parseImage(a attrs, vp *scene.ViewPlane, spec *ImageSpec) error {
	var err error
	if vp.Width, err = a.float("screen-width"); err != nil {
		return err
	}
	if vp.Height, err = a.float("screen-height"); err != nil {
		return err
	}
	if spec.Width, err = a.intOr("Nx", 0); err != nil {
		return err
	}
	if spec.Height, err = a.intOr("Ny", 0); err != nil {
		return err
	}
	if spec.Width <= 0 || spec.Height <= 0 {
		return fmt.Errorf("%w: <image> Nx and Ny must be greater than zero", ErrInvalidAttribute)
	}
	return nil
}

// Parse the children of a <geometries> element into an aggregate.
func (r *xmlSceneReader) parseGeometries(res *resource, el *xmlElement) (*scene.Aggregate, error) {
	agg := scene.NewAggregate()
	for index := range el.Children {
		child := &el.Children[index]
		if child.XMLName.Local == "include" {
			included, err := r.include(res, newAttrs(child))
			if err != nil {
				return nil, err
			}
			agg.Add(included)
			continue
		}

		surface, err := parseGeometry(child)
		if err != nil {
			return nil, fmt.Errorf("geometry %d: %w", index, err)
		}
		agg.Add(surface)
	}
	return agg, nil
}

// Load the geometries defined in another file.
func (r *xmlSceneReader) include(parent *resource, a attrs) (*scene.Aggregate, error) {
	path, err := a.lookup("path")
	if err != nil {
		return nil, err
	}

	res, err := newResource(path, parent)
	if err != nil {
		return nil, err
	}
	defer res.Close()

	r.openPaths = append(r.openPaths, parent.Key())
	defer func() { r.openPaths = r.openPaths[:len(r.openPaths)-1] }()
	for _, open := range r.openPaths {
		if open == res.Key() {
			return nil, fmt.Errorf("%w: include cycle detected for %s", ErrInvalidAttribute, res.Path())
		}
	}

	r.logger.Debugf("including geometries from %s", res.Path())
	root, err := r.decode(res, "geometries")
	if err != nil {
		return nil, err
	}
	agg, err := r.parseGeometries(res, root)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", res.Path(), err)
	}
	return agg, nil
}
