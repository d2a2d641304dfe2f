package reader

import (
	"fmt"

	"github.com/yanky319/Ray-tracing/scene"
	"github.com/yanky319/Ray-tracing/types"
)

// Material coefficients default to zero when omitted.
func parseMaterial(a attrs) (scene.Material, error) {
	var (
		mat scene.Material
		err error
	)
	if mat.KD, err = a.floatOr("kd", 0); err != nil {
		return mat, err
	}
	if mat.KS, err = a.floatOr("ks", 0); err != nil {
		return mat, err
	}
	if mat.Shininess, err = a.intOr("shininess", 0); err != nil {
		return mat, err
	}
	if mat.KT, err = a.floatOr("kt", 0); err != nil {
		return mat, err
	}
	mat.KR, err = a.floatOr("kr", 0)
	return mat, err
}

func parseGeometry(el *xmlElement) (*scene.Surface, error) {
	a := newAttrs(el)
	mat, err := parseMaterial(a)
	if err != nil {
		return nil, err
	}
	emission, err := a.colorOr("emission", types.Black)
	if err != nil {
		return nil, err
	}

	switch el.XMLName.Local {
	case "sphere":
		center, err := a.vec3("center")
		if err != nil {
			return nil, err
		}
		radius, err := a.float("radius")
		if err != nil {
			return nil, err
		}
		return scene.NewSphere(center, radius, mat, emission)
	case "triangle":
		points, err := pointList(a, "p0", "p1", "p2")
		if err != nil {
			return nil, err
		}
		return scene.NewTriangle(points[0], points[1], points[2], mat, emission)
	case "polygon":
		vertices := make([]types.Vec3, 0, len(el.Children))
		for index := range el.Children {
			vertex := &el.Children[index]
			if vertex.XMLName.Local != "vertex" {
				return nil, fmt.Errorf("%w: <%s> inside <polygon>", ErrUnknownElement, vertex.XMLName.Local)
			}
			p, err := newAttrs(vertex).vec3("p")
			if err != nil {
				return nil, err
			}
			vertices = append(vertices, p)
		}
		return scene.NewPolygon(mat, emission, vertices...)
	case "plane":
		// A plane is defined either by a point and a normal or by three points.
		if a.has("normal") {
			point, err := a.vec3("point")
			if err != nil {
				return nil, err
			}
			normal, err := a.vec3("normal")
			if err != nil {
				return nil, err
			}
			return scene.NewPlane(point, normal, mat, emission)
		}
		points, err := pointList(a, "p0", "p1", "p2")
		if err != nil {
			return nil, err
		}
		return scene.NewPlaneFromPoints(points[0], points[1], points[2], mat, emission)
	case "tube", "cylinder":
		axis, err := parseAxis(a)
		if err != nil {
			return nil, err
		}
		radius, err := a.float("radius")
		if err != nil {
			return nil, err
		}
		if el.XMLName.Local == "tube" {
			return scene.NewTube(axis, radius, mat, emission)
		}
		height, err := a.float("height")
		if err != nil {
			return nil, err
		}
		return scene.NewCylinder(axis, radius, height, mat, emission)
	}

	return nil, fmt.Errorf("%w: <%s>", ErrUnknownElement, el.XMLName.Local)
}

func pointList(a attrs, names ...string) ([]types.Vec3, error) {
	points := make([]types.Vec3, len(names))
	for index, name := range names {
		var err error
		if points[index], err = a.vec3(name); err != nil {
			return nil, err
		}
	}
	return points, nil
}

func parseAxis(a attrs) (types.Ray, error) {
	origin, err := a.vec3("origin")
	if err != nil {
		return types.Ray{}, err
	}
	dir, err := a.vec3("direction")
	if err != nil {
		return types.Ray{}, err
	}
	axis, err := types.NewRay(origin, dir)
	if err != nil {
		return types.Ray{}, fmt.Errorf("%w: <%s> axis: %s", ErrInvalidAttribute, a.element, err.Error())
	}
	return axis, nil
}

func parseAttenuation(a attrs) (scene.Attenuation, error) {
	var (
		att scene.Attenuation
		err error
	)
	if att.Constant, err = a.floatOr("kc", 1); err != nil {
		return att, err
	}
	if att.Linear, err = a.floatOr("kl", 0); err != nil {
		return att, err
	}
	att.Quadratic, err = a.floatOr("kq", 0)
	return att, err
}

func parseLights(el *xmlElement) ([]scene.Light, error) {
	lights := make([]scene.Light, 0, len(el.Children))
	for index := range el.Children {
		light, err := parseLight(&el.Children[index])
		if err != nil {
			return nil, fmt.Errorf("light %d: %w", index, err)
		}
		lights = append(lights, light)
	}
	return lights, nil
}

func parseLight(el *xmlElement) (scene.Light, error) {
	a := newAttrs(el)
	color, err := a.color("color")
	if err != nil {
		return nil, err
	}

	if el.XMLName.Local == "directional" {
		dir, err := a.vec3("direction")
		if err != nil {
			return nil, err
		}
		return scene.NewDirectionalLight(color, dir)
	}

	position, err := a.vec3("position")
	if err != nil {
		return nil, err
	}
	att, err := parseAttenuation(a)
	if err != nil {
		return nil, err
	}
	radius, err := a.floatOr("radius", 0)
	if err != nil {
		return nil, err
	}

	switch el.XMLName.Local {
	case "point":
		return scene.NewPointLight(color, position, att, radius)
	case "spot":
		dir, err := a.vec3("direction")
		if err != nil {
			return nil, err
		}
		concentration, err := a.intOr("concentration", 1)
		if err != nil {
			return nil, err
		}
		return scene.NewSpotLight(color, position, dir, att, radius, concentration)
	}

	return nil, fmt.Errorf("%w: <%s>", ErrUnknownElement, el.XMLName.Local)
}
