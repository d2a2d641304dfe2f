package reader

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"github.com/yanky319/Ray-tracing/types"
)

// The attributes of a single xml element.
type attrs struct {
	element string
	values  map[string]string
}

func newAttrs(el *xmlElement) attrs {
	values := make(map[string]string, len(el.Attrs))
	for _, attr := range el.Attrs {
		values[attr.Name.Local] = attr.Value
	}
	return attrs{element: el.XMLName.Local, values: values}
}

func (a attrs) has(name string) bool {
	_, ok := a.values[name]
	return ok
}

func (a attrs) lookup(name string) (string, error) {
	value, ok := a.values[name]
	if !ok {
		return "", fmt.Errorf("%w: <%s> requires attribute '%s'", ErrMissingAttribute, a.element, name)
	}
	return value, nil
}

func (a attrs) invalid(name, value string, err error) error {
	return fmt.Errorf("%w: <%s> attribute '%s'=%q: %s", ErrInvalidAttribute, a.element, name, value, err.Error())
}

// Parse a space-separated list of exactly count numbers.
func (a attrs) floats(name string, count int) ([]float64, error) {
	value, err := a.lookup(name)
	if err != nil {
		return nil, err
	}

	tokens := strings.Fields(value)
	if len(tokens) != count {
		return nil, a.invalid(name, value, fmt.Errorf("expected %d values; got %d", count, len(tokens)))
	}

	out := make([]float64, count)
	for index, token := range tokens {
		out[index], err = strconv.ParseFloat(token, 64)
		if err != nil {
			return nil, a.invalid(name, value, err)
		}
	}
	return out, nil
}

func (a attrs) float(name string) (float64, error) {
	v, err := a.floats(name, 1)
	if err != nil {
		return 0, err
	}
	return v[0], nil
}

// Parse an optional number falling back to def when the attribute is absent.
func (a attrs) floatOr(name string, def float64) (float64, error) {
	if !a.has(name) {
		return def, nil
	}
	return a.float(name)
}

// Integers may be written as decimals; the fractional part is dropped.
func (a attrs) intOr(name string, def int) (int, error) {
	if !a.has(name) {
		return def, nil
	}
	v, err := a.float(name)
	return int(v), err
}

func (a attrs) vec3(name string) (types.Vec3, error) {
	v, err := a.floats(name, 3)
	if err != nil {
		return types.Vec3{}, err
	}
	return types.XYZ(v[0], v[1], v[2]), nil
}

func (a attrs) color(name string) (types.Color, error) {
	v, err := a.floats(name, 3)
	if err != nil {
		return types.Black, err
	}
	return types.RGB(v[0], v[1], v[2]), nil
}

func (a attrs) colorOr(name string, def types.Color) (types.Color, error) {
	if !a.has(name) {
		return def, nil
	}
	return a.color(name)
}

// A generic xml element that preserves attribute and child ordering.
type xmlElement struct {
	XMLName  xml.Name
	Attrs    []xml.Attr   `xml:",any,attr"`
	Children []xmlElement `xml:",any"`
}
