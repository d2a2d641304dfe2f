package reader

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/yanky319/Ray-tracing/scene"
	"github.com/yanky319/Ray-tracing/types"
	"go.viam.com/test"
)

const basicScene = `<?xml version="1.0"?>
<scene background-color="75 127 90" screen-distance="100">
	<ambient-light color="255 191 191" ka="0.5"/>
	<camera P0="0 0 0" Vto="0 0 1" Vup="0 -1 0"/>
	<image screen-width="500" screen-height="400" Nx="250" Ny="200"/>
	<geometries>
		<sphere center="0 0 100" radius="50" kd="0.5" ks="0.5" shininess="30" emission="0 0 255"/>
		<triangle p0="100 0 100" p1="0 100 100" p2="100 100 100"/>
		<polygon kr="0.5">
			<vertex p="-1 -1 200"/>
			<vertex p="1 -1 200"/>
			<vertex p="1 1 200"/>
			<vertex p="-1 1 200"/>
		</polygon>
		<plane point="0 0 300" normal="0 0 -1"/>
		<plane p0="0 500 0" p1="1 500 0" p2="0 500 1"/>
		<tube origin="0 0 0" direction="0 1 0" radius="5"/>
		<cylinder origin="0 0 0" direction="0 1 0" radius="5" height="10" kt="0.25"/>
	</geometries>
	<lights>
		<point color="255 255 255" position="0 0 -10" kl="0.001"/>
		<spot color="700 400 400" position="0 0 -10" direction="0 0 1" kq="2e-7" radius="5" concentration="3"/>
		<directional color="50 50 50" direction="0 0 1"/>
	</lights>
</scene>
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadScene(t *testing.T) {
	path := writeFile(t, t.TempDir(), "basic.xml", basicScene)

	sc, spec, err := ReadScene(path)
	test.That(t, err, test.ShouldBeNil)

	test.That(t, spec, test.ShouldResemble, ImageSpec{Name: "basic", Width: 250, Height: 200})
	test.That(t, sc.Name, test.ShouldEqual, "basic")
	test.That(t, sc.Background, test.ShouldResemble, types.RGB(75, 127, 90))
	test.That(t, sc.ViewPlane, test.ShouldResemble, scene.ViewPlane{Distance: 100, Width: 500, Height: 400})
	test.That(t, sc.Ambient.Intensity(), test.ShouldResemble, types.RGB(127.5, 95.5, 95.5))

	test.That(t, sc.Camera, test.ShouldNotBeNil)
	test.That(t, sc.Camera.Right, test.ShouldResemble, types.XYZ(1, 0, 0))

	stats := sc.Stats()
	test.That(t, stats.TotalSurfaces(), test.ShouldEqual, 7)
	test.That(t, stats.Surfaces[scene.SphereSurface], test.ShouldEqual, 1)
	test.That(t, stats.Surfaces[scene.PlaneSurface], test.ShouldEqual, 2)
	test.That(t, stats.Surfaces[scene.CylinderSurface], test.ShouldEqual, 1)
	test.That(t, stats.Lights, test.ShouldEqual, 3)

	sphere := sc.Geometries.Items()[0].(*scene.Surface)
	test.That(t, sphere.Material, test.ShouldResemble, scene.Material{KD: 0.5, KS: 0.5, Shininess: 30})
	test.That(t, sphere.Emission, test.ShouldResemble, types.RGB(0, 0, 255))
	test.That(t, sc.Geometries.Items()[2].(*scene.Surface).Material.KR, test.ShouldEqual, 0.5)

	point := sc.Lights[0].(*scene.PointLight)
	test.That(t, point.Attenuation, test.ShouldResemble, scene.Attenuation{Constant: 1, Linear: 0.001})
	spot := sc.Lights[1].(*scene.SpotLight)
	test.That(t, spot.Concentration, test.ShouldEqual, 3)
	test.That(t, spot.Radius, test.ShouldEqual, 5.0)
	_, ok := sc.Lights[2].(*scene.DirectionalLight)
	test.That(t, ok, test.ShouldBeTrue)
}

func TestReadSceneWithIncludes(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "parts"), 0755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(dir, "parts"), "spheres.xml", `
<geometries>
	<sphere center="0 0 10" radius="1"/>
	<sphere center="0 0 20" radius="1"/>
</geometries>`)
	path := writeFile(t, dir, "main.xml", `
<scene name="with includes" screen-distance="1">
	<camera P0="0 0 0" Vto="0 0 1" Vup="0 1 0"/>
	<image screen-width="1" screen-height="1" Nx="10" Ny="10"/>
	<geometries>
		<sphere center="0 0 30" radius="1"/>
		<include path="parts/spheres.xml"/>
	</geometries>
</scene>`)

	sc, spec, err := ReadScene(path)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, spec.Name, test.ShouldEqual, "with includes")
	test.That(t, sc.Geometries.Len(), test.ShouldEqual, 2)

	stats := sc.Stats()
	test.That(t, stats.Surfaces[scene.SphereSurface], test.ShouldEqual, 3)
	test.That(t, stats.Aggregates, test.ShouldEqual, 1)
}

func TestReadSceneIncludeCycle(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "loop.xml", `<geometries><include path="loop.xml"/></geometries>`)
	path := writeFile(t, dir, "main.xml", `
<scene screen-distance="1">
	<camera P0="0 0 0" Vto="0 0 1" Vup="0 1 0"/>
	<image screen-width="1" screen-height="1" Nx="10" Ny="10"/>
	<geometries><include path="loop.xml"/></geometries>
</scene>`)

	_, _, err := ReadScene(path)
	test.That(t, errors.Is(err, ErrInvalidAttribute), test.ShouldBeTrue)
}

func TestReadRemoteScene(t *testing.T) {
	serverFn := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/scenes/remote.xml":
			w.Write([]byte(`
<scene screen-distance="1">
	<camera P0="0 0 0" Vto="0 0 1" Vup="0 1 0"/>
	<image screen-width="1" screen-height="1" Nx="4" Ny="4"/>
	<geometries><include path="parts.xml"/></geometries>
</scene>`))
		case "/scenes/parts.xml":
			w.Write([]byte(`<geometries><sphere center="0 0 5" radius="1"/></geometries>`))
		default:
			http.NotFound(w, r)
		}
	})
	server := httptest.NewServer(serverFn)
	defer server.Close()

	sc, spec, err := ReadScene(server.URL + "/scenes/remote.xml")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, spec.Name, test.ShouldEqual, "remote")
	test.That(t, sc.Stats().Surfaces[scene.SphereSurface], test.ShouldEqual, 1)
}

func TestReadSceneErrors(t *testing.T) {
	type spec struct {
		doc    string
		expErr error
	}

	const (
		camera = `<camera P0="0 0 0" Vto="0 0 1" Vup="0 1 0"/>`
		image  = `<image screen-width="1" screen-height="1" Nx="10" Ny="10"/>`
	)

	specs := []spec{
		{`<scene screen-distance="1">` + image + `</scene>`, ErrMissingElement},
		{`<scene screen-distance="1">` + camera + `</scene>`, ErrMissingElement},
		{`<scene>` + camera + image + `</scene>`, ErrMissingAttribute},
		{`<world screen-distance="1">` + camera + image + `</world>`, ErrUnknownElement},
		{`<scene screen-distance="1">` + camera + image + `<fog/></scene>`, ErrUnknownElement},
		{`<scene screen-distance="1">` + camera + image + `<geometries><cube/></geometries></scene>`, ErrUnknownElement},
		{`<scene screen-distance="1">` + camera + image + `<lights><area color="1 1 1" position="0 0 0"/></lights></scene>`, ErrUnknownElement},
		{`<scene screen-distance="1">` + camera + image + `<geometries><sphere center="0 0" radius="1"/></geometries></scene>`, ErrInvalidAttribute},
		{`<scene screen-distance="1">` + camera + image + `<geometries><sphere center="0 0 a" radius="1"/></geometries></scene>`, ErrInvalidAttribute},
		{`<scene screen-distance="1">` + camera + `<image screen-width="1" screen-height="1"/></scene>`, ErrInvalidAttribute},
		{`<scene screen-distance="1">` + camera + image + `<geometries><sphere center="0 0 0" radius="-1"/></geometries></scene>`, scene.ErrInvalidRadius},
		{`<scene screen-distance="1"><camera P0="0 0 0" Vto="0 0 1" Vup="0 1 1"/>` + image + `</scene>`, scene.ErrNotOrthogonal},
		{`<scene screen-distance="1">` + camera + image + `<lights><point color="1 1 1" position="0 0 0" radius="-2"/></lights></scene>`, scene.ErrNegativeLightRadius},
		{`<scene screen-distance="1">` + camera + image + `<lights><spot color="1 1 1" position="0 0 0" direction="0 0 1" concentration="0"/></lights></scene>`, scene.ErrInvalidConcentration},
	}

	dir := t.TempDir()
	for index, s := range specs {
		path := writeFile(t, dir, "scene.xml", s.doc)
		_, _, err := ReadScene(path)
		if !errors.Is(err, s.expErr) {
			t.Fatalf("[spec %d] expected error %v; got %v", index, s.expErr, err)
		}
	}

	if _, _, err := ReadScene(filepath.Join(dir, "missing.xml")); err == nil {
		t.Fatal("expected an error for a missing scene file")
	}
}
