package spec

import (
	"encoding/json"
	"testing"
)

func TestLoadProject(t *testing.T) {
	ns, err := LoadProject("testdata")
	if err != nil {
		t.Fatalf("LoadProject failed: %v", err)
	}
	if len(ns) != 2 {
		t.Fatalf("neighborhoods = %d, want 2", len(ns))
	}

	g := ns[0]
	if g.Name != "gracia" {
		t.Errorf("name = %q, want %q", g.Name, "gracia")
	}
	if g.ApartmentHeight != 2.34 {
		t.Errorf("apartments_height = %v, want 2.34", g.ApartmentHeight)
	}
	if len(g.Buildings) != 2 {
		t.Fatalf("buildings = %d, want 2", len(g.Buildings))
	}
	si := g.BuildingByName("si")
	if si == nil {
		t.Fatal("missing building si")
	}
	if si.ApartmentCount != 3 || si.Distance != 25 {
		t.Errorf("si = %d floors / %vm, want 3 / 25", si.ApartmentCount, si.Distance)
	}
	if g.BuildingByName("nope") != nil {
		t.Error("BuildingByName returned a building for an unknown name")
	}

	if ns[1].Name != "example" || ns[1].Buildings[0].ApartmentCount != 12 {
		t.Errorf("second neighborhood = %+v", ns[1])
	}
}

func TestLoadPath(t *testing.T) {
	fromDir, err := LoadPath("testdata")
	if err != nil {
		t.Fatalf("LoadPath(dir): %v", err)
	}
	fromFile, err := LoadPath("testdata/city.yaml")
	if err != nil {
		t.Fatalf("LoadPath(file): %v", err)
	}
	if len(fromDir) != len(fromFile) {
		t.Errorf("dir gave %d neighborhoods, file gave %d", len(fromDir), len(fromFile))
	}
}

func TestLoadProjectMissing(t *testing.T) {
	if _, err := LoadProject("/nonexistent/path"); err == nil {
		t.Error("expected error for missing project directory")
	}
	if _, err := LoadPath("/nonexistent/path"); err == nil {
		t.Error("expected error for missing path")
	}
}

func TestParseJSONEnvelope(t *testing.T) {
	data := []byte(`{"city_data": [
		{"name": "gracia", "apartments_height": 2.34, "buildings": [
			{"name": "la", "apartments_count": 7, "distance": 0},
			{"name": "si", "apartments_count": 3, "distance": 25}
		]}
	]}`)
	ns, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(ns) != 1 || len(ns[0].Buildings) != 2 {
		t.Fatalf("parsed = %+v", ns)
	}
	if ns[0].Buildings[0].Name != "la" || ns[0].Buildings[0].ApartmentCount != 7 {
		t.Errorf("first building = %+v", ns[0].Buildings[0])
	}
}

func TestParseBareList(t *testing.T) {
	data := []byte(`
- name: example
  apartments_height: 2.5
  buildings:
    - {name: do, apartments_count: 12, distance: 0}
`)
	ns, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(ns) != 1 || ns[0].Name != "example" {
		t.Errorf("parsed = %+v", ns)
	}
}

func TestParseInvalid(t *testing.T) {
	for _, in := range []string{
		"",
		"just a string",
		"city_data: [",
		"city_data: {name: x}",
	} {
		if _, err := Parse([]byte(in)); err == nil {
			t.Errorf("Parse(%q): expected error", in)
		}
	}
}

func TestExportOmitsUnresolvedWindows(t *testing.T) {
	b := Building{
		Name: "la", ApartmentCount: 2,
		Apartments: []Apartment{
			{Number: 0, SunlightStart: "08:14:00", SunlightStop: "16:37:00"},
			{Number: 1},
		},
	}
	out, err := json.Marshal(b)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"name":"la","apartments_count":2,"distance":0,"apartments":[` +
		`{"apartment_number":0,"sunlight_start":"08:14:00","sunlight_stop":"16:37:00"},` +
		`{"apartment_number":1}]}`
	if string(out) != want {
		t.Errorf("json = %s\nwant   %s", out, want)
	}
}
