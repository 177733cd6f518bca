package data_test

import (
	"reflect"
	"testing"

	"spendglobe/internal/data"
	"spendglobe/internal/geo"
)

func loadTestDataset(t *testing.T, category, content string) *data.Dataset {
	t.Helper()
	d, err := data.LoadDataset(writeFile(t, category+".json", content), category)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestRegistryHasData(t *testing.T) {
	r := data.NewRegistry(geo.Collection{})
	if r.HasData("France") {
		t.Error("no datasets attached yet")
	}

	r.SetDataset(loadTestDataset(t, "Health", `[{"Entity": "France", "Value": 5}]`))
	if !r.HasData("France") {
		t.Error("France has a health record")
	}
	if r.HasData("france") {
		t.Error("matching must be case-sensitive")
	}
	if r.HasData("Germany") {
		t.Error("Germany has no record anywhere")
	}

	// presence in any single dataset is enough
	r.SetDataset(loadTestDataset(t, "Military", `[{"Entity": "Germany", "Value": 1}]`))
	if !r.HasData("Germany") {
		t.Error("Germany has a military record")
	}
}

func TestRegistryValueDefaultsToZero(t *testing.T) {
	r := data.NewRegistry(geo.Collection{})
	if v := r.Value("Health", "France"); v != 0 {
		t.Errorf("unloaded dataset: got %v, want 0", v)
	}
	r.SetDataset(loadTestDataset(t, "Health", `[{"Entity": "France", "Value": 5}]`))
	if v := r.Value("Health", "France"); v != 5 {
		t.Errorf("got %v, want 5", v)
	}
	if v := r.Value("Health", "Atlantis"); v != 0 {
		t.Errorf("missing record: got %v, want 0", v)
	}
	if v := r.Value("Education", "France"); v != 0 {
		t.Errorf("missing dataset: got %v, want 0", v)
	}
}

func TestRegistryEntities(t *testing.T) {
	r := data.NewRegistry(geo.Collection{})
	r.SetDataset(loadTestDataset(t, "Health", `[{"Entity": "France", "Value": 5}, {"Entity": "Brazil", "Value": 4}]`))
	r.SetDataset(loadTestDataset(t, "Military", `[{"Entity": "France", "Value": 2}, {"Entity": "Japan", "Value": 1}]`))
	got := r.Entities()
	want := []string{"Brazil", "France", "Japan"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("entities = %v, want %v", got, want)
	}
}

func TestRegistryLoadedCount(t *testing.T) {
	r := data.NewRegistry(geo.Collection{})
	if r.LoadedCount() != 0 {
		t.Error("fresh registry should have no datasets")
	}
	d := loadTestDataset(t, "Health", `[{"Entity": "France", "Value": 5}]`)
	r.SetDataset(d)
	r.SetDataset(d) // replacing the same category does not double count
	if r.LoadedCount() != 1 {
		t.Errorf("loaded = %d, want 1", r.LoadedCount())
	}
}
