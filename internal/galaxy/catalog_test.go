package galaxy

import (
	"errors"
	"testing"

	"github.com/san-kum/rotcurve/internal/fdft"
)

func TestDefaultCatalogOrder(t *testing.T) {
	c := DefaultCatalog()

	want := []string{"DF44", "NGC 1277", "Milky Way"}
	got := c.Names()
	if len(got) != len(want) {
		t.Fatalf("expected %d galaxies, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestCatalogGet(t *testing.T) {
	c := DefaultCatalog()

	g, err := c.Get("NGC 1277")
	if err != nil {
		t.Fatal(err)
	}
	if g.Params.Mass != 1.2e11 || g.Params.Kappa != 0.10 || g.Params.Lambda != 1.5 {
		t.Errorf("unexpected params: %+v", g.Params)
	}
	if g.Color != "#ff6b6b" {
		t.Errorf("expected color #ff6b6b, got %s", g.Color)
	}
	if g.Label.X != 41 || g.Label.Y != 270 {
		t.Errorf("unexpected label position: %+v", g.Label)
	}

	if _, err := c.Get("Andromeda"); !errors.Is(err, ErrUnknownGalaxy) {
		t.Errorf("expected ErrUnknownGalaxy, got %v", err)
	}
}

func TestNewCatalogRejects(t *testing.T) {
	ok := fdft.Params{Mass: 1, Kappa: 0, Lambda: 1}

	tests := []struct {
		name string
		gs   []Galaxy
		want error
	}{
		{"empty name", []Galaxy{{Params: ok}}, ErrEmptyName},
		{"duplicate", []Galaxy{{Name: "A", Params: ok}, {Name: "A", Params: ok}}, ErrDuplicateGalaxy},
		{"bad params", []Galaxy{{Name: "A", Params: fdft.Params{Mass: -1, Lambda: 1}}}, fdft.ErrParameterBounds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewCatalog(tt.gs...); !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestCatalogCopies(t *testing.T) {
	c := DefaultCatalog()

	names := c.Names()
	names[0] = "mutated"
	if c.Names()[0] != "DF44" {
		t.Error("Names exposed internal slice")
	}

	p, err := c.Params("DF44")
	if err != nil {
		t.Fatal(err)
	}
	p.Mass = 0
	if g, _ := c.Get("DF44"); g.Params.Mass != 3e8 {
		t.Error("Params returned a reference to catalog state")
	}
	if c.Len() != 3 || len(c.All()) != 3 {
		t.Errorf("expected 3 galaxies, got %d", c.Len())
	}
}
