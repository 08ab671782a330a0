package galaxy

import (
	"errors"
	"fmt"

	"github.com/san-kum/rotcurve/internal/fdft"
)

var (
	ErrUnknownGalaxy   = errors.New("galaxy: unknown galaxy")
	ErrDuplicateGalaxy = errors.New("galaxy: duplicate galaxy")
	ErrEmptyName       = errors.New("galaxy: empty name")
)

// Catalog is an ordered, name-indexed set of galaxies. Iteration order is
// insertion order, which is also the chart drawing order.
type Catalog struct {
	order  []string
	byName map[string]Galaxy
}

func NewCatalog(gs ...Galaxy) (*Catalog, error) {
	c := &Catalog{
		order:  make([]string, 0, len(gs)),
		byName: make(map[string]Galaxy, len(gs)),
	}
	for _, g := range gs {
		if err := c.Add(g); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *Catalog) Add(g Galaxy) error {
	if g.Name == "" {
		return ErrEmptyName
	}
	if _, ok := c.byName[g.Name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateGalaxy, g.Name)
	}
	if err := g.Params.Validate(); err != nil {
		return fmt.Errorf("galaxy %s: %w", g.Name, err)
	}
	c.order = append(c.order, g.Name)
	c.byName[g.Name] = g
	return nil
}

func (c *Catalog) Get(name string) (Galaxy, error) {
	g, ok := c.byName[name]
	if !ok {
		return Galaxy{}, fmt.Errorf("%w: %s", ErrUnknownGalaxy, name)
	}
	return g, nil
}

func (c *Catalog) Names() []string {
	names := make([]string, len(c.order))
	copy(names, c.order)
	return names
}

func (c *Catalog) All() []Galaxy {
	out := make([]Galaxy, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.byName[name])
	}
	return out
}

func (c *Catalog) Len() int {
	return len(c.order)
}

// Params returns a copy of the named galaxy's model parameters.
func (c *Catalog) Params(name string) (fdft.Params, error) {
	g, err := c.Get(name)
	if err != nil {
		return fdft.Params{}, err
	}
	return g.Params, nil
}
