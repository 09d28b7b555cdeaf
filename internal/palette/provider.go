package palette

// Provider contributes palettes on top of the built-in table. It is consulted
// once per snapshot, so implementations should be cheap.
type Provider interface {
	Palettes() []Palette
}

// ProviderFunc adapts a function to Provider.
type ProviderFunc func() []Palette

// Palettes implements Provider.
func (f ProviderFunc) Palettes() []Palette {
	if f == nil {
		return nil
	}
	return f()
}

// Static is a fixed list of palettes.
type Static []Palette

// Palettes implements Provider.
func (s Static) Palettes() []Palette {
	out := make([]Palette, len(s))
	copy(out, s)
	return out
}

// Chain concatenates providers; later entries win when keys collide.
type Chain []Provider

// Palettes implements Provider.
func (c Chain) Palettes() []Palette {
	var out []Palette
	for _, p := range c {
		if p == nil {
			continue
		}
		out = append(out, p.Palettes()...)
	}
	return out
}
