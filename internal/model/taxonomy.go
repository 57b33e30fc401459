package model

// Taxonomy maps each persistent category to the ordered list of file
// extensions learned for it. Extensions are stored lower-cased with a
// leading dot and may be compound (".state.auto").
//
// The data model does not enforce exclusivity across categories; Lookup
// resolves duplicates by fixed priority order game, save, ignore.
type Taxonomy struct {
	Game   []string `yaml:"game"`
	Save   []string `yaml:"save"`
	Ignore []string `yaml:"ignore"`
}

// Extensions returns the extension list for a persistent category.
func (t *Taxonomy) Extensions(cat Category) []string {
	switch cat {
	case CategoryGame:
		return t.Game
	case CategorySave:
		return t.Save
	case CategoryIgnore:
		return t.Ignore
	}
	return nil
}

// Lookup resolves a file name to a category. It checks the compound suffix
// against each category in priority order and returns CategoryUnknown when
// no category claims the extension.
func (t *Taxonomy) Lookup(name string) Category {
	ext := CompoundSuffix(name)
	if ext == "" {
		ext = FinalSuffix(name)
	}

	for _, cat := range PersistentCategories {
		for _, known := range t.Extensions(cat) {
			if known == ext {
				return cat
			}
		}
	}
	return CategoryUnknown
}

// Add appends an extension to a persistent category. It is a no-op when the
// category already contains the extension, so repeated learning of the same
// suffix never grows the document.
func (t *Taxonomy) Add(cat Category, ext string) {
	if !cat.Persistent() || ext == "" {
		return
	}
	for _, known := range t.Extensions(cat) {
		if known == ext {
			return
		}
	}
	switch cat {
	case CategoryGame:
		t.Game = append(t.Game, ext)
	case CategorySave:
		t.Save = append(t.Save, ext)
	case CategoryIgnore:
		t.Ignore = append(t.Ignore, ext)
	}
}

// Remove deletes an extension from every category it appears in and reports
// whether anything was removed.
func (t *Taxonomy) Remove(ext string) bool {
	removed := false
	filter := func(exts []string) []string {
		out := exts[:0]
		for _, e := range exts {
			if e == ext {
				removed = true
				continue
			}
			out = append(out, e)
		}
		return out
	}
	t.Game = filter(t.Game)
	t.Save = filter(t.Save)
	t.Ignore = filter(t.Ignore)
	return removed
}
