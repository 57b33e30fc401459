package taxonomy

import "github.com/romforge/chdflow/internal/model"

// DefaultTaxonomy returns the built-in extension taxonomy used when no
// persisted document exists yet. The lists cover the common disc-image,
// emulator-save, and scraper-noise extensions.
func DefaultTaxonomy() *model.Taxonomy {
	return &model.Taxonomy{
		Game: []string{
			".iso", ".cue", ".bin", ".cdi", ".gdi",
			".mdf", ".mds", ".ccd", ".img", ".sub",
		},
		Save: []string{
			".state", ".state.auto", ".srm", ".bcr",
			".bkr", ".smpc", ".vmu",
		},
		Ignore: []string{
			".url", ".txt", ".pdf", ".jpg", ".png", ".xml", ".db",
		},
	}
}
