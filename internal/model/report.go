package model

// Entry is one direct child of an audited folder.
type Entry struct {
	Name  string
	Path  string
	IsDir bool
}

// FileReport groups one folder's direct children by category. Buckets keep
// directory-listing order; the report is rebuilt for every audit and
// discarded after the folder's conversion step.
type FileReport struct {
	Folder  string
	Game    []Entry
	Save    []Entry
	Ignore  []Entry
	Unknown []Entry
}

// File places an entry into the bucket for the given category.
func (r *FileReport) File(cat Category, e Entry) {
	switch cat {
	case CategoryGame:
		r.Game = append(r.Game, e)
	case CategorySave:
		r.Save = append(r.Save, e)
	case CategoryIgnore:
		r.Ignore = append(r.Ignore, e)
	default:
		r.Unknown = append(r.Unknown, e)
	}
}

// Bucket returns the entries filed under a category.
func (r *FileReport) Bucket(cat Category) []Entry {
	switch cat {
	case CategoryGame:
		return r.Game
	case CategorySave:
		return r.Save
	case CategoryIgnore:
		return r.Ignore
	}
	return r.Unknown
}

// Names returns the entry names in a bucket, in listing order.
func (r *FileReport) Names(cat Category) []string {
	bucket := r.Bucket(cat)
	names := make([]string, len(bucket))
	for i, e := range bucket {
		names[i] = e.Name
	}
	return names
}
