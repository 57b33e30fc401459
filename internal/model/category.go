// Package model defines the core domain types for disc-image classification
// and conversion.
package model

// Category classifies a directory entry by what the converter pipeline
// should do with it.
type Category string

const (
	// CategoryGame marks source disc-image files consumed by the converter.
	CategoryGame Category = "game"
	// CategorySave marks persistent-state files that must survive conversion.
	CategorySave Category = "save"
	// CategoryIgnore marks files the pipeline leaves untouched.
	CategoryIgnore Category = "ignore"
	// CategoryUnknown is a transient classification pending user resolution.
	// It is never persisted to the taxonomy document.
	CategoryUnknown Category = "unknown"
)

// PersistentCategories lists the categories that may appear in the taxonomy
// document, in classification priority order.
var PersistentCategories = []Category{CategoryGame, CategorySave, CategoryIgnore}

// Valid reports whether c is one of the known category values.
func (c Category) Valid() bool {
	switch c {
	case CategoryGame, CategorySave, CategoryIgnore, CategoryUnknown:
		return true
	}
	return false
}

// Persistent reports whether c may be stored in the taxonomy document.
func (c Category) Persistent() bool {
	return c == CategoryGame || c == CategorySave || c == CategoryIgnore
}

// ParseCategory maps a user-supplied token to a persistent category.
// It accepts full names and single-letter shortcuts; anything unrecognized
// maps to CategoryIgnore, mirroring the interactive default.
func ParseCategory(s string) Category {
	switch s {
	case "g", "game":
		return CategoryGame
	case "s", "save":
		return CategorySave
	case "i", "ignore":
		return CategoryIgnore
	}
	return CategoryIgnore
}
