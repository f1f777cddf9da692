// ABOUTME: RecipeFilter is the sparse filter specification for catalog listing
// ABOUTME: Zero-valued fields impose no constraint
package models

// RecipeFilter narrows a catalog listing. All supplied fields must match for
// a recipe to be included; absent fields are ignored.
type RecipeFilter struct {
	Category   string
	MaxTime    *int
	Difficulty string
	Search     string
}

// IsZero reports whether the filter imposes no constraints at all.
func (f RecipeFilter) IsZero() bool {
	return f.Category == "" && f.MaxTime == nil && f.Difficulty == "" && f.Search == ""
}
