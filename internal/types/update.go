package types

// UpdateResult is the outcome of rewriting a resume to better match a job.
// UpdatedSections is a category-keyed copy; the input resume is never mutated.
type UpdateResult struct {
	UpdatedSections map[Category]*Section `json:"updated_sections"`
	ChangesMade     []string              `json:"changes_made"`
	KeywordsAdded   []string              `json:"keywords_added"`
}
