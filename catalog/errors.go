package catalog

// These errors are index-authoring errors, not internal errors.

// IncompletePattern occurs when an entry is missing its name or slug.
type IncompletePattern struct {
	Pattern *Pattern
}

func (e *IncompletePattern) Error() string {
	return `pattern entry (name "` + e.Pattern.Name + `", slug "` + e.Pattern.Slug + `") missing name or slug`
}

// UnknownCategory occurs when an entry's category isn't creational,
// structural, or behavioral.
type UnknownCategory struct {
	Pattern *Pattern
}

func (e *UnknownCategory) Error() string {
	return `pattern "` + e.Pattern.Slug + `" has unknown category "` + e.Pattern.Category + `"`
}

// UnknownStatus occurs when an entry's status isn't implemented or
// planned.
type UnknownStatus struct {
	Pattern *Pattern
}

func (e *UnknownStatus) Error() string {
	return `pattern "` + e.Pattern.Slug + `" has unknown status "` + e.Pattern.Status + `"`
}

// DuplicateSlug occurs when two entries claim the same slug.
type DuplicateSlug struct {
	Slug string
}

func (e *DuplicateSlug) Error() string {
	return `duplicate pattern slug "` + e.Slug + `"`
}
