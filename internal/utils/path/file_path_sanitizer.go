package pathutils

// FilePathSanitizer normalizes configured file paths before they reach the migrator.
type FilePathSanitizer struct {
	homeExpander *HomeExpander
}

// NewFilePathSanitizer constructs a FilePathSanitizer using the operating system home directory.
func NewFilePathSanitizer() *FilePathSanitizer {
	return NewFilePathSanitizerWithExpander(nil)
}

// NewFilePathSanitizerWithExpander constructs a FilePathSanitizer using the provided expander.
func NewFilePathSanitizerWithExpander(homeExpander *HomeExpander) *FilePathSanitizer {
	if homeExpander == nil {
		homeExpander = NewHomeExpander()
	}
	return &FilePathSanitizer{homeExpander: homeExpander}
}

// Sanitize expands home shortcuts and otherwise keeps every entry verbatim.
// Blank entries and duplicates stay in the list so they are still counted; relative paths stay
// relative to the working directory.
func (sanitizer *FilePathSanitizer) Sanitize(candidatePaths []string) []string {
	sanitizedPaths := make([]string, 0, len(candidatePaths))
	for _, candidatePath := range candidatePaths {
		sanitizedPaths = append(sanitizedPaths, sanitizer.homeExpander.Expand(candidatePath))
	}
	return sanitizedPaths
}
