package domain

// User is the acting user of an authoring session.
type User struct {
	ID         string
	Name       string
	Position   string
	Department string
}

// DirectoryEntry is an opaque record from the directory service.
type DirectoryEntry struct {
	ID         string
	Name       string
	Attributes map[string]string
}
