// iface.go defines the Store interface for dependency injection and testing.
//
// Everything above this package — the capture pipeline in pkg/note, the
// cmd layer — talks to content through Store, never to a concrete
// backend. That keeps the pipeline testable with a tempdir store and
// makes the backend a configuration choice.
package store

// Store is a flat key/value content store: paths in, note bodies out.
// Implementations decide what a path means (a file under a vault
// directory, a row in a database).
type Store interface {
	// Read returns the content at path. Reading a missing path is an error.
	Read(path string) (string, error)

	// Exists reports whether path holds content.
	Exists(path string) (bool, error)

	// Write stores content at path, replacing any previous content.
	// Duplicate policy belongs to the caller; Write does not guard.
	Write(path, content string) error

	// Close releases any resources held by the store.
	Close() error
}

// Compile-time checks that both backends implement Store.
var (
	_ Store = (*FS)(nil)
	_ Store = (*SQLite)(nil)
)
