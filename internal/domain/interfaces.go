package domain

// Files reads source documents and writes rendered artifacts.
type Files interface {
	ReadText(path string) (string, error)
	WriteText(path string, data []byte) error
}

// Archiver bundles named text entries into a single binary artifact at path.
// A failed bundle must leave no partial artifact behind.
type Archiver interface {
	Bundle(path string, entries []Entry) error
}

// Notifier receives the human-readable count summary after classification,
// before the bundle is written.
type Notifier interface {
	Notify(summary string)
}

// Comparer runs a full compare-and-export operation.
type Comparer interface {
	Run(req CompareRequest) (Classification, error)
}
