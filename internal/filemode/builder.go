package filemode

// Builder accumulates capabilities for a Mode.
type Builder struct {
	mode Mode
}

// New returns a builder with no capabilities.
func New() *Builder {
	return &Builder{}
}

// Read allows the file to be read.
func (b *Builder) Read() *Builder {
	b.mode |= Read
	return b
}

// Write allows the file to be written.
func (b *Builder) Write() *Builder {
	b.mode |= Write
	return b
}

// Create allows the file to be created when it does not exist.
func (b *Builder) Create() *Builder {
	b.mode |= Create
	return b
}

// Truncate empties the file when it is opened.
func (b *Builder) Truncate() *Builder {
	b.mode |= Truncate
	return b
}

// Build returns the accumulated mode.
func (b *Builder) Build() Mode {
	return b.mode
}
