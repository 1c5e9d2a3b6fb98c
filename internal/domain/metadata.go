package domain

// Metadata is free-form key/value data attached to records. It is stored as
// jsonb and validated only for well-formedness (it must decode as a JSON
// object), never for shape.
type Metadata map[string]any
