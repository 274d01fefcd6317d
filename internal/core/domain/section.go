package domain

// Section represents a single statute section within a legal code.
// Sections are owned by the metadata store and are read-only to the
// search core.
type Section struct {
	// Corpus is the legal code this section belongs to (e.g. "ipc").
	Corpus string

	// Number is the section number. Kept as a string to handle
	// suffixed numbering such as "29A" or "304B".
	Number string

	// Title is the short heading of the section.
	Title string

	// Description is the full text of the section.
	Description string

	// Ordinal is the stable position of the section within its
	// corpus's canonical ordering. It is unique per corpus and is the
	// join key between section metadata and the vector index.
	Ordinal int
}

// Match represents a scored search hit for a section.
// Matches are created per query and never persisted.
type Match struct {
	// Corpus identifies the legal code the hit came from.
	Corpus string `json:"corpus"`

	// Number is the matched section's number.
	Number string `json:"section"`

	// Title is the matched section's heading.
	Title string `json:"title"`

	// Description is the matched section's full text.
	Description string `json:"description"`

	// Score is the cosine similarity of the query to the section,
	// higher is better. For normalised text embeddings it falls in
	// [0, 1] in practice.
	Score float64 `json:"score"`

	// Ordinal is the matched section's position within its corpus.
	Ordinal int `json:"-"`
}
