package model

// Chunk is a contiguous slice of a NoteSequence rendered as one roll.
// Index is its position in the partition.
type Chunk struct {
	Index int
	Notes []Note
}

func (c Chunk) Len() int {
	return len(c.Notes)
}

func (c Chunk) Empty() bool {
	return len(c.Notes) == 0
}
