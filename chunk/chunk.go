package chunk

import (
	"github.com/jsphweid/pianoroll/constants"
	"github.com/jsphweid/pianoroll/model"
	"github.com/jsphweid/pianoroll/util"
)

func size(k int) int {
	if k <= 0 {
		return constants.ChunkSize
	}
	return k
}

// Count is the number of chunks a sequence of n notes splits into.
func Count(n, k int) int {
	return util.CeilDiv(n, size(k))
}

// At returns chunk i of seq. Past the end it returns an empty chunk with
// that index, the grid still shows a roll for it.
func At(seq model.NoteSequence, k, i int) model.Chunk {
	k = size(k)
	c := model.Chunk{Index: i}
	if i < 0 {
		return c
	}
	start := i * k
	if start >= len(seq) {
		return c
	}
	end := util.Min(start+k, len(seq))
	c.Notes = seq[start:end:end]
	return c
}

// Partition splits seq into consecutive chunks of k notes; only the last
// one may be short.
func Partition(seq model.NoteSequence, k int) []model.Chunk {
	n := Count(len(seq), k)
	res := make([]model.Chunk, 0, n)
	for i := 0; i < n; i++ {
		res = append(res, At(seq, k, i))
	}
	return res
}
