//    AnalogiaGoTrainer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package gen

import (
	"slices"
)

//
// SETS AND SLICES
//

// ToSet - membership map of a slice: the graph builder asks "is this word a core term?" a lot
func ToSet[T comparable](sl []T) map[T]struct{} {
	m := make(map[T]struct{})
	for i := 0; i < len(sl); i++ {
		m[sl[i]] = struct{}{}
	}
	return m
}

// Unique - return only the unique items from a slice
func Unique[T comparable](s []T) []T {
	// can't use slices.Compact because that only looks at consecutive repeats: [a, a, b, a] -> [a, b, a]

	set := ToSet(s)

	var result []T
	for k := range set {
		result = append(result, k)
	}

	return result
}

// SetSubtraction - the items in aa that are not in bb, in aa's order
func SetSubtraction[T comparable](aa []T, bb []T) []T {
	//  NB this is likely SLOW: fine for a one-shot vocabulary diff, be careful looping it 10k times
	// 	aa := []string{"cat", "dog", "bird", "fish"}
	//	bb := []string{"dog", "fish", "goat"}
	//  SetSubtraction(aa, bb)
	//  [cat bird]

	bb = Unique(bb)

	aa = slices.DeleteFunc(aa, func(c T) bool {
		return slices.Contains(bb, c)
	})

	return aa
}

// ChunkSlice - turn a slice into a slice of slices of size N; thanks to https://stackoverflow.com/questions/35179656/slice-chunking-in-go
func ChunkSlice[T any](items []T, size int) (chunks [][]T) {
	for size < len(items) {
		items, chunks = items[size:], append(chunks, items[0:size:size])
	}
	return append(chunks, items)
}
