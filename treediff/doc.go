// Package treediff computes structural diffs of document trees.
//
// A diff is itself a tree mirroring the compared documents, with each
// changed value replaced by an edit record holding the old value under
// "-" and the new one under "+". Diff trees serialize like any other
// tree, so they can be stored or printed with jsontext; Render prints
// them one edit per path with optional color.
package treediff
