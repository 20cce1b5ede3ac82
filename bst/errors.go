package bst

import "github.com/pkg/errors"

var (
	// ErrEmptyTree is returned by queries that need at least one element.
	ErrEmptyTree = errors.New("bst: empty tree")
	// ErrRankOutOfRange is returned by KthMin and KthMax when k is not in
	// [1, Size()]. The returned error wraps it with the rank and the size.
	ErrRankOutOfRange = errors.New("bst: rank out of range")
)
