package namelist

import "io"

// Node describes a single node in the name list.
type Node interface {
	// Name returns the name held by the node.
	Name() string
	// Next returns the node that follows this one, or nil
	// if this node is the tail of the list.
	Next() Node
}

// NameList describes a list of names kept in insertion order.
// The list is a standalone in-process component; it is used by
// a single caller at a time and has no failure conditions of
// its own.
type NameList interface {
	// Add appends a new name at the end of the list. Any name is
	// accepted, the empty string and duplicates included, so Add
	// has no failure path.
	Add(name string)
	// Remove unlinks the first node whose name matches the given
	// name exactly and reports whether a match was found. A miss,
	// removing from an empty list included, is a normal outcome
	// and leaves the list untouched.
	Remove(name string) bool
	// Names returns every name in the list from head to tail.
	Names() []string
	// Display writes the list to the given writer in head to tail
	// order, one name per line, or an empty-list message when the
	// list holds no names.
	Display(w io.Writer)
}
