package flex

// contractError marks a programming-error panic raised when a caller
// violates one of the tree invariants of spec.md §7: inserting a node as
// its own child, cycles, or operating on a freed node. These are not recoverable data
// errors — they indicate a bug in the caller, so this engine panics
// rather than threading an error return through every tree operation,
// matching the teacher's own FlexTree/FlexNode methods (which assume a
// well-formed tree and never validate it defensively).
type contractError string

func (e contractError) Error() string { return "flex: " + string(e) }

func errContract(msg string) contractError {
	return contractError(msg)
}
