// Package books holds the shelf data model and the catalog operations
// that mutate it.
//
// A Library owns the ordered in-memory collection and a Persister. Every
// mutation (Add, Remove, ToggleRead) writes the whole collection through
// the Persister before it becomes visible; a failed write leaves the
// collection exactly as it was.
//
// Positions are 0-based and refer to the current ordering, so removing a
// book shifts every later position down by one.
//
//	lib, err := books.Open(ctx, store.NewFile("library.json"))
//	if errors.IsCorrupted(err) {
//		// the document was reset; lib is empty and usable
//	}
//	book, err := lib.Add(ctx, "Dune", "Frank Herbert", 1965, books.Science, true)
package books
