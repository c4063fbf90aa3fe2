package hints

// Error types reported in Context.ErrorType.
const (
	ErrorOutOfRange = "out_of_range"
	ErrorValidation = "validation"
	ErrorCorrupted  = "corrupted"
)

// Shelf returns a registry with the shelf providers: onboarding for an
// empty library, a next step after success and recovery after failure.
func Shelf(limit int) *Registry {
	return NewRegistry(limit, Onboarding, NextStep, Recovery)
}

// Onboarding suggests adding a book when the library is empty.
func Onboarding(ctx Context) []Hint {
	if !ctx.Succeeded || ctx.Books > 0 {
		return nil
	}
	switch ctx.Command {
	case "list", "stats", "search", "remove", "toggle":
		return []Hint{{
			Message: "Add your first book",
			Command: `shelf add --title "Dune" --author "Frank Herbert" --year 1965 --genre Science`,
		}}
	}
	return nil
}

// NextStep suggests a follow-up after a successful command.
func NextStep(ctx Context) []Hint {
	if !ctx.Succeeded {
		return nil
	}
	switch {
	case ctx.Command == "add" && ctx.Books == 1:
		return []Hint{{Message: "See your library", Command: "shelf list"}}
	case ctx.Command == "search" && ctx.Matches == 0 && ctx.Books > 0:
		return []Hint{{Message: "Try another field", Command: "shelf search TERM --by author"}}
	case ctx.Command == "list" && ctx.Books >= 5:
		return []Hint{{Message: "See statistics about your reading", Command: "shelf stats --charts"}}
	}
	return nil
}

// Recovery explains how to recover from a failed command.
func Recovery(ctx Context) []Hint {
	if ctx.Succeeded {
		return nil
	}
	switch ctx.ErrorType {
	case ErrorOutOfRange:
		return []Hint{{Message: "Positions are the # column of the list", Command: "shelf list"}}
	case ErrorValidation:
		return []Hint{{Message: "Title and author are required and the year cannot be in the future"}}
	case ErrorCorrupted:
		return []Hint{{Message: "The library file could not be read and was reset to an empty library"}}
	}
	return nil
}
