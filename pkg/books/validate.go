package books

import (
	"fmt"
	"strings"
	"time"

	"github.com/agentstation/shelf/pkg/constants"
	"github.com/agentstation/shelf/pkg/errors"
)

// ValidateNew checks the input of a book about to be added: title and
// author must not be blank and the year must lie between
// constants.MinPublicationYear and the current year.
func ValidateNew(title, author string, year int, now time.Time) error {
	if strings.TrimSpace(title) == "" {
		return errors.NewValidationError("title", title, "cannot be empty")
	}
	if strings.TrimSpace(author) == "" {
		return errors.NewValidationError("author", author, "cannot be empty")
	}

	maxYear := now.Year()
	if year < constants.MinPublicationYear || year > maxYear {
		return errors.NewValidationError("publication_year", year,
			fmt.Sprintf("must be between %d and %d", constants.MinPublicationYear, maxYear))
	}
	return nil
}
