package card

import (
	"fmt"

	"github.com/thenoetrevino/quadro/internal/models"
)

// Card-related validation errors. All of them match models.ErrValidation.
var (
	ErrEmptyTitle         = fmt.Errorf("%w: card title cannot be empty", models.ErrValidation)
	ErrTitleTooLong       = fmt.Errorf("%w: card title cannot exceed %d characters", models.ErrValidation, MaxTitleLength)
	ErrEmptyDescription   = fmt.Errorf("%w: card description cannot be empty", models.ErrValidation)
	ErrEmptyReason        = fmt.Errorf("%w: reason cannot be empty", models.ErrValidation)
	ErrInvalidCardID      = fmt.Errorf("%w: invalid card ID", models.ErrValidation)
	ErrInvalidColumnID    = fmt.Errorf("%w: invalid column ID", models.ErrValidation)
	ErrNotInitialColumn   = fmt.Errorf("%w: cards can only be created in the INITIAL column", models.ErrValidation)
	ErrMissingColumnsInfo = fmt.Errorf("%w: board columns are required", models.ErrValidation)
)

// MaxTitleLength is the longest accepted card title, in characters
const MaxTitleLength = 255
