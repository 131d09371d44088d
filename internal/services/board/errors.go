package board

import (
	"fmt"

	"github.com/thenoetrevino/quadro/internal/models"
)

// MaxNameLength is the longest accepted board or column name, in characters
const MaxNameLength = 50

// Validation errors for the board service. All of them match models.ErrValidation.
var (
	ErrEmptyName       = fmt.Errorf("%w: board name cannot be empty", models.ErrValidation)
	ErrNameTooLong     = fmt.Errorf("%w: names cannot exceed %d characters", models.ErrValidation, MaxNameLength)
	ErrEmptyColumnName = fmt.Errorf("%w: column name cannot be empty", models.ErrValidation)
	ErrInvalidBoardID  = fmt.Errorf("%w: invalid board ID", models.ErrValidation)
	ErrInvalidColumnID = fmt.Errorf("%w: invalid column ID", models.ErrValidation)
)
