package persistence

import (
	"errors"
	"strings"

	"github.com/pwms/backend/internal/domain/shared"
	"gorm.io/gorm"
)

var (
	uniqueMarkers     = []string{"UNIQUE constraint failed", "duplicate key value"}
	foreignKeyMarkers = []string{"FOREIGN KEY constraint failed", "violates foreign key constraint"}
	constraintMarkers = []string{"constraint failed", "violates"}
)

// translateError maps storage errors onto domain errors. Constraint
// violations keep the engine's message.
func translateError(db *gorm.DB, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return shared.ErrNotFound
	}

	classified := err
	if t, ok := db.Dialector.(gorm.ErrorTranslator); ok {
		classified = t.Translate(err)
	}

	msg := err.Error()
	switch {
	case errors.Is(classified, gorm.ErrDuplicatedKey) || containsAny(msg, uniqueMarkers):
		return shared.NewConstraintError(shared.CodeAlreadyExists, err)
	case errors.Is(classified, gorm.ErrForeignKeyViolated) || containsAny(msg, foreignKeyMarkers):
		return shared.NewConstraintError(shared.CodeForeignKeyViolation, err)
	case containsAny(msg, constraintMarkers):
		return shared.NewConstraintError(shared.CodeConstraint, err)
	}
	return err
}

// IsConstraintViolation reports whether err is a constraint rejection from
// either supported engine.
func IsConstraintViolation(err error) bool {
	if err == nil {
		return false
	}
	var ce *shared.ConstraintError
	if errors.As(err, &ce) {
		return true
	}
	return containsAny(err.Error(), constraintMarkers)
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}
