package repositories

import (
	"errors"
	"regexp"
	"strconv"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"stakegulf-cms/models"
)

const (
	pgUniqueViolation = "23505"
	internalMessage   = "Internal server error."
	// SERIAL columns hold 31 bits.
	serialBits = 31
)

var numericIdentifier = regexp.MustCompile(`^\d+$`)

// isUniqueViolation reports whether err came from a unique constraint.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// translate maps driver errors onto the typed errors the HTTP layer understands.
func translate(err error, notFound, conflict string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return models.ErrorNotFound{Message: notFound}
	case isUniqueViolation(err):
		return models.ErrorConflict{Message: conflict}
	default:
		return models.ErrorInternalServer{Message: internalMessage, Err: err}
	}
}

// byIdentifier selects on id when the identifier is all digits, otherwise on
// slug. An id outside the SERIAL range cannot exist and yields
// gorm.ErrRecordNotFound without a query.
func byIdentifier(db *gorm.DB, table, identifier string) (*gorm.DB, error) {
	if !numericIdentifier.MatchString(identifier) {
		return db.Where(table+".slug = ?", identifier), nil
	}
	id, err := strconv.ParseUint(identifier, 10, serialBits)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	return db.Where(table+".id = ?", id), nil
}
