package errors

import (
	stderrors "errors"
	"strings"

	"github.com/uptrace/bun/driver/pgdriver"
)

const pgUniqueViolation = "23505"

// IsUniqueViolation reports whether err is a Postgres unique-constraint
// violation. Duplicate Match and ThreadParticipant inserts are part of the
// protocol and callers convert them into an idempotent success; any other
// constraint violation stays a hard failure.
func IsUniqueViolation(err error) bool {
	var pgErr pgdriver.Error
	if stderrors.As(err, &pgErr) {
		return pgErr.Field('C') == pgUniqueViolation
	}
	// some wrapping layers flatten the driver error to its message
	return err != nil && strings.Contains(err.Error(), "SQLSTATE="+pgUniqueViolation)
}

// IsConstraintViolation reports any integrity-constraint violation (class 23).
func IsConstraintViolation(err error) bool {
	var pgErr pgdriver.Error
	if stderrors.As(err, &pgErr) {
		return pgErr.IntegrityViolation()
	}
	return false
}
