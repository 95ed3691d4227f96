package usecase

import (
	"errors"
	"strings"

	"prenatal-care-api/pkg/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrEmailAlreadyExists = apperror.Conflict("email already exists")
	ErrInvalidCredentials = apperror.New(apperror.KindUnauthenticated, "invalid email or password")
	ErrAccountInactive    = apperror.New(apperror.KindForbidden, "account is disabled")
	ErrInvalidToken       = apperror.New(apperror.KindUnauthenticated, "invalid or expired token")
	ErrTokenRevoked       = apperror.New(apperror.KindUnauthenticated, "token has been revoked")
	ErrUserNotFound       = apperror.NotFound("user not found")

	ErrPatientNotFound      = apperror.NotFound("patient not found")
	ErrNationalIDExists     = apperror.Conflict("national id already registered")
	ErrVisitNotFound        = apperror.NotFound("visit not found")
	ErrExamNotFound         = apperror.NotFound("exam not found")
	ErrInvalidWeight        = apperror.Validation("weight must be greater than zero")
	ErrInvalidUterineHeight = apperror.Validation("uterine_height must be greater than zero")

	ErrNoPortalAccount      = apperror.New(apperror.KindNoLinkedPatient, "no patient is linked to this account")
	ErrPortalAccountExists  = apperror.Conflict("this account is already linked to a patient")
	ErrPatientAlreadyLinked = apperror.Conflict("patient is already linked to another account")
	ErrAppointmentNotFound  = apperror.NotFound("appointment not found")
	ErrLogEntryNotFound     = apperror.NotFound("log entry not found")
	ErrReminderNotFound     = apperror.NotFound("reminder not found")

	ErrAuditLogNotFound = apperror.NotFound("audit log not found")

	ErrInvalidDateFormat = apperror.Validation("invalid date format, use YYYY-MM-DD")
	ErrInvalidDateRange  = apperror.Validation("start date must not be after end date")
	ErrInvalidLookahead  = apperror.Validation("days must be zero or greater")
)

// isDuplicateKeyError reports whether err is a unique constraint violation. When
// constraintName is set, a PostgreSQL error must name a matching constraint.
func isDuplicateKeyError(err error, constraintName string) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code != "23505" {
			return false
		}
		return constraintName == "" ||
			strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName))
	}
	return false
}

// isForeignKeyError checks if the error is a PostgreSQL foreign key violation
func isForeignKeyError(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23503 = foreign_key_violation
		return pgErr.Code == "23503"
	}
	return false
}
