package user

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	usererrors "github.com/deployappsa/absensi/internal/user/errors"
)

const pgUniqueViolation = "23505"

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return usererrors.ErrUsernameTaken
	}
	if errors.Is(err, errDuplicateUsername) {
		return usererrors.ErrUsernameTaken
	}
	return err
}
