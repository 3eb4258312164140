package shifterrors

import (
	"net/http"

	"github.com/deployappsa/absensi/internal/shared/apperror"
)

var (
	ErrShiftNotFound = apperror.New(
		apperror.CodeNotFound,
		"Shift not found",
		http.StatusNotFound,
	)
	ErrEmptyShift = apperror.New(
		apperror.CodeInvalidInput,
		"Shift start and end time must differ",
		http.StatusBadRequest,
	)
)
