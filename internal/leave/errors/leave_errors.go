package leaveerrors

import (
	"net/http"

	"github.com/deployappsa/absensi/internal/shared/apperror"
)

var (
	ErrLeaveNotFound = apperror.New(
		apperror.CodeNotFound,
		"Leave request not found",
		http.StatusNotFound,
	)
	ErrTerminalState = apperror.New(
		apperror.CodeInvalidState,
		"Leave request has already been decided",
		http.StatusBadRequest,
	)
	ErrInvalidRange = apperror.New(
		apperror.CodeInvalidInput,
		"endDate must not be before startDate",
		http.StatusBadRequest,
	)
)
