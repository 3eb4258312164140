package timelineerrors

import (
	"net/http"

	"github.com/deployappsa/absensi/internal/shared/apperror"
)

var (
	ErrPostNotFound = apperror.New(
		apperror.CodeNotFound,
		"Timeline post not found",
		http.StatusNotFound,
	)
	ErrAnnouncementForbidden = apperror.New(
		apperror.CodeForbidden,
		"Only admins can publish announcements",
		http.StatusForbidden,
	)
)
