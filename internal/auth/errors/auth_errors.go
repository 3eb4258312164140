package autherrors

import (
	"net/http"

	"github.com/deployappsa/absensi/internal/shared/apperror"
)

// ErrInvalidCredentials dipakai untuk username tak dikenal MAUPUN password
// salah, supaya response tidak membocorkan akun mana yang terdaftar.
var ErrInvalidCredentials = apperror.New(
	apperror.CodeInvalidCredentials,
	"Invalid username or password",
	http.StatusUnauthorized,
)
