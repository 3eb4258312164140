package departmenterrors

import (
	"net/http"

	"github.com/deployappsa/absensi/internal/shared/apperror"
)

var ErrNameTaken = apperror.New(
	apperror.CodeConflict,
	"Department name is already taken",
	http.StatusConflict,
)
