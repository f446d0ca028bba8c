package holidayerrors

import (
	"net/http"

	"github.com/Netosantos999/controle-ponto-app/internal/shared/apperror"
)

var (
	ErrHolidayNotFound = apperror.New(
		apperror.CodeNotFound,
		"Holiday entry not found",
		http.StatusNotFound,
	)
	ErrHolidayAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"A holiday entry already exists for this date",
		http.StatusConflict,
	)
	ErrInvalidHolidayDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid holiday date, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
)
