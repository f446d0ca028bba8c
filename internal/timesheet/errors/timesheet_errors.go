package timesheeterrors

import (
	"net/http"

	"github.com/Netosantos999/controle-ponto-app/internal/shared/apperror"
)

var (
	ErrWatchmanExempt = apperror.New(
		apperror.CodeExempt,
		"Vigias não participam do cálculo de horas extras",
		http.StatusUnprocessableEntity,
	)
	ErrInvalidReportRange = apperror.New(
		apperror.CodeInvalidInput,
		"Período inválido: use datas AAAA-MM-DD com início anterior ao fim",
		http.StatusBadRequest,
	)
	ErrMixedEmployees = apperror.New(
		apperror.CodeInvalidState,
		"O cálculo recebeu batidas de mais de um funcionário",
		http.StatusUnprocessableEntity,
	)
)
