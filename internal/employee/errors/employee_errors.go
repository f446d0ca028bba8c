package employeeerrors

import (
	"net/http"

	"github.com/Netosantos999/controle-ponto-app/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Funcionário não encontrado",
		http.StatusNotFound,
	)
	ErrEmployeeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Já existe um funcionário com esse nome",
		http.StatusConflict,
	)
	ErrInvalidEmployeeName = apperror.New(
		apperror.CodeInvalidInput,
		"Nome inválido: caracteres especiais não são permitidos",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"ID de funcionário inválido",
		http.StatusBadRequest,
	)
)
