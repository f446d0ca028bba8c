package puncherrors

import (
	"net/http"

	"github.com/Netosantos999/controle-ponto-app/internal/shared/apperror"
)

var (
	ErrPunchNotFound = apperror.New(
		apperror.CodeNotFound,
		"Registro de ponto não encontrado",
		http.StatusNotFound,
	)
	ErrDuplicatePunch = apperror.New(
		apperror.CodeConflict,
		"Registro duplicado: aguarde ao menos 60 segundos entre batidas",
		http.StatusConflict,
	)
	ErrInvalidAction = apperror.New(
		apperror.CodeInvalidInput,
		"Ação inválida: use ENTRADA, PAUSA, RETORNO ou SAIDA",
		http.StatusBadRequest,
	)
	ErrInvalidPunchDate = apperror.New(
		apperror.CodeInvalidInput,
		"Data inválida: use o formato AAAA-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidPunchTime = apperror.New(
		apperror.CodeInvalidInput,
		"Hora inválida: use o formato HH:MM",
		http.StatusBadRequest,
	)
	ErrInvalidPunchID = apperror.New(
		apperror.CodeInvalidInput,
		"ID de registro inválido",
		http.StatusBadRequest,
	)
)
