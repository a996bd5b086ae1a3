package handlers

import (
	"context"
	"errors"
	"net/http"

	"checkmaster/internal/domain/checklist"
	"checkmaster/internal/domain/entities"
	"checkmaster/internal/usecase"
	"checkmaster/internal/usecase/interfaces"
	"checkmaster/pkg"
)

var errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)

// mapCommonError covers the errors every handler can see.
func mapCommonError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, interfaces.ErrPersistenceFailure):
		return pkg.NewDomainError("STORE_UNAVAILABLE", "Não foi possível acessar os dados salvos", err, http.StatusServiceUnavailable)
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return pkg.NewDomainError("REQUEST_TIMEOUT", "A operação demorou demais", err, http.StatusGatewayTimeout)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// mapBindError maps a request decoding failure. An unknown field type inside
// a template body keeps its own code.
func mapBindError(err error) *pkg.AppError {
	if errors.Is(err, entities.ErrInvalidFieldType) {
		return mapTemplateError(err)
	}
	return pkg.NewDomainError(errInvalidRequest.Code, errInvalidRequest.Message, err, http.StatusBadRequest)
}

// mapTemplateError maps template model, builder and run errors.
func mapTemplateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, entities.ErrInvalidFieldType):
		return pkg.NewDomainError("INVALID_FIELD_TYPE", "Tipo de campo inválido", err, http.StatusBadRequest)
	case errors.Is(err, checklist.ErrIndexOutOfRange):
		return pkg.NewDomainError("INDEX_OUT_OF_RANGE", "Posição inexistente no checklist", err, http.StatusBadRequest)
	case errors.Is(err, checklist.ErrNotSelectableField):
		return pkg.NewDomainError("NOT_SELECTABLE_FIELD", "O campo não aceita opções", err, http.StatusBadRequest)
	case errors.Is(err, checklist.ErrMissingTemplateID),
		errors.Is(err, checklist.ErrMissingFieldID),
		errors.Is(err, checklist.ErrDuplicateFieldID),
		errors.Is(err, usecase.ErrInvalidTemplateID),
		errors.Is(err, usecase.ErrMissingTemplate),
		errors.Is(err, usecase.ErrUnknownBuilderAction):
		return pkg.NewDomainError("INVALID_TEMPLATE", "Checklist inválido", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTemplateNotFound):
		return pkg.NewDomainErrorSimple("TEMPLATE_NOT_FOUND", "Checklist não encontrado", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRunNotReady):
		return pkg.NewDomainErrorSimple("INSPECTION_NOT_READY", "Preencha o cliente e os campos obrigatórios", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidOrderID):
		return pkg.NewDomainErrorSimple("INVALID_ORDER_ID", "Invalid order id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Ordem de serviço não encontrada", http.StatusNotFound)
	default:
		return mapCommonError(err)
	}
}
