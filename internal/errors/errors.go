package errors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	ErrUnauthorized       = NewAppError("UNAUTHORIZED", "Não autorizado", http.StatusUnauthorized)
	ErrBadRequest         = NewAppError("BAD_REQUEST", "Requisição inválida", http.StatusBadRequest)
	ErrTooManyRequests    = NewAppError("RATE_LIMIT_EXCEEDED", "Muitas requisições. Tente novamente em alguns minutos.", http.StatusTooManyRequests)
	ErrIncomeNotFound     = NewAppError("INCOME_NOT_FOUND", "Receita recorrente não encontrada", http.StatusNotFound)
	ErrLoanNotFound       = NewAppError("LOAN_NOT_FOUND", "Empréstimo não encontrado", http.StatusNotFound)
	ErrCreditCardNotFound = NewAppError("CREDIT_CARD_NOT_FOUND", "Cartão de crédito não encontrado", http.StatusNotFound)
	ErrChargeNotFound     = NewAppError("CHARGE_NOT_FOUND", "Lançamento do cartão não encontrado", http.StatusNotFound)
	ErrPurchaseNotFound   = NewAppError("PURCHASE_NOT_FOUND", "Compra parcelada não encontrada", http.StatusNotFound)
	ErrEntryNotFound      = NewAppError("ENTRY_NOT_FOUND", "Lançamento não encontrado", http.StatusNotFound)
	ErrSimulationNotFound = NewAppError("SIMULATION_NOT_FOUND", "Simulação não encontrada", http.StatusNotFound)
	ErrResourceNotOwned   = NewAppError("RESOURCE_NOT_OWNED", "Recurso não pertence ao usuário", http.StatusForbidden)
)

type AppError struct {
	Code       string
	Message    string
	StatusCode int
	Details    map[string]interface{}
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s - %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) WithDetails(details map[string]interface{}) *AppError {
	clone := e.clone()
	if details == nil {
		clone.Details = make(map[string]interface{})
		return clone
	}
	clone.Details = make(map[string]interface{}, len(details))
	for k, v := range details {
		clone.Details[k] = v
	}
	return clone
}

func (e *AppError) WithError(err error) *AppError {
	clone := e.clone()
	clone.Err = err
	return clone
}

func NewAppError(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    make(map[string]interface{}),
	}
}

func WrapError(err error, code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Err:        err,
		Details:    make(map[string]interface{}),
	}
}

func (e *AppError) clone() *AppError {
	if e == nil {
		return nil
	}
	clone := *e
	if e.Details != nil {
		clone.Details = make(map[string]interface{}, len(e.Details))
		for k, v := range e.Details {
			clone.Details[k] = v
		}
	} else {
		clone.Details = make(map[string]interface{})
	}
	return &clone
}

// Is reports whether err carries an AppError with the given code.
func Is(err error, code string) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.Code == code
}

func IsAppError(err error) bool {
	_, ok := AsAppError(err)
	return ok
}

func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

func FromError(err error) *AppError {
	if appErr, ok := AsAppError(err); ok {
		return appErr
	}

	if errors.Is(err, context.Canceled) {
		return WrapError(err, "REQUEST_CANCELED", "Requisição cancelada pelo cliente", http.StatusRequestTimeout)
	}

	return WrapError(err, "UNKNOWN_ERROR", "Erro desconhecido", http.StatusInternalServerError)
}

func NewValidationError(field, message string) *AppError {
	return &AppError{
		Code:       "VALIDATION_ERROR",
		Message:    fmt.Sprintf("%s: %s", translateFieldName(field), message),
		StatusCode: http.StatusBadRequest,
		Details: map[string]interface{}{
			"field": field,
		},
	}
}

func NewDatabaseError(err error) *AppError {
	return WrapError(err, "DATABASE_ERROR", "Erro ao executar operação no banco de dados", http.StatusInternalServerError)
}

func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Code:       "NOT_FOUND",
		Message:    fmt.Sprintf("%s não encontrado", resource),
		StatusCode: http.StatusNotFound,
		Details: map[string]interface{}{
			"resource": resource,
		},
	}
}

func ParseValidationErrors(err error) *AppError {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return ErrBadRequest.WithError(err)
	}

	fieldErrors := make([]map[string]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		translatedField := translateFieldName(fieldErr.Field())
		fieldErrors = append(fieldErrors, map[string]string{
			"field":   translatedField,
			"message": translateValidationError(fieldErr),
		})
	}

	return &AppError{
		Code:       "VALIDATION_ERROR",
		Message:    "Erro de validação nos campos",
		StatusCode: http.StatusBadRequest,
		Details: map[string]interface{}{
			"fields": fieldErrors,
		},
	}
}

func translateFieldName(field string) string {
	fieldLower := strings.ToLower(field)
	fieldMap := map[string]string{
		"amount":             "valor",
		"price":              "preço",
		"term":               "prazo",
		"months":             "meses",
		"periods":            "quinzenas",
		"name":               "nome",
		"product":            "produto",
		"description":        "descrição",
		"date":               "data",
		"kind":               "tipo",
		"frequency":          "frequência",
		"payment_day":        "dia de pagamento",
		"paymentday":         "dia de pagamento",
		"payday_1":           "dia de pagamento 1",
		"payday_2":           "dia de pagamento 2",
		"specific_month":     "mês específico",
		"specificmonth":      "mês específico",
		"start_date":         "data de início",
		"startdate":          "data de início",
		"end_date":           "data de término",
		"enddate":            "data de término",
		"cutoff_day":         "dia de corte",
		"cutoffday":          "dia de corte",
		"credit_limit":       "limite de crédito",
		"creditlimit":        "limite de crédito",
		"initial_balance":    "saldo inicial",
		"initialbalance":     "saldo inicial",
		"installments":       "parcelas",
		"alert_days":         "dias de alerta",
		"alertdays":          "dias de alerta",
		"email":              "email",
		"notification_email": "email de notificação",
		"first_payment_date": "data do primeiro pagamento",
		"firstpaymentdate":   "data do primeiro pagamento",
		"credit_card_id":     "cartão de crédito",
		"granularity":        "granularidade",
		"notificationemail":  "email de notificação",
		"payday1":            "dia de pagamento 1",
		"payday2":            "dia de pagamento 2",
		"due_day":            "dia de vencimento",
		"alerts_enabled":     "alertas",
		"alertsenabled":      "alertas",
	}
	if translated, ok := fieldMap[fieldLower]; ok {
		return translated
	}
	return field
}

func translateValidationError(fe validator.FieldError) string {
	fieldName := translateFieldName(fe.Field())

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s é obrigatório", fieldName)
	case "email":
		return "Email inválido"
	case "min":
		return fmt.Sprintf("%s deve ter no mínimo %s caracteres", fieldName, fe.Param())
	case "max":
		return fmt.Sprintf("%s deve ter no máximo %s caracteres", fieldName, fe.Param())
	case "gte":
		return fmt.Sprintf("%s deve ser maior ou igual a %s", fieldName, fe.Param())
	case "lte":
		return fmt.Sprintf("%s deve ser menor ou igual a %s", fieldName, fe.Param())
	case "gt":
		return fmt.Sprintf("%s deve ser maior que %s", fieldName, fe.Param())
	case "lt":
		return fmt.Sprintf("%s deve ser menor que %s", fieldName, fe.Param())
	case "ne":
		return fmt.Sprintf("%s deve ser diferente de %s", fieldName, fe.Param())
	case "len":
		return fmt.Sprintf("%s deve ter exatamente %s caracteres", fieldName, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s deve ser um dos valores: %s", fieldName, fe.Param())
	case "uuid":
		return fmt.Sprintf("%s deve ser um UUID válido", fieldName)
	case "url":
		return fmt.Sprintf("%s deve ser uma URL válida", fieldName)
	case "datetime":
		return fmt.Sprintf("%s deve ser uma data/hora válida", fieldName)
	case "numeric":
		return fmt.Sprintf("%s deve ser um valor numérico", fieldName)
	case "alphanum":
		return fmt.Sprintf("%s deve conter apenas letras e números", fieldName)
	default:
		return fmt.Sprintf("Validação '%s' falhou para %s", fe.Tag(), fieldName)
	}
}
