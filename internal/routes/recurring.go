package routes

import (
	"net/http"

	"github.com/Nojands/FinanzApp/internal/contracts"
	"github.com/Nojands/FinanzApp/internal/domain/recurring"
	appErrors "github.com/Nojands/FinanzApp/internal/errors"
	"github.com/Nojands/FinanzApp/internal/pkg/query"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateIncome(c *gin.Context) {
	var body contracts.IncomeCreateRequest
	if err := h.bindJSON(c, &body); err != nil {
		h.respondError(c, err)
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	startDate, err := contracts.ParseDate(body.StartDate)
	if err != nil || startDate == nil {
		h.respondError(c, appErrors.NewValidationError("start_date", "formato invalido"))
		return
	}
	endDate, err := contracts.ParseDate(body.EndDate)
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("end_date", "formato invalido"))
		return
	}

	frequency := recurring.FrequencyMonthly
	if body.Frequency != "" {
		frequency = recurring.Frequency(body.Frequency)
	}

	income, err := h.RecurringService.CreateIncome(c.Request.Context(), &recurring.CreateIncomeRequest{
		UserId:        userID,
		Name:          body.Name,
		Amount:        body.Amount,
		PaymentDay:    body.PaymentDay,
		StartDate:     *startDate,
		EndDate:       endDate,
		Frequency:     frequency,
		SpecificMonth: body.SpecificMonth,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, income)
}

func (h *Handler) ListIncomes(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	result, err := h.RecurringService.ListIncomes(c.Request.Context(), userID, query.ParsePageFromGin(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) GetIncome(c *gin.Context) {
	incomeID, err := h.parseID(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	income, err := h.RecurringService.GetIncome(c.Request.Context(), incomeID, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, income)
}

func (h *Handler) UpdateIncome(c *gin.Context) {
	incomeID, err := h.parseID(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var body contracts.IncomeUpdateRequest
	if err := h.bindJSON(c, &body); err != nil {
		h.respondError(c, err)
		return
	}

	endDate, err := contracts.ParseDate(body.EndDate)
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("end_date", "formato invalido"))
		return
	}

	income, err := h.RecurringService.UpdateIncome(c.Request.Context(), incomeID, userID, &recurring.UpdateIncomeRequest{
		Name:     body.Name,
		Amount:   body.Amount,
		EndDate:  endDate,
		IsActive: body.IsActive,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, income)
}

func (h *Handler) DeleteIncome(c *gin.Context) {
	incomeID, err := h.parseID(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	if err := h.RecurringService.DeleteIncome(c.Request.Context(), incomeID, userID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Receita recorrente removida com sucesso"})
}
