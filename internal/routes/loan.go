package routes

import (
	"net/http"

	"github.com/Nojands/FinanzApp/internal/contracts"
	"github.com/Nojands/FinanzApp/internal/domain/loan"
	appErrors "github.com/Nojands/FinanzApp/internal/errors"
	"github.com/Nojands/FinanzApp/internal/pkg/query"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateLoan(c *gin.Context) {
	var body contracts.LoanCreateRequest
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

	l, err := h.LoanService.CreateLoan(c.Request.Context(), &loan.CreateLoanRequest{
		UserId:     userID,
		Name:       body.Name,
		Amount:     body.Amount,
		PaymentDay: body.PaymentDay,
		StartDate:  *startDate,
		EndDate:    endDate,
		AlertDays:  body.AlertDays,
		Notes:      body.Notes,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, l)
}

func (h *Handler) ListLoans(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	result, err := h.LoanService.ListLoans(c.Request.Context(), userID, query.ParsePageFromGin(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) GetLoan(c *gin.Context) {
	loanID, err := h.parseID(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	l, err := h.LoanService.GetLoan(c.Request.Context(), loanID, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, l)
}

func (h *Handler) UpdateLoan(c *gin.Context) {
	loanID, err := h.parseID(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var body contracts.LoanUpdateRequest
	if err := h.bindJSON(c, &body); err != nil {
		h.respondError(c, err)
		return
	}

	endDate, err := contracts.ParseDate(body.EndDate)
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("end_date", "formato invalido"))
		return
	}

	l, err := h.LoanService.UpdateLoan(c.Request.Context(), loanID, userID, &loan.UpdateLoanRequest{
		Name:      body.Name,
		Amount:    body.Amount,
		EndDate:   endDate,
		AlertDays: body.AlertDays,
		Notes:     body.Notes,
		IsActive:  body.IsActive,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, l)
}

func (h *Handler) DeleteLoan(c *gin.Context) {
	loanID, err := h.parseID(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	if err := h.LoanService.DeleteLoan(c.Request.Context(), loanID, userID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Empréstimo removido com sucesso"})
}
