package routes

import (
	"net/http"

	"github.com/Nojands/FinanzApp/internal/contracts"
	"github.com/Nojands/FinanzApp/internal/domain/ledger"
	appErrors "github.com/Nojands/FinanzApp/internal/errors"
	"github.com/Nojands/FinanzApp/internal/pkg/query"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateEntry(c *gin.Context) {
	var body contracts.LedgerEntryCreateRequest
	if err := h.bindJSON(c, &body); err != nil {
		h.respondError(c, err)
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	req := &ledger.CreateEntryRequest{
		UserId:      userID,
		Kind:        ledger.Kind(body.Kind),
		Amount:      body.Amount,
		Description: body.Description,
	}
	date, err := contracts.ParseDate(body.Date)
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("date", "formato invalido"))
		return
	}
	if date != nil {
		req.Date = *date
	}

	entry, err := h.LedgerService.CreateEntry(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, entry)
}

func (h *Handler) ListEntries(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var filter ledger.ListFilter
	if kind := c.Query("kind"); kind != "" {
		k := ledger.Kind(kind)
		filter.Kind = &k
	}
	if filter.From, err = contracts.ParseDate(c.Query("start_date")); err != nil {
		h.respondError(c, appErrors.NewValidationError("start_date", "formato invalido"))
		return
	}
	if filter.To, err = contracts.ParseDate(c.Query("end_date")); err != nil {
		h.respondError(c, appErrors.NewValidationError("end_date", "formato invalido"))
		return
	}

	result, err := h.LedgerService.ListEntries(c.Request.Context(), userID, filter, query.ParsePageFromGin(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) GetLedgerTotals(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	totals, err := h.LedgerService.GetTotals(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"income":   totals.Income.Round(2),
		"expenses": totals.Expenses.Round(2),
		"net":      totals.Net().Round(2),
	})
}

func (h *Handler) DeleteEntry(c *gin.Context) {
	entryID, err := h.parseID(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	if err := h.LedgerService.DeleteEntry(c.Request.Context(), entryID, userID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Lançamento removido com sucesso"})
}
