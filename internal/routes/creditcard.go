package routes

import (
	"net/http"

	"github.com/Nojands/FinanzApp/internal/contracts"
	"github.com/Nojands/FinanzApp/internal/domain/creditcard"
	appErrors "github.com/Nojands/FinanzApp/internal/errors"
	"github.com/Nojands/FinanzApp/internal/pkg/query"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateCreditCard(c *gin.Context) {
	var body contracts.CreditCardCreateRequest
	if err := h.bindJSON(c, &body); err != nil {
		h.respondError(c, err)
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	card, err := h.CreditCardService.CreateCreditCard(c.Request.Context(), &creditcard.CreateCreditCardRequest{
		UserId:      userID,
		Name:        body.Name,
		CreditLimit: body.CreditLimit,
		ClosingDay:  body.ClosingDay,
		DueDay:      body.DueDay,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, card)
}

func (h *Handler) ListCreditCards(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	result, err := h.CreditCardService.ListCreditCards(c.Request.Context(), userID, query.ParsePageFromGin(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) GetCreditCard(c *gin.Context) {
	cardID, err := h.parseID(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	card, err := h.CreditCardService.GetCreditCardById(c.Request.Context(), cardID, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, card)
}

func (h *Handler) UpdateCreditCard(c *gin.Context) {
	cardID, err := h.parseID(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var body contracts.CreditCardUpdateRequest
	if err := h.bindJSON(c, &body); err != nil {
		h.respondError(c, err)
		return
	}

	card, err := h.CreditCardService.UpdateCreditCard(c.Request.Context(), cardID, userID, &creditcard.UpdateCreditCardRequest{
		Name:        body.Name,
		CreditLimit: body.CreditLimit,
		ClosingDay:  body.ClosingDay,
		DueDay:      body.DueDay,
		IsActive:    body.IsActive,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, card)
}

func (h *Handler) DeleteCreditCard(c *gin.Context) {
	cardID, err := h.parseID(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	if err := h.CreditCardService.DeleteCreditCard(c.Request.Context(), cardID, userID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Cartão de crédito removido com sucesso"})
}

func (h *Handler) CreateCharge(c *gin.Context) {
	cardID, err := h.parseID(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var body contracts.ChargeCreateRequest
	if err := h.bindJSON(c, &body); err != nil {
		h.respondError(c, err)
		return
	}

	req := &creditcard.CreateChargeRequest{
		UserId:       userID,
		CreditCardId: cardID,
		Description:  body.Description,
		Amount:       body.Amount,
		Kind:         creditcard.ChargeKind(body.Kind),
		Term:         body.Term,
	}
	date, err := contracts.ParseDate(body.Date)
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("date", "formato invalido"))
		return
	}
	if date != nil {
		req.Date = *date
	}

	charge, err := h.CreditCardService.AddCharge(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, charge)
}

func (h *Handler) ListCharges(c *gin.Context) {
	cardID, err := h.parseID(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	result, err := h.CreditCardService.ListCharges(c.Request.Context(), cardID, userID, query.ParsePageFromGin(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) PayChargeAhead(c *gin.Context) {
	cardID, err := h.parseID(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	chargeID, err := h.parseID(c, "chargeId")
	if err != nil {
		h.respondError(c, err)
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	n, err := h.installmentsToPay(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	charge, err := h.CreditCardService.PayAhead(c.Request.Context(), cardID, chargeID, userID, n)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, charge)
}
