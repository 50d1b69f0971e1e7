package routes

import (
	"net/http"

	"github.com/Nojands/FinanzApp/internal/contracts"
	"github.com/Nojands/FinanzApp/internal/domain/installment"
	appErrors "github.com/Nojands/FinanzApp/internal/errors"
	"github.com/Nojands/FinanzApp/internal/pkg/query"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreatePurchase(c *gin.Context) {
	var body contracts.PurchaseCreateRequest
	if err := h.bindJSON(c, &body); err != nil {
		h.respondError(c, err)
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	first, err := contracts.ParseDate(body.FirstPaymentDate)
	if err != nil || first == nil {
		h.respondError(c, appErrors.NewValidationError("first_payment_date", "formato invalido"))
		return
	}

	purchase, err := h.InstallmentService.CreatePurchase(c.Request.Context(), &installment.CreatePurchaseRequest{
		UserId:           userID,
		Product:          body.Product,
		Price:            body.Price,
		Term:             body.Term,
		FirstPaymentDate: *first,
		PaymentDay:       body.PaymentDay,
		AlertDays:        body.AlertDays,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, purchase)
}

func (h *Handler) ListPurchases(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	result, err := h.InstallmentService.ListPurchases(c.Request.Context(), userID, query.ParsePageFromGin(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) GetPurchase(c *gin.Context) {
	purchaseID, err := h.parseID(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	purchase, err := h.InstallmentService.GetPurchase(c.Request.Context(), purchaseID, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, purchase)
}

func (h *Handler) PayPurchaseAhead(c *gin.Context) {
	purchaseID, err := h.parseID(c, "id")
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

	purchase, err := h.InstallmentService.PayAhead(c.Request.Context(), purchaseID, userID, n)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, purchase)
}

func (h *Handler) DeletePurchase(c *gin.Context) {
	purchaseID, err := h.parseID(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	if err := h.InstallmentService.DeletePurchase(c.Request.Context(), purchaseID, userID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Compra parcelada removida com sucesso"})
}

// installmentsToPay reads the optional early-payment body; an empty body pays one installment.
func (h *Handler) installmentsToPay(c *gin.Context) (int, error) {
	var body contracts.PayAheadRequest
	if c.Request.ContentLength != 0 {
		if err := h.bindJSON(c, &body); err != nil {
			return 0, err
		}
	}
	if body.Installments == 0 {
		return 1, nil
	}
	return body.Installments, nil
}
