package handlers

import (
	"errors"
	"log"
	"net/http"

	request "payment_service/internal/adapter/http/dto/request"
	response "payment_service/internal/adapter/http/dto/response"
	"payment_service/internal/usecase"
	"payment_service/pkg"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// PaymentHandler handles HTTP requests for the payment lifecycle.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// CreatePayment validates and persists a new payment, answering 201 with the
// assigned id and a Location header.
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var payload request.CreatePaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[payment][handler] create invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	p, err := payload.ToEntity()
	if err != nil {
		log.Printf("[payment][handler] create invalid enum value err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if p.Amount.IsNegative() {
		appErr := pkg.NewValidationError([]string{"Monetary value can not be negative"})
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), p)
	if err != nil {
		log.Printf("[payment][handler] create failed err=%v", err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] create success payment_id=%s", created.ID)

	c.Header("Location", "/v1/payments/"+created.ID)
	c.JSON(http.StatusCreated, response.FromPaymentIDOnly(created))
}

// GetPaymentByID returns the full payment representation.
func (h *PaymentHandler) GetPaymentByID(c *gin.Context) {
	id := c.Param("id")

	p, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayment(p))
}

// ListActivePayments returns ids of non-canceled payments, optionally bounded
// by the inclusive amount_min / amount_max query parameters.
func (h *PaymentHandler) ListActivePayments(c *gin.Context) {
	amountMin, err := parseOptionalAmount(c, "amount_min")
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	amountMax, err := parseOptionalAmount(c, "amount_max")
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	payments, err := h.usecase.ListActive(c.Request.Context(), amountMin, amountMax)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPaymentsIDOnly(payments))
}

// CancelPayment cancels a same-day payment and returns the charged fee.
func (h *PaymentHandler) CancelPayment(c *gin.Context) {
	id := c.Param("id")
	log.Printf("[payment][handler] cancel start payment_id=%s", id)

	p, err := h.usecase.Cancel(c.Request.Context(), id)
	if err != nil {
		log.Printf("[payment][handler] cancel failed payment_id=%s err=%v", id, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] cancel success payment_id=%s", p.ID)

	c.JSON(http.StatusOK, response.FromCanceledPayment(p))
}

func parseOptionalAmount(c *gin.Context, name string) (*decimal.Decimal, error) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return nil, nil
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, errors.New("query parameter " + name + " must be a decimal number")
	}
	return &v, nil
}

func mapPaymentError(err error) *pkg.AppError {
	var validationErr *usecase.BusinessValidationError
	switch {
	case errors.As(err, &validationErr):
		return pkg.NewValidationError(validationErr.Reasons)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrConcurrentModification):
		return pkg.NewDomainErrorSimple("CONCURRENT_MODIFICATION", "Payment was modified concurrently. Please retry.", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
