package routes

import (
	"payment_service/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathPayments = "/payments"

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("", paymentHandler.CreatePayment)
		payments.GET("", paymentHandler.ListActivePayments)
		payments.GET("/:id", paymentHandler.GetPaymentByID)
		payments.POST("/:id/cancel", paymentHandler.CancelPayment)
	}
}
