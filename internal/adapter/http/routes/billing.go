package routes

import (
	"checkmaster/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders   = "/orders"
	PathPayments = "/payments"
)

func addBillingRoutes(rg *gin.RouterGroup, inspectionHandler *handlers.InspectionHandler, paymentHandler *handlers.OrderPaymentHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.GET("", inspectionHandler.ListOrders)
		orders.GET("/:id", inspectionHandler.GetOrder)
		orders.POST("/:id/payments", paymentHandler.CreatePaymentByOrderID)
		orders.GET("/:id/payments", paymentHandler.GetPaymentByOrderID)
	}

	rg.GET(PathPayments+"/:payment_id", paymentHandler.GetPaymentByID)
}
