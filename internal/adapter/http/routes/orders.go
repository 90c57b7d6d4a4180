package routes

import (
	"repairflow/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathOrders = "/orders"

func addOrderRoutes(rg *gin.RouterGroup, orderHandler *handlers.RepairOrderHandler) {
	orders := rg.Group(PathOrders, handlers.RequireCaller())
	{
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("", orderHandler.ListOrders)
		orders.GET("/:order_id", orderHandler.GetOrder)
	}
}
