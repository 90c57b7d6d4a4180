package handlers

import (
	"net/http"

	request "repairflow/internal/adapter/http/dto/request"
	response "repairflow/internal/adapter/http/dto/response"
	"repairflow/internal/domain/entities"
	"repairflow/internal/usecase"
	"repairflow/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RepairOrderHandler handles HTTP requests for repair orders.
type RepairOrderHandler struct {
	usecase usecase.IRepairOrderUseCase
}

func NewRepairOrderHandler(uc usecase.IRepairOrderUseCase) *RepairOrderHandler {
	return &RepairOrderHandler{usecase: uc}
}

// CreateOrder opens a repair order for the calling customer and assigns a technician.
//
// @Summary  Create repair order
// @Tags     orders
// @Accept   json
// @Produce  json
// @Param    X-User-ID    header string true "Caller id"
// @Param    X-User-Role  header string true "CUSTOMER"
// @Param    body body request.CreateRepairOrderRequest true "Intake form"
// @Success  201 {object} response.RepairOrderResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  503 {object} pkg.HTTPError
// @Router   /orders [post]
func (h *RepairOrderHandler) CreateOrder(c *gin.Context) {
	caller, ok := callerWithRole(c, entities.RoleCustomer)
	if !ok {
		return
	}

	var payload request.CreateRepairOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	desired, err := payload.ResolveDesiredServiceDate()
	if err != nil {
		appErr := pkg.NewDomainError("INVALID_STATE", err.Error(), err, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	order, err := h.usecase.CreateOrder(c.Request.Context(), &usecase.CreateRepairOrderRequest{
		ItemName:           payload.ItemName,
		ItemCondition:      payload.ItemCondition,
		IssueDescription:   payload.IssueDescription,
		PaymentMethodID:    payload.PaymentMethodID,
		DesiredServiceDate: desired,
	}, &entities.Customer{ID: caller.ID})
	if err != nil {
		appErr := mapDomainError(err)
		logAppError("[order][handler] create", appErr)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	zap.L().Info("[order][handler] create success", zap.String("order_id", order.ID))
	c.JSON(http.StatusCreated, response.FromRepairOrder(order))
}

// GetOrder returns an order to its customer or assigned technician.
//
// @Summary  Get repair order
// @Tags     orders
// @Produce  json
// @Param    order_id path string true "Order id"
// @Success  200 {object} response.RepairOrderResponse
// @Failure  403 {object} pkg.HTTPError
// @Failure  404 {object} pkg.HTTPError
// @Router   /orders/{order_id} [get]
func (h *RepairOrderHandler) GetOrder(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		c.JSON(errMissingCaller.HTTPStatus, errMissingCaller.ToHTTPError())
		return
	}

	order, err := h.usecase.GetOrder(c.Request.Context(), c.Param("order_id"), caller)
	if err != nil {
		appErr := mapDomainError(err)
		logAppError("[order][handler] get", appErr)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRepairOrder(order))
}

// ListOrders returns the calling customer's orders.
//
// @Summary  List own repair orders
// @Tags     orders
// @Produce  json
// @Success  200 {array} response.RepairOrderResponse
// @Router   /orders [get]
func (h *RepairOrderHandler) ListOrders(c *gin.Context) {
	caller, ok := callerWithRole(c, entities.RoleCustomer)
	if !ok {
		return
	}

	orders, err := h.usecase.ListCustomerOrders(c.Request.Context(), caller)
	if err != nil {
		appErr := mapDomainError(err)
		logAppError("[order][handler] list", appErr)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRepairOrders(orders))
}
