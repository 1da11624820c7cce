package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sellbridge/consign-api/internal/application/service"
	"github.com/sellbridge/consign-api/internal/domain/enum"
	"github.com/sellbridge/consign-api/internal/domain/repository"
	"github.com/sellbridge/consign-api/internal/presentation/http/dto/request"
	"github.com/sellbridge/consign-api/internal/presentation/http/dto/response"
	"github.com/sellbridge/consign-api/pkg/pagination"
)

// SaleHandler handles checkout and refund HTTP requests
type SaleHandler struct {
	saleService   *service.SaleService
	refundService *service.RefundService
}

// NewSaleHandler creates a new sale handler
func NewSaleHandler(saleService *service.SaleService, refundService *service.RefundService) *SaleHandler {
	return &SaleHandler{saleService: saleService, refundService: refundService}
}

// parsePaymentMethod maps a validated request string to its enum value.
// The binding layer has already restricted the input to cash or card.
func parsePaymentMethod(s string) enum.PaymentMethod {
	if s == "card" {
		return enum.PaymentMethodCard
	}
	return enum.PaymentMethodCash
}

// List handles listing sales
func (h *SaleHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &repository.SaleFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    page,
			PerPage: perPage,
		},
		Search:    c.Query("search"),
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	}

	if startStr := c.Query("start_date"); startStr != "" {
		if start, err := time.Parse(time.RFC3339, startStr); err == nil {
			params.StartDate = &start
		}
	}
	if endStr := c.Query("end_date"); endStr != "" {
		if end, err := time.Parse(time.RFC3339, endStr); err == nil {
			params.EndDate = &end
		}
	}

	result, err := h.saleService.ListSales(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Sales retrieved successfully", result)
}

// Create handles completing a checkout
func (h *SaleHandler) Create(c *gin.Context) {
	var req request.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	items := make([]service.SaleItemInput, len(req.Items))
	for i, item := range req.Items {
		items[i] = service.SaleItemInput{
			ItemID:   item.ItemID,
			Quantity: item.Quantity,
		}
	}

	sale, err := h.saleService.CreateSale(c.Request.Context(), &service.CreateSaleInput{
		PaymentMethod: parsePaymentMethod(req.PaymentMethod),
		Items:         items,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Sale completed successfully", sale)
}

// Get handles retrieving a sale with its line items
func (h *SaleHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	sale, err := h.saleService.GetSale(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sale retrieved successfully", sale)
}

// CreateRefund handles recording a refund against a sale
func (h *SaleHandler) CreateRefund(c *gin.Context) {
	saleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	var req request.CreateRefundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	items := make([]service.RefundItemInput, len(req.Items))
	for i, item := range req.Items {
		items[i] = service.RefundItemInput{
			SaleLineItemID: item.SaleLineItemID,
			Quantity:       item.Quantity,
			Restocked:      item.Restocked,
		}
	}

	refund, err := h.refundService.CreateRefund(c.Request.Context(), &service.CreateRefundInput{
		SaleID:        saleID,
		PaymentMethod: parsePaymentMethod(req.PaymentMethod),
		Reason:        req.Reason,
		Items:         items,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Refund recorded successfully", refund)
}

// ListRefunds handles listing the refunds against a sale
func (h *SaleHandler) ListRefunds(c *gin.Context) {
	saleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	refunds, err := h.refundService.ListRefunds(c.Request.Context(), saleID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Refunds retrieved successfully", refunds)
}
