package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sellbridge/consign-api/internal/application/service"
	"github.com/sellbridge/consign-api/internal/domain/enum"
	"github.com/sellbridge/consign-api/internal/presentation/http/dto/request"
	"github.com/sellbridge/consign-api/internal/presentation/http/dto/response"
	"github.com/sellbridge/consign-api/pkg/pagination"
)

// PayoutHandler handles payout reconciliation HTTP requests
type PayoutHandler struct {
	payoutService *service.PayoutService
}

// NewPayoutHandler creates a new payout handler
func NewPayoutHandler(payoutService *service.PayoutService) *PayoutHandler {
	return &PayoutHandler{payoutService: payoutService}
}

// GetSummary handles computing a consignor's pending payout summary
func (h *PayoutHandler) GetSummary(c *gin.Context) {
	consignorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid consignor ID")
		return
	}

	summary, err := h.payoutService.ComputeSummary(c.Request.Context(), consignorID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payout summary computed successfully", summary)
}

// Create handles recording a payout for a consignor
func (h *PayoutHandler) Create(c *gin.Context) {
	consignorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid consignor ID")
		return
	}

	var req request.CreatePayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	payout, err := h.payoutService.MarkAsPaid(c.Request.Context(), &service.MarkAsPaidInput{
		ConsignorID:        consignorID,
		Notes:              req.Notes,
		CustomAmount:       req.CustomAmount,
		PartialReason:      req.PartialReason,
		BalanceDisposition: enum.BalanceDisposition(req.BalanceDisposition),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Payout recorded successfully", payout)
}

// List handles listing a consignor's payout history
func (h *PayoutHandler) List(c *gin.Context) {
	consignorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid consignor ID")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	result, err := h.payoutService.ListPayouts(c.Request.Context(), consignorID, &pagination.PaginationParams{
		Page:    page,
		PerPage: perPage,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Payouts retrieved successfully", result)
}

// Get handles retrieving a single payout record
func (h *PayoutHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid payout ID")
		return
	}

	payout, err := h.payoutService.GetPayout(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payout retrieved successfully", payout)
}
