package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sellbridge/consign-api/internal/application/service"
	"github.com/sellbridge/consign-api/internal/domain/repository"
	"github.com/sellbridge/consign-api/internal/presentation/http/dto/request"
	"github.com/sellbridge/consign-api/internal/presentation/http/dto/response"
	"github.com/sellbridge/consign-api/pkg/pagination"
)

// ConsignorHandler handles consignor-related HTTP requests
type ConsignorHandler struct {
	consignorService *service.ConsignorService
}

// NewConsignorHandler creates a new consignor handler
func NewConsignorHandler(consignorService *service.ConsignorService) *ConsignorHandler {
	return &ConsignorHandler{consignorService: consignorService}
}

// List handles listing consignors
func (h *ConsignorHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &repository.ConsignorFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    page,
			PerPage: perPage,
		},
		Search:     c.Query("search"),
		ActiveOnly: c.Query("active") == "true",
		SortBy:     c.Query("sort_by"),
		SortOrder:  c.Query("sort_order"),
	}

	result, err := h.consignorService.ListConsignors(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Consignors retrieved successfully", result)
}

// Create handles creating a consignor
func (h *ConsignorHandler) Create(c *gin.Context) {
	var req request.CreateConsignorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	consignor, err := h.consignorService.CreateConsignor(c.Request.Context(), &service.CreateConsignorInput{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Address:      req.Address,
		DefaultSplit: req.DefaultSplit,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Consignor created successfully", consignor)
}

// Get handles retrieving a consignor
func (h *ConsignorHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid consignor ID")
		return
	}

	consignor, err := h.consignorService.GetConsignor(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Consignor retrieved successfully", consignor)
}

// Update handles updating a consignor
func (h *ConsignorHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid consignor ID")
		return
	}

	var req request.UpdateConsignorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	consignor, err := h.consignorService.UpdateConsignor(c.Request.Context(), id, &service.UpdateConsignorInput{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Address:      req.Address,
		DefaultSplit: req.DefaultSplit,
		Active:       req.Active,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Consignor updated successfully", consignor)
}

// Delete handles deleting a consignor
func (h *ConsignorHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid consignor ID")
		return
	}

	if err := h.consignorService.DeleteConsignor(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
