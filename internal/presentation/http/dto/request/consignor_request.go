package request

// CreateConsignorRequest represents a consignor creation request
type CreateConsignorRequest struct {
	Name         string  `json:"name" binding:"required,min=2,max=255"`
	Email        *string `json:"email" binding:"omitempty,email"`
	Phone        *string `json:"phone" binding:"omitempty,max=50"`
	Address      *string `json:"address"`
	DefaultSplit float64 `json:"default_split" binding:"required,gt=0,lte=1"`
}

// UpdateConsignorRequest represents a consignor update request
type UpdateConsignorRequest struct {
	Name         *string  `json:"name" binding:"omitempty,min=2,max=255"`
	Email        *string  `json:"email" binding:"omitempty,email"`
	Phone        *string  `json:"phone" binding:"omitempty,max=50"`
	Address      *string  `json:"address"`
	DefaultSplit *float64 `json:"default_split" binding:"omitempty,gt=0,lte=1"`
	Active       *bool    `json:"active"`
}
