package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateConsignorNumber generates a human-facing consignor number
func GenerateConsignorNumber() string {
	return "CSN-" + strings.ToUpper(uuid.New().String()[:8])
}

// GenerateSaleNumber generates a unique sale number
func GenerateSaleNumber() string {
	return "SALE-" + strings.ToUpper(uuid.New().String()[:8])
}

// GenerateItemSKU generates a unique SKU for a consigned item
func GenerateItemSKU() string {
	return "ITM-" + strings.ToUpper(uuid.New().String()[:8])
}
