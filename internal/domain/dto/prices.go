package dto

// PriceRow mirrors one historical record in API responses.
//
// Fields match the API contract and may differ from internal domain models.
// This ensures loose coupling between the API surface and business logic.
type PriceRow struct {
	Date  string  `json:"date" example:"2024-09-01"` // Original date cell, display only
	Open  float64 `json:"open" example:"1900.0"`
	High  float64 `json:"high" example:"1920.0"`
	Low   float64 `json:"low" example:"1890.0"`
	Close float64 `json:"close" example:"1910.5"`
}

// RecentPricesResponse is the JSON structure returned by GET /api/v1/prices/recent.
type RecentPricesResponse struct {
	Count   int        `json:"count" example:"4"` // Number of rows returned
	Records []PriceRow `json:"records"`           // Last N rows in original file order
}
