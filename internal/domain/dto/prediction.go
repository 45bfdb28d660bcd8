package dto

// PredictionRequest is the JSON body accepted by POST /api/v1/predict.
//
// Each price must be strictly positive; validation happens in the service
// layer so the form page and the JSON API share the same rules.
type PredictionRequest struct {
	Open float64 `json:"open" example:"1900.0"` // Opening price
	High float64 `json:"high" example:"1920.0"` // Highest price
	Low  float64 `json:"low" example:"1890.0"`  // Lowest price
}

// PredictionResponse is the JSON structure returned by POST /api/v1/predict.
type PredictionResponse struct {
	ClosingPrice float64 `json:"closing_price" example:"1910.25"` // Predicted closing price
}
