package models

// Prediction is the outcome of a single model inference.
//
// It has no independent lifecycle: produced synchronously by the predictor
// and consumed immediately by the caller.
type Prediction struct {
	ClosingPrice float64 // Predicted closing price for the submitted Open/High/Low
}
