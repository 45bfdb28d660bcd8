package models

// PriceRecord represents a single daily row of the historical gold-price file.
//
// All four prices are strictly positive once a dataset has loaded; rows that
// violate this are rejected at load time. Records are immutable after load.
type PriceRecord struct {
	Date  string  // Original date/index cell, kept verbatim for display only
	Open  float64 // Opening price
	High  float64 // Highest price of the day
	Low   float64 // Lowest price of the day
	Close float64 // Closing price (the value the model predicts)
}
