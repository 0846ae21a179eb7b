package shared

// CalculateLineTotal returns the amount charged for quantity units at unitPrice.
func CalculateLineTotal(quantity int, unitPrice float64) float64 {
	return float64(quantity) * unitPrice
}
