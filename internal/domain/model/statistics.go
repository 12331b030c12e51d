package model

// OrderStatistics aggregates the outsourced order ledger.
type OrderStatistics struct {
	TotalOrders     int
	PendingOrders   int
	CompletedOrders int
	TotalValue      float64
	AvgDeliveryTime int
}
