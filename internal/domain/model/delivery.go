package model

// DeliveryOption is a named shipping tier with a flat cost.
type DeliveryOption struct {
	ID   int64
	Name string
	Cost Money
}
