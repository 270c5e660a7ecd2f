package repository

// Factory describes access to the different domain repositories.
type Factory interface {
	Users() UserRepository
	Products() ProductRepository
	Categories() CategoryRepository
	Orders() OrderRepository
	Deliveries() DeliveryRepository
	Addresses() AddressRepository
	Payments() PaymentRepository
}
