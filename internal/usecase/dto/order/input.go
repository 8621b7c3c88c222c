package orderdto

type CreateOrderInput struct {
	HoldID int64
}
