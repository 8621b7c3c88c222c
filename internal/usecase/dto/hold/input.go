package holddto

type CreateHoldInput struct {
	ProductID int64
	Quantity  int
}
