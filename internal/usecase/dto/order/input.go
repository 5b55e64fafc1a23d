package orderdto

type CreateOrderInput struct {
	MerchantID string
	Amount     int64
	Currency   string
	Receipt    string
	Notes      map[string]string
}
