package checkoutdto

type CheckoutOutput struct {
	PurchaseID    string  `json:"purchase_id"`
	TransactionID string  `json:"transaction_id"`
	PackageName   string  `json:"package_name"`
	Amount        float64 `json:"amount"`
	Converted     bool    `json:"converted"`
}
