package checkoutdto

type CheckoutInput struct {
	UserID          string
	PackageType     string
	PackageName     string
	PaymentMethod   string
	PaymentNumber   string
	CardNumber      string
	RecipientNumber string
}

const (
	PaymentMethodMpesa = "mpesa"
	PaymentMethodCard  = "card"
)
