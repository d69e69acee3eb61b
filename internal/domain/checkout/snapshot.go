package checkout

// BookingSnapshot is the immutable copy of the booking captured when the
// session is created. Later corrections to the booking in the main system do
// not change what the guest already saw on the checkout page.
type BookingSnapshot struct {
	GuestName     string `json:"guest_name"`
	GuestEmail    string `json:"guest_email"`
	GuestDocument string `json:"guest_document"`
	GuestPhone    string `json:"guest_phone"`
	HouseName     string `json:"house_name"`
	CheckIn       string `json:"check_in"`
	CheckOut      string `json:"check_out"`
	Guests        int    `json:"guests"`
	TotalPrice    int64  `json:"total_price"`
}
