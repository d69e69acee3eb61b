package request

// PagBankWebhookRequest mirrors the subset of the gateway's notification
// payload the reconciler reads. Charges arrive nested under the order.
type PagBankWebhookRequest struct {
	ID      string `json:"id"`
	Charges []struct {
		ID          string `json:"id"`
		ReferenceID string `json:"reference_id"`
		Status      string `json:"status"`
	} `json:"charges"`
}
