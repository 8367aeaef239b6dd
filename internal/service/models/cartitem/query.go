package cartitem

// QueryLineItemsModel represents filter parameters for querying cart line
// items joined with product details.
type QueryLineItemsModel struct {
	Ids     []int64 `json:"ids,omitempty"`
	CartIds []int64 `json:"cartIds,omitempty"`
}
