package kontent

// Pagination is the delivery API's paging block.
type Pagination struct {
	Skip  int `json:"skip"`
	Limit int `json:"limit"`
	Count int `json:"count"`

	// NextPage holds the URL of the next page of results.  Empty (or
	// absent) when there is no further data.
	NextPage string `json:"next_page"`
}

// ItemsResponse is the delivery API's listing response.
type ItemsResponse struct {
	Items      []ContentItem `json:"items"`
	Pagination Pagination    `json:"pagination"`
}

// ManagementItemsResponse is the management API's content-item listing.
// This tool only probes the endpoint; the item payload is not processed
// beyond counting.
type ManagementItemsResponse struct {
	Items []struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		Codename string `json:"codename"`
	} `json:"items"`

	Pagination struct {
		ContinuationToken string `json:"continuation_token"`
		NextPage          string `json:"next_page"`
	} `json:"pagination"`
}

// LanguageVariant is one language variant of an item, as listed by the
// management API's variants-of-type endpoint.
type LanguageVariant struct {
	Item struct {
		ID   string `json:"id"`
		Name string `json:"name,omitempty"`
	} `json:"item"`

	Language struct {
		ID string `json:"id"`
	} `json:"language"`

	Elements []VariantElement `json:"elements"`
}

// VariantElement is a single element value on a language variant.
type VariantElement struct {
	Element struct {
		ID       string `json:"id,omitempty"`
		Codename string `json:"codename,omitempty"`
	} `json:"element"`

	Value any `json:"value"`
}

// VariantsResponse is the paginated variants-of-type listing.
type VariantsResponse struct {
	Variants []LanguageVariant `json:"variants"`

	Pagination struct {
		ContinuationToken string `json:"continuation_token"`
		NextPage          string `json:"next_page"`
	} `json:"pagination"`
}
