package kontent

// ItemsQuery defines the query parameters for the paginated listing endpoint:
// GET /{project_id}/items
// https://kontent.ai/learn/docs/apis/openapi/delivery-api/#operation/list-content-items
type ItemsQuery struct {
	// Filter the results to items of this content type.
	Type string `url:"system.type,omitempty"`

	// Elements restricts the elements included in the response; fetching
	// only the slug fields keeps 1000-item pages small.
	Elements []string `url:"elements,omitempty,comma"`

	// Language selects which language variants to return.  "*" means all.
	Language string `url:"language,omitempty"`

	// Skip/Limit drive pagination.  Limit default 25, range 1-2000 on the
	// delivery API; this tool uses 1000.  Skip is always emitted so the
	// request URLs are self-describing in logs.
	Skip  int `url:"skip"`
	Limit int `url:"limit,omitempty"`
}

// FilterQuery defines the query parameters for an equality-filter lookup on
// one slug element.  The element name is chosen at runtime, so Field/Value
// are excluded from struct encoding and appended by the endpoint builder.
type FilterQuery struct {
	// Optional content type filter; some search shapes deliberately omit it.
	Type string `url:"system.type,omitempty"`

	// Depth 0: no linked items, we only want the match itself.
	Depth int `url:"depth"`

	Language string `url:"language,omitempty"`
	Limit    int    `url:"limit,omitempty"`

	// The element to filter on ("slug" or "url_slug") and the exact value.
	Field string `url:"-"`
	Value string `url:"-"`
}
