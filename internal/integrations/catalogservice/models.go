package catalogservice

// CatalogItem модель позиции каталога из CatalogService
type CatalogItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	NameFr      string `json:"nameFr,omitempty"`
	Description string `json:"description,omitempty"`
	Price       string `json:"price"`
	Duration    string `json:"duration,omitempty"`
	Group       string `json:"group"` // "length" | "addon"
	Kind        string `json:"kind"`  // "toggle" | "counter"
}

// ErrorResponse модель ошибки от CatalogService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
