package category

type CreateCategoryRequest struct {
	UserID string `json:"-"`
	Name   string `json:"name" validate:"required,min=1,max=50"`
	Color  string `json:"color" validate:"omitempty,hexcolor,len=7"`
}

type CategoryResponse struct {
	Key       string `json:"key"`
	Name      string `json:"name"`
	Color     string `json:"color"`
	CreatedAt string `json:"created_at,omitempty"`
}

type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

type CategoryTableEntry struct {
	Key    string `json:"key"`
	Name   string `json:"name"`
	Color  string `json:"color"`
	Custom bool   `json:"custom"`
}

type CategoryTableResponse struct {
	Locale     string               `json:"locale"`
	Categories []CategoryTableEntry `json:"categories"`
}

type LocaleQuery struct {
	Locale string `query:"locale" validate:"omitempty,max=10"`
}
