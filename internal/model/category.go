package model

// CategoryType splits categories into income and expense.
type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "income"
	CategoryTypeExpense CategoryType = "expense"
)

// ValidCategoryType reports whether t is a known category type.
func ValidCategoryType(t CategoryType) bool {
	return t == CategoryTypeIncome || t == CategoryTypeExpense
}

// Category mirrors the backend category record.
type Category struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Type     CategoryType `json:"type"`
	Color    string       `json:"color,omitempty"`
	Icon     string       `json:"icon,omitempty"`
	IsCustom bool         `json:"isCustom"`
}

// Merchant mirrors the backend merchant record.
type Merchant struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	CategoryID string   `json:"categoryId,omitempty"`
	Location   Location `json:"location,omitempty"`
	Color      string   `json:"color,omitempty"`
	Icon       string   `json:"icon,omitempty"`
	Phone      string   `json:"phone,omitempty"`
}

// Location is a merchant's postal address.
type Location struct {
	Address string `json:"address,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Country string `json:"country,omitempty"`
}
