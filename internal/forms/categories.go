package forms

import (
	"strings"

	"github.com/finview-dev/finview/internal/api"
	"github.com/finview-dev/finview/internal/model"
)

// CategoryForm is the raw category input.
type CategoryForm struct {
	Name  string
	Type  string
	Color string
	Icon  string
}

// Category validates a category form.
func Category(f CategoryForm) (api.CategoryInput, Errors) {
	errs := Errors{}
	name := strings.TrimSpace(f.Name)

	if len(name) < 2 {
		errs.add("name", "Name must be at least 2 characters")
	}
	catType := model.CategoryType(f.Type)
	if !model.ValidCategoryType(catType) {
		errs.add("type", "Choose income or expense")
	}

	return api.CategoryInput{
		Name:  name,
		Type:  catType,
		Color: strings.TrimSpace(f.Color),
		Icon:  strings.TrimSpace(f.Icon),
	}, errs
}

// MerchantForm is the raw merchant input.
type MerchantForm struct {
	Name       string
	CategoryID string
	City       string
	Country    string
	Color      string
	Icon       string
	Phone      string
}

// Merchant validates a merchant form.
func Merchant(f MerchantForm) (api.MerchantInput, Errors) {
	errs := Errors{}
	name := strings.TrimSpace(f.Name)

	if len(name) < 2 {
		errs.add("name", "Name must be at least 2 characters")
	}

	return api.MerchantInput{
		Name:       name,
		CategoryID: strings.TrimSpace(f.CategoryID),
		Location: model.Location{
			City:    strings.TrimSpace(f.City),
			Country: strings.TrimSpace(f.Country),
		},
		Color: strings.TrimSpace(f.Color),
		Icon:  strings.TrimSpace(f.Icon),
		Phone: strings.TrimSpace(f.Phone),
	}, errs
}
