package response

import (
	"fmt"

	"github.com/philmade/gather-shop/internal/domain/menu"
	"github.com/philmade/gather-shop/internal/usecase"
)

type CategoryResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
	Href  string `json:"href"`
}

type MenuResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

type MenuItemResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	PriceBCH  string `json:"price_bch"`
	Available bool   `json:"available"`
}

type CategoryItemsResponse struct {
	Category   string             `json:"category"`
	Items      []MenuItemResponse `json:"items"`
	Page       int                `json:"page"`
	TotalPages int                `json:"total_pages"`
	// Next is the URL of the following page, null on the last page.
	Next *string `json:"next"`
}

type ProductOptionsResponse struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Options     map[string][]string `json:"options"`
}

func FromCategories(categories []usecase.CategorySummary) *MenuResponse {
	resp := &MenuResponse{Categories: make([]CategoryResponse, len(categories))}
	for i, c := range categories {
		resp.Categories[i] = CategoryResponse{
			ID:    c.ID,
			Name:  c.Name,
			Count: c.Count,
			Href:  c.Href,
		}
	}
	return resp
}

func FromCategoryPage(categoryID string, p menu.Page) *CategoryItemsResponse {
	resp := &CategoryItemsResponse{
		Category:   categoryID,
		Items:      make([]MenuItemResponse, len(p.Items)),
		Page:       p.Number,
		TotalPages: p.TotalPages,
	}
	for i, item := range p.Items {
		resp.Items[i] = MenuItemResponse{
			ID:        item.ID,
			Name:      item.Name,
			PriceBCH:  usecase.FormatBCH(item.PriceBCH),
			Available: item.Available,
		}
	}
	if p.HasNext {
		next := fmt.Sprintf("/menu/%s?page=%d", categoryID, p.Number+1)
		resp.Next = &next
	}
	return resp
}

func FromProductDetail(d *usecase.ProductDetail) *ProductOptionsResponse {
	return &ProductOptionsResponse{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Options:     d.Options,
	}
}
