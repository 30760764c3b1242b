package api

import (
	"net/http"

	"github.com/ayush/idea-to-launch/backend/internal/catalog"
	"github.com/ayush/idea-to-launch/backend/internal/models"
	"github.com/ayush/idea-to-launch/backend/internal/postprocess"
)

const (
	prefixProducts         = "Error searching products"
	prefixTrendingProducts = "Error fetching trending products"
)

type productSearchResponse struct {
	Topic            string           `json:"topic"`
	Products         []models.Product `json:"products"`
	SearchParameters searchParameters `json:"search_parameters"`
	Status           string           `json:"status"`
}

type searchParameters struct {
	Trends           []string `json:"trends"`
	ProductTypes     []string `json:"product_types"`
	DifficultyRange  [2]int   `json:"difficulty_range"`
	RevenuePotential string   `json:"revenue_potential"`
}

// SearchProducts handles GET /api/products/search. trends and product_types
// are comma-separated.
func (h *Handler) SearchProducts(w http.ResponseWriter, r *http.Request) error {
	q := r.URL.Query()
	req := models.ProductSearchRequest{
		Topic:            q.Get("topic"),
		Trends:           models.SplitCSV(q.Get("trends")),
		RevenuePotential: q.Get("revenue_potential"),
	}
	if types := models.SplitCSV(q.Get("product_types")); len(types) > 0 {
		req.ProductTypes = types
	}
	minDifficulty, err := queryInt(q, "min_difficulty", 1, 1, 10)
	if err != nil {
		return err
	}
	maxDifficulty, err := queryInt(q, "max_difficulty", 10, 1, 10)
	if err != nil {
		return err
	}
	req.MinDifficulty = models.IntPtr(minDifficulty)
	req.MaxDifficulty = models.IntPtr(maxDifficulty)
	return h.searchProducts(w, r, req)
}

// SearchProductsPost handles POST /api/products/search.
func (h *Handler) SearchProductsPost(w http.ResponseWriter, r *http.Request) error {
	var req models.ProductSearchRequest
	if err := decodeBody(r, &req); err != nil {
		return err
	}
	return h.searchProducts(w, r, req)
}

func (h *Handler) searchProducts(w http.ResponseWriter, r *http.Request, req models.ProductSearchRequest) error {
	if err := req.Normalize(); err != nil {
		return validation(err)
	}

	criteria := postprocess.ProductCriteria{
		Types:            req.ProductTypes,
		MinDifficulty:    *req.MinDifficulty,
		MaxDifficulty:    *req.MaxDifficulty,
		RevenuePotential: req.RevenuePotential,
	}
	products := h.gen.DiscoverProducts(r.Context(), req.Topic, req.Trends)
	products = postprocess.EnrichProducts(postprocess.FilterProducts(products, criteria), req.Topic)

	return writeJSON(w, http.StatusOK, productSearchResponse{
		Topic:    req.Topic,
		Products: products,
		SearchParameters: searchParameters{
			Trends:           req.Trends,
			ProductTypes:     req.ProductTypes,
			DifficultyRange:  [2]int{criteria.MinDifficulty, criteria.MaxDifficulty},
			RevenuePotential: req.RevenuePotential,
		},
		Status: statusSuccess,
	})
}

// ProductCategories handles GET /api/products/categories.
func (h *Handler) ProductCategories(w http.ResponseWriter, r *http.Request) error {
	cats := catalog.Categories()
	return writeJSON(w, http.StatusOK, map[string]any{
		"categories":       cats,
		"total_categories": len(cats),
	})
}

// TrendingProducts handles GET /api/products/trending.
func (h *Handler) TrendingProducts(w http.ResponseWriter, r *http.Request) error {
	q := r.URL.Query()
	limit, err := queryInt(q, "limit", 10, 1, 50)
	if err != nil {
		return err
	}

	category := q.Get("category")
	resp := map[string]any{
		"trending_products": catalog.TrendingProducts(category, limit),
		"category":          nil,
		"last_updated":      catalog.LastUpdated,
	}
	if category != "" {
		resp["category"] = category
	}
	return writeJSON(w, http.StatusOK, resp)
}
