package store

import (
	"log/slog"

	"github.com/pkg/errors"

	"github.com/Balogunsamuel/grocery-shop-web/internal/models"
)

// Seed loads the demo catalog. It is a no-op when products already exist,
// so restarting the server never duplicates data.
func (s *Store) Seed() error {
	var count int
	if err := s.DB.QueryRow(`SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		return errors.Wrap(err, "check seed state")
	}
	if count > 0 {
		return nil
	}

	categories := []models.Category{
		{Name: "Fruits", Icon: "🍎", Color: "bg-red-100", Description: "Fresh and organic fruits"},
		{Name: "Vegetables", Icon: "🥬", Color: "bg-green-100", Description: "Farm fresh vegetables"},
		{Name: "Dairy", Icon: "🥛", Color: "bg-blue-100", Description: "Milk, cheese and eggs"},
		{Name: "Meat", Icon: "🥩", Color: "bg-rose-100", Description: "Fresh meat and seafood"},
		{Name: "Bakery", Icon: "🍞", Color: "bg-yellow-100", Description: "Fresh baked goods"},
		{Name: "Beverages", Icon: "🧃", Color: "bg-orange-100", Description: "Juices and drinks"},
		{Name: "Snacks", Icon: "🍿", Color: "bg-purple-100", Description: "Chips, nuts and treats"},
		{Name: "Frozen", Icon: "🧊", Color: "bg-cyan-100", Description: "Frozen foods"},
	}
	for i := range categories {
		if err := s.CreateCategory(&categories[i]); err != nil {
			return err
		}
	}

	products := []models.Product{
		{
			Name: "Fresh Organic Bananas", Price: 2.99, OriginalPrice: 3.49,
			Image: "/static/images/bananas.jpg", Rating: 4.5, ReviewCount: 128,
			CategoryID: categories[0].ID, Category: "Fruits", Brand: "Organic Farm",
			InStock: true, StockCount: 50,
			Description: "Fresh, organic bananas perfect for snacking or baking. Rich in potassium and natural sugars.",
			Features:    []string{"Organic", "Non-GMO", "Rich in Potassium"},
			Tags:        []string{"organic", "healthy", "fruit"},
			Weight:      "1 lb", Origin: "Ecuador", SKU: "BAN001",
		},
		{
			Name: "Fresh Organic Apples", Price: 4.99, OriginalPrice: 5.99,
			Image: "/static/images/apples.jpg", Rating: 4.6, ReviewCount: 203,
			CategoryID: categories[0].ID, Category: "Fruits", Brand: "Organic Farm",
			InStock: true, StockCount: 40,
			Description: "Crisp organic apples picked at peak ripeness.",
			Tags:        []string{"organic", "fruit"},
			Weight:      "2 lb", Origin: "Washington", SKU: "APL001",
		},
		{
			Name: "Organic Spinach", Price: 2.99,
			Image: "/static/images/spinach.jpg", Rating: 4.7, ReviewCount: 95,
			CategoryID: categories[1].ID, Category: "Vegetables", Brand: "Green Valley",
			InStock: true, StockCount: 30,
			Description: "Tender baby spinach leaves, triple washed and ready to eat.",
			Tags:        []string{"organic", "greens"},
			Weight:      "8 oz", SKU: "SPN001",
		},
		{
			Name: "Organic Whole Milk", Price: 3.49,
			Image: "/static/images/milk.jpg", Rating: 4.4, ReviewCount: 156,
			CategoryID: categories[2].ID, Category: "Dairy", Brand: "Meadow Dairy",
			InStock: true, StockCount: 25,
			Description: "Creamy whole milk from grass-fed cows.",
			Weight:      "1 gal", SKU: "MLK001",
		},
		{
			Name: "Fresh Salmon Fillet", Price: 12.99, OriginalPrice: 15.99,
			Image: "/static/images/salmon.jpg", Rating: 4.8, ReviewCount: 87,
			CategoryID: categories[3].ID, Category: "Meat", Brand: "Ocean Catch",
			InStock: true, StockCount: 15,
			Description: "Wild-caught Atlantic salmon, rich in omega-3.",
			Tags:        []string{"seafood", "protein"},
			Weight:      "1 lb", Origin: "Norway", SKU: "SAL001",
		},
		{
			Name: "Whole Grain Bread", Price: 4.99, OriginalPrice: 5.99,
			Image: "/static/images/bread.jpg", Rating: 4.2, ReviewCount: 89,
			CategoryID: categories[4].ID, Category: "Bakery", Brand: "Artisan Bakery",
			InStock: true, StockCount: 25,
			Description: "Freshly baked whole grain bread with seeds and nuts. Perfect for sandwiches or toast.",
			Features:    []string{"Whole Grain", "High Fiber", "No Preservatives"},
			Tags:        []string{"bread", "whole grain"},
			Weight:      "24 oz", SKU: "BRD001",
		},
		{
			Name: "Fresh Orange Juice", Price: 5.49,
			Image: "/static/images/oj.jpg", Rating: 4.3, ReviewCount: 64,
			CategoryID: categories[5].ID, Category: "Beverages", Brand: "Sunny Grove",
			InStock: true, StockCount: 20,
			Description: "100% squeezed orange juice, never from concentrate.",
			Weight:      "52 fl oz", SKU: "OJ001",
		},
		{
			Name: "Sea Salt Kettle Chips", Price: 3.99,
			Image: "/static/images/chips.jpg", Rating: 4.1, ReviewCount: 142,
			CategoryID: categories[6].ID, Category: "Snacks", Brand: "Crunch Co",
			InStock: true, StockCount: 60,
			Description: "Kettle-cooked potato chips with sea salt.",
			Weight:      "8 oz", SKU: "CHP001",
		},
	}
	for i := range products {
		if err := s.CreateProduct(&products[i]); err != nil {
			return err
		}
	}

	slog.Info("seeded demo catalog", "categories", len(categories), "products", len(products))
	return nil
}
