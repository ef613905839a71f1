package store

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/safar/go-storefront/internal/models"
)

// Demo fixtures written on first run. Passwords are intentionally trivial;
// they are printed on the login screen of the demo UI.

func DemoUsers() []models.User {
	now := time.Now().UTC()
	return []models.User{
		{
			ID:         "admin-1",
			Role:       models.RoleAdmin,
			Name:       "Admin User",
			Email:      "admin@demo.com",
			Password:   "admin123",
			Phone:      "+1234567890",
			AvatarURL:  "https://images.pexels.com/photos/2379004/pexels-photo-2379004.jpeg?auto=compress&cs=tinysrgb&w=150",
			IsApproved: true,
			CreatedAt:  now,
		},
		{
			ID:         "seller-1",
			Role:       models.RoleSeller,
			Name:       "John Seller",
			Email:      "seller@demo.com",
			Password:   "seller123",
			Phone:      "+1234567891",
			AvatarURL:  "https://images.pexels.com/photos/1222271/pexels-photo-1222271.jpeg?auto=compress&cs=tinysrgb&w=150",
			IsApproved: true,
			CreatedAt:  now,
		},
		{
			ID:         "customer-1",
			Role:       models.RoleCustomer,
			Name:       "Jane Customer",
			Email:      "customer@demo.com",
			Password:   "customer123",
			Phone:      "+1234567892",
			AvatarURL:  "https://images.pexels.com/photos/1239291/pexels-photo-1239291.jpeg?auto=compress&cs=tinysrgb&w=150",
			IsApproved: true,
			CreatedAt:  now,
		},
	}
}

func DemoCategories() []models.Category {
	return []models.Category{
		{ID: "cat-1", Name: "Electronics", Icon: "📱", ImageURL: "https://images.pexels.com/photos/356056/pexels-photo-356056.jpeg"},
		{ID: "cat-1-1", Name: "Smartphones", ParentID: "cat-1"},
		{ID: "cat-1-2", Name: "Laptops", ParentID: "cat-1"},
		{ID: "cat-1-3", Name: "Headphones", ParentID: "cat-1"},

		{ID: "cat-2", Name: "Fashion", Icon: "👕", ImageURL: "https://images.pexels.com/photos/996329/pexels-photo-996329.jpeg"},
		{ID: "cat-2-1", Name: "Men's Clothing", ParentID: "cat-2"},
		{ID: "cat-2-2", Name: "Women's Clothing", ParentID: "cat-2"},
		{ID: "cat-2-3", Name: "Shoes", ParentID: "cat-2"},

		{ID: "cat-3", Name: "Home & Garden", Icon: "🏠", ImageURL: "https://images.pexels.com/photos/1080721/pexels-photo-1080721.jpeg"},
		{ID: "cat-3-1", Name: "Furniture", ParentID: "cat-3"},
		{ID: "cat-3-2", Name: "Kitchen", ParentID: "cat-3"},

		{ID: "cat-4", Name: "Sports", Icon: "⚽", ImageURL: "https://images.pexels.com/photos/2294361/pexels-photo-2294361.jpeg"},
		{ID: "cat-4-1", Name: "Fitness Equipment", ParentID: "cat-4"},
		{ID: "cat-4-2", Name: "Sportswear", ParentID: "cat-4"},
	}
}

func DemoProducts() []models.Product {
	return []models.Product{
		{
			ID:          "prod-1",
			Title:       "iPhone 15 Pro Max",
			Description: "Latest iPhone with A17 Pro chip, titanium design, and advanced camera system. Perfect for photography and professional use.",
			Price:       decimal.NewFromInt(1199),
			Images: []string{
				"https://images.pexels.com/photos/788946/pexels-photo-788946.jpeg",
				"https://images.pexels.com/photos/47261/pexels-photo-47261.jpeg",
			},
			Brand:       "Apple",
			SellerID:    "seller-1",
			Stock:       15,
			RatingAvg:   4.8,
			RatingCount: 124,
			CategoryID:  "cat-1-1",
			CreatedAt:   time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
			IsActive:    true,
		},
		{
			ID:          "prod-2",
			Title:       "MacBook Pro 16\"",
			Description: "Powerful laptop with M3 chip, 32GB RAM, and 1TB SSD. Perfect for developers and creators.",
			Price:       decimal.NewFromInt(2499),
			Images: []string{
				"https://images.pexels.com/photos/812264/pexels-photo-812264.jpeg",
				"https://images.pexels.com/photos/18105/pexels-photo.jpg",
			},
			Brand:       "Apple",
			SellerID:    "seller-1",
			Stock:       8,
			RatingAvg:   4.9,
			RatingCount: 89,
			CategoryID:  "cat-1-2",
			CreatedAt:   time.Date(2024, 1, 10, 10, 0, 0, 0, time.UTC),
			IsActive:    true,
		},
		{
			ID:          "prod-3",
			Title:       "Sony WH-1000XM5",
			Description: "Industry-leading noise canceling headphones with exceptional sound quality and 30-hour battery life.",
			Price:       decimal.NewFromInt(399),
			Images: []string{
				"https://images.pexels.com/photos/3394650/pexels-photo-3394650.jpeg",
				"https://images.pexels.com/photos/1649771/pexels-photo-1649771.jpeg",
			},
			Brand:       "Sony",
			SellerID:    "seller-1",
			Stock:       25,
			RatingAvg:   4.7,
			RatingCount: 156,
			CategoryID:  "cat-1-3",
			CreatedAt:   time.Date(2024, 1, 8, 10, 0, 0, 0, time.UTC),
			IsActive:    true,
		},
		{
			ID:          "prod-4",
			Title:       "Premium Cotton T-Shirt",
			Description: "Comfortable and stylish cotton t-shirt available in multiple colors. Perfect for casual wear.",
			Price:       decimal.NewFromInt(29),
			Images: []string{
				"https://images.pexels.com/photos/8532616/pexels-photo-8532616.jpeg",
				"https://images.pexels.com/photos/2294342/pexels-photo-2294342.jpeg",
			},
			Brand:       "FashionHub",
			SellerID:    "seller-1",
			Stock:       50,
			RatingAvg:   4.3,
			RatingCount: 78,
			CategoryID:  "cat-2-1",
			CreatedAt:   time.Date(2024, 1, 12, 10, 0, 0, 0, time.UTC),
			IsActive:    true,
		},
		{
			ID:          "prod-5",
			Title:       "Wireless Gaming Mouse",
			Description: "High-precision wireless gaming mouse with RGB lighting and programmable buttons.",
			Price:       decimal.NewFromInt(79),
			Images: []string{
				"https://images.pexels.com/photos/2115256/pexels-photo-2115256.jpeg",
			},
			Brand:       "TechGear",
			SellerID:    "seller-1",
			Stock:       30,
			RatingAvg:   4.5,
			RatingCount: 92,
			CategoryID:  "cat-1",
			CreatedAt:   time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC),
			IsActive:    true,
		},
		{
			ID:          "prod-6",
			Title:       "Modern Desk Lamp",
			Description: "Adjustable LED desk lamp with multiple brightness levels and USB charging port.",
			Price:       decimal.NewFromInt(89),
			Images: []string{
				"https://images.pexels.com/photos/1112598/pexels-photo-1112598.jpeg",
			},
			Brand:       "HomeLight",
			SellerID:    "seller-1",
			Stock:       20,
			RatingAvg:   4.6,
			RatingCount: 45,
			CategoryID:  "cat-3-2",
			CreatedAt:   time.Date(2024, 1, 3, 10, 0, 0, 0, time.UTC),
			IsActive:    true,
		},
	}
}
