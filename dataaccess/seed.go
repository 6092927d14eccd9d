package dataaccess

import (
	"time"

	"github.com/rewear-app/rewear-api/models"
)

// Default seed sets, materialized into the store the first time a
// collection is opened with no stored data. They give a fresh install a
// browsable catalog and the demo accounts something to own.

func SeedItems() []models.Item {
	now := time.Now().UTC()
	item := func(id, title, desc, category, size string, condition models.ItemCondition, points int, image string, tags ...string) models.Item {
		return models.Item{
			ID:          id,
			Title:       title,
			Description: desc,
			Category:    category,
			Size:        size,
			Condition:   condition,
			Images:      []string{image},
			Tags:        tags,
			PointValue:  points,
			Status:      models.ItemStatusAvailable,
			UserID:      "demo-user-1",
			CreatedAt:   now,
			UpdatedAt:   now,
		}
	}

	items := []models.Item{
		item("item_tops_1", "Classic White T-Shirt", "Essential cotton t-shirt in perfect condition. Great for layering or casual wear.", "tops", "M", models.ConditionLikeNew, 25, "https://images.pexels.com/photos/6311479/pexels-photo-6311479.jpeg", "basic", "cotton", "casual"),
		item("item_tops_2", "Silk Blouse", "Elegant silk blouse in navy blue. Perfect for professional settings.", "tops", "S", models.ConditionGood, 45, "https://images.pexels.com/photos/994523/pexels-photo-994523.jpeg", "silk", "professional", "elegant"),
		item("item_bottoms_1", "High-Waisted Jeans", "Comfortable blue denim jeans with a flattering high waist.", "bottoms", "32", models.ConditionGood, 50, "https://images.pexels.com/photos/1082529/pexels-photo-1082529.jpeg", "jeans", "denim", "casual"),
		item("item_bottoms_2", "Black Chinos", "Versatile black chinos for work or play.", "bottoms", "34", models.ConditionLikeNew, 55, "https://images.pexels.com/photos/532221/pexels-photo-532221.jpeg", "chinos", "black", "versatile"),
		item("item_dresses_1", "Summer Floral Dress", "Light floral dress for warm days.", "dresses", "M", models.ConditionNew, 65, "https://images.pexels.com/photos/1484759/pexels-photo-1484759.jpeg", "floral", "summer", "light"),
		item("item_dresses_2", "Evening Gown", "Elegant evening gown for special occasions.", "dresses", "L", models.ConditionLikeNew, 80, "https://images.pexels.com/photos/415829/pexels-photo-415829.jpeg", "gown", "evening", "elegant"),
		item("item_outerwear_1", "Leather Jacket", "Classic leather jacket with silver hardware. Timeless style.", "outerwear", "M", models.ConditionGood, 85, "https://images.pexels.com/photos/1456706/pexels-photo-1456706.jpeg", "leather", "classic", "edgy"),
		item("item_outerwear_2", "Wool Coat", "Warm wool coat perfect for winter. Classic camel color.", "outerwear", "L", models.ConditionLikeNew, 75, "https://images.pexels.com/photos/6311472/pexels-photo-6311472.jpeg", "wool", "winter", "classic"),
		item("item_shoes_1", "White Sneakers", "Classic white sneakers in excellent condition. Perfect for everyday wear.", "shoes", "40", models.ConditionLikeNew, 40, "https://images.pexels.com/photos/1484759/pexels-photo-1484759.jpeg", "sneakers", "white", "casual"),
		item("item_shoes_2", "Ankle Boots", "Stylish ankle boots with a low heel. Perfect for fall and winter.", "shoes", "38", models.ConditionGood, 55, "https://images.pexels.com/photos/6311469/pexels-photo-6311469.jpeg", "boots", "ankle", "stylish"),
		item("item_accessories_1", "Leather Handbag", "Classic leather handbag in brown. Perfect size for everyday use.", "accessories", "One Size", models.ConditionGood, 60, "https://images.pexels.com/photos/6311466/pexels-photo-6311466.jpeg", "leather", "handbag", "classic"),
		item("item_accessories_2", "Silk Scarf", "Beautiful silk scarf with floral pattern. Adds color to any outfit.", "accessories", "One Size", models.ConditionLikeNew, 25, "https://images.pexels.com/photos/6311465/pexels-photo-6311465.jpeg", "silk", "scarf", "floral"),
	}

	// Spread ownership across the demo accounts.
	owners := []string{"demo-user-1", "demo-user-2", "demo-user-3", "demo-user-4", "demo-user-5", "demo-user-6"}
	for i := range items {
		items[i].UserID = owners[i%len(owners)]
	}
	return items
}

func SeedUsers() []models.PublicUser {
	now := time.Now().UTC()
	user := func(id, email, name string, points int) models.PublicUser {
		return models.PublicUser{ID: id, Email: email, Name: name, Points: points, CreatedAt: now, UpdatedAt: now}
	}
	return []models.PublicUser{
		user("demo-user-1", "demo@rewear.com", "Demo User", 150),
		user("demo-user-2", "jane@rewear.com", "Jane Smith", 200),
		user("demo-user-3", "mike@rewear.com", "Mike Johnson", 120),
		user("demo-user-4", "sarah@rewear.com", "Sarah Wilson", 180),
		user("demo-user-5", "alex@rewear.com", "Alex Chen", 95),
		user("demo-user-6", "emma@rewear.com", "Emma Davis", 220),
	}
}

func SeedSwapRequests() []models.SwapRequest {
	now := time.Now().UTC()
	return []models.SwapRequest{
		{
			ID:          "swap_1",
			RequesterID: "demo-user-1",
			ItemID:      "item_tops_2",
			Message:     "Hi! I'm interested in swapping for this silk blouse. Would you like to see my items?",
			Status:      models.SwapStatusPending,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          "swap_2",
			RequesterID: "demo-user-2",
			ItemID:      "item_tops_1",
			Message:     "I love this white t-shirt! Would you be interested in swapping for my vintage jacket?",
			Status:      models.SwapStatusAccepted,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          "swap_3",
			RequesterID: "demo-user-3",
			ItemID:      "item_bottoms_1",
			Message:     "These jeans look perfect! I have some great shoes to offer in exchange.",
			Status:      models.SwapStatusCompleted,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}
}

func SeedOrders() []models.Order {
	now := time.Now().UTC()
	addr := models.Address{
		FullName:      "Demo User",
		Phone:         "1234567890",
		StreetAddress: "123 Main St",
		City:          "New York",
		State:         "NY",
		PostalCode:    "10001",
		Country:       "USA",
	}
	return []models.Order{
		{
			ID:              "order_1",
			UserID:          "demo-user-1",
			TotalPoints:     75,
			PaymentMethod:   models.PaymentMethodPoints,
			PaymentStatus:   models.PaymentStatusCompleted,
			OrderStatus:     models.OrderStatusDelivered,
			ShippingAddress: addr,
			CreatedAt:       now,
			UpdatedAt:       now,
		},
		{
			ID:              "order_2",
			UserID:          "demo-user-1",
			TotalPoints:     120,
			PaymentMethod:   models.PaymentMethodUPI,
			PaymentStatus:   models.PaymentStatusCompleted,
			OrderStatus:     models.OrderStatusShipped,
			ShippingAddress: addr,
			CreatedAt:       now,
			UpdatedAt:       now,
		},
	}
}

func SeedOrderItems() []models.OrderItem {
	now := time.Now().UTC()
	return []models.OrderItem{
		{ID: "orderitem_1", OrderID: "order_1", ItemID: "item_tops_1", Quantity: 1, PointsValue: 25, CreatedAt: now},
		{ID: "orderitem_2", OrderID: "order_1", ItemID: "item_bottoms_1", Quantity: 1, PointsValue: 50, CreatedAt: now},
		{ID: "orderitem_3", OrderID: "order_2", ItemID: "item_outerwear_1", Quantity: 1, PointsValue: 70, CreatedAt: now},
		{ID: "orderitem_4", OrderID: "order_2", ItemID: "item_shoes_1", Quantity: 1, PointsValue: 50, CreatedAt: now},
	}
}
