package sqlite

import (
	"fmt"
	"strings"
	"time"

	"customer-support-agent/internal/model"
)

var (
	seedStatuses  = []string{"Processing", "Shipped", "In Transit", "Out for Delivery", "Delivered", "Delayed"}
	seedCities    = []string{"Mumbai", "Delhi", "Bangalore", "Chennai", "Kolkata", "Hyderabad", "Pune", "Ahmedabad"}
	seedStreets   = []string{"MG Road", "Park Street", "Main Road", "Nehru Place"}
	seedFirst     = []string{"Rahul", "Priya", "Amit", "Sneha", "Vikram", "Ananya", "Rohan", "Kavya", "Arjun", "Ishaan"}
	seedLast      = []string{"Sharma", "Patel", "Kumar", "Singh", "Reddy", "Gupta", "Mehta", "Shah", "Iyer", "Joshi"}
	seedItemNames = []string{
		"Wireless Headphones", "Smart Watch", "Phone Case", "Laptop Bag", "USB-C Cable",
		"Power Bank", "Bluetooth Speaker", "Fitness Tracker", "Phone Charger", "Screen Protector",
	}
	seedBaseDate = time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
)

// SeedOrders returns the fixture orders ORD12341 to ORD12360. The data is fixed so
// tests and demos can rely on it; ORD12345 is Shipped.
func SeedOrders() []model.OrderRecord {
	orders := make([]model.OrderRecord, 0, 20)
	for i := 1; i <= 20; i++ {
		first := seedFirst[i%len(seedFirst)]
		last := seedLast[(i*3)%len(seedLast)]
		city := seedCities[i%len(seedCities)]
		ordered := seedBaseDate.AddDate(0, 0, i)

		items := make([]string, 0, 3)
		for k := 0; k < 1+i%3; k++ {
			items = append(items, seedItemNames[(i+k*4)%len(seedItemNames)])
		}

		orders = append(orders, model.OrderRecord{
			OrderID:           fmt.Sprintf("ORD%d", 12340+i),
			CustomerID:        fmt.Sprintf("C%d", 1000+i),
			CustomerName:      first + " " + last,
			CustomerEmail:     strings.ToLower(first) + "." + strings.ToLower(last) + "@email.com",
			OrderDate:         ordered.Format(time.DateOnly),
			Status:            seedStatuses[(i+2)%len(seedStatuses)],
			TotalAmount:       500 + float64(i)*187.25,
			ShippingAddress:   fmt.Sprintf("%d, %s, %s", 100+i*7, seedStreets[i%len(seedStreets)], city),
			TrackingNumber:    fmt.Sprintf("TRK%d", 1000000+i),
			LastScanLocation:  city + " Distribution Center",
			EstimatedDelivery: ordered.AddDate(0, 0, 2+i%6).Format(time.DateOnly),
			Items:             strings.Join(items, ", "),
		})
	}
	return orders
}

// SeedProducts returns the fixture catalog.
func SeedProducts() []model.Product {
	return []model.Product{
		{ProductID: "P001", Name: "Wireless Bluetooth Headphones", Category: "Electronics", Price: 2999, Description: "Premium noise-cancelling over-ear headphones with 30hr battery", InStock: true, Rating: 4.5},
		{ProductID: "P002", Name: "Smart Fitness Watch", Category: "Wearables", Price: 4999, Description: "Track your health with heart rate monitor, GPS and sleep tracking", InStock: true, Rating: 4.3},
		{ProductID: "P003", Name: "Leather Phone Case", Category: "Accessories", Price: 499, Description: "Genuine leather case compatible with latest smartphones", InStock: true, Rating: 4.7},
		{ProductID: "P004", Name: "Professional Laptop Bag", Category: "Bags", Price: 1899, Description: "Water-resistant laptop bag with multiple compartments", InStock: true, Rating: 4.4},
		{ProductID: "P005", Name: "USB-C Fast Charging Cable", Category: "Electronics", Price: 299, Description: "3-meter Type-C cable supports fast charging", InStock: true, Rating: 4.6},
		{ProductID: "P006", Name: "20000mAh Power Bank", Category: "Electronics", Price: 1499, Description: "High capacity power bank with dual USB output", InStock: true, Rating: 4.5},
		{ProductID: "P007", Name: "Portable Bluetooth Speaker", Category: "Electronics", Price: 2499, Description: "Waterproof speaker with 360 degree sound and 12hr playtime", InStock: true, Rating: 4.8},
		{ProductID: "P008", Name: "Fitness Resistance Bands", Category: "Sports", Price: 699, Description: "Set of 5 resistance bands for home workouts", InStock: true, Rating: 4.2},
		{ProductID: "P009", Name: "Wireless Phone Charger", Category: "Electronics", Price: 899, Description: "10W fast wireless charging pad", InStock: true, Rating: 4.4},
		{ProductID: "P010", Name: "Tempered Glass Screen Protector", Category: "Accessories", Price: 199, Description: "9H hardness screen protector with oleophobic coating", InStock: true, Rating: 4.1},
		{ProductID: "P011", Name: "Gaming Mouse", Category: "Electronics", Price: 1599, Description: "RGB gaming mouse with 12000 DPI", InStock: true, Rating: 4.6},
		{ProductID: "P012", Name: "Yoga Mat", Category: "Sports", Price: 899, Description: "Non-slip 6mm thick yoga mat with carrying strap", InStock: true, Rating: 4.5},
		{ProductID: "P013", Name: "Water Bottle", Category: "Accessories", Price: 399, Description: "1L stainless steel insulated water bottle", InStock: true, Rating: 4.3},
		{ProductID: "P014", Name: "Notebook Set", Category: "Stationery", Price: 599, Description: "Pack of 3 premium ruled notebooks", InStock: true, Rating: 4.7},
		{ProductID: "P015", Name: "Desk Lamp", Category: "Home", Price: 1299, Description: "LED desk lamp with adjustable brightness", InStock: true, Rating: 4.4},
		{ProductID: "P016", Name: "Running Shoes", Category: "Footwear", Price: 3499, Description: "Lightweight running shoes with superior cushioning", InStock: false, Rating: 4.8},
		{ProductID: "P017", Name: "Sunglasses", Category: "Accessories", Price: 1199, Description: "UV protection polarized sunglasses", InStock: true, Rating: 4.2},
		{ProductID: "P018", Name: "Backpack", Category: "Bags", Price: 2199, Description: "30L travel backpack with laptop compartment", InStock: true, Rating: 4.6},
		{ProductID: "P019", Name: "Coffee Mug", Category: "Home", Price: 299, Description: "Ceramic coffee mug with lid", InStock: true, Rating: 4.5},
		{ProductID: "P020", Name: "Wireless Mouse", Category: "Electronics", Price: 699, Description: "Ergonomic wireless mouse with silent clicks", InStock: true, Rating: 4.4},
	}
}
