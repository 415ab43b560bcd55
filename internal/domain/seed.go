package domain

func f(v float64) *float64 { return &v }

// SeedProducts is the built-in catalog used when the products collection is
// absent from storage.
func SeedProducts() []Product {
	return []Product{
		{
			ID:         "1",
			Name:       "X200 Headphones",
			Code:       "PROD001",
			Brand:      "ABC Electronics",
			Category:   "Electronics",
			CostPrice:  f(20.00),
			Price:      25.99,
			Stock:      15,
			ProviderID: "1",
			MinStock:   5,
			IsActive:   true,
		},
		{
			ID:         "2",
			Name:       "Rugged Case",
			Code:       "PROD002",
			Brand:      "XYZ Accessories",
			Category:   "Accessories",
			CostPrice:  f(8.00),
			Price:      12.50,
			Stock:      8,
			ProviderID: "2",
			MinStock:   3,
			IsActive:   true,
		},
		{
			ID:         "3",
			Name:       "Mechanical Keyboard",
			Code:       "PROD003",
			Brand:      "ABC Electronics",
			Category:   "Electronics",
			CostPrice:  f(60.00),
			Price:      75.00,
			Stock:      4,
			ProviderID: "1",
			MinStock:   5,
			IsActive:   true,
		},
	}
}

// SeedProviders is the built-in provider list.
func SeedProviders() []Provider {
	return []Provider{
		{
			ID:          "1",
			CompanyName: "ABC Distributors",
			ContactName: "Juan Perez",
			Phone:       "1122334455",
			Email:       "contact@abc.com",
			Brand:       "ABC Electronics",
			IsActive:    true,
		},
		{
			ID:          "2",
			CompanyName: "XYZ Supplies",
			ContactName: "Maria Garcia",
			Phone:       "9988776655",
			Email:       "info@xyz.com",
			Brand:       "XYZ Accessories",
			IsActive:    true,
		},
	}
}

// SeedUsers is the built-in account list. One administrator and one
// employee, enough to log in and exercise both sides of the access policy.
func SeedUsers() []User {
	return []User{
		{
			ID:       "1",
			FullName: "Primary Administrator",
			Email:    "admin@example.com",
			Role:     RoleAdministrator,
			Password: "password",
			IsActive: true,
		},
		{
			ID:       "2",
			FullName: "Sales Employee",
			Email:    "employee@example.com",
			Role:     RoleEmployee,
			Password: "password",
			IsActive: true,
		},
	}
}

// SeedOrders is the built-in order history.
func SeedOrders() []Order {
	return []Order{
		{
			ID:            "1",
			ProviderID:    "1",
			ReceptionDate: "2023-10-26",
			GuideNumber:   "GUIDE001",
			Status:        OrderStatusReceived,
			Products: []OrderLine{
				{ProductID: "1", Quantity: 10, Name: "X200 Headphones"},
				{ProductID: "3", Quantity: 5, Name: "Mechanical Keyboard"},
			},
		},
	}
}

// SeedSales is the built-in sale history.
func SeedSales() []Sale {
	return []Sale{
		{
			ID:   "1",
			Date: "2023-10-26",
			Products: []SaleLine{
				{ProductID: "1", Name: "X200 Headphones", Quantity: 1, Price: 25.99},
				{ProductID: "2", Name: "Rugged Case", Quantity: 2, Price: 12.50},
			},
			Total:         50.99,
			PaymentMethod: PaymentCard,
		},
	}
}
