package order

import "customer-support-agent/internal/model"

// --- UseCase Inputs ---

type ListInput struct {
	Status        string
	CustomerName  string
	CustomerEmail string
	Limit         int
	Offset        int
}

// --- UseCase Outputs ---

type ListOutput struct {
	Orders []model.OrderRecord
	Total  int
	Limit  int
	Offset int
}
