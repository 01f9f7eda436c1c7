package service

import (
	"go-warehouse-api/internal/catalog"
	"go-warehouse-api/internal/repository"
)

type DashboardService interface {
	GetStatistics() (*catalog.Statistics, error)
}

type dashboardService struct {
	productRepo repository.ProductRepository
}

func NewDashboardService(productRepo repository.ProductRepository) DashboardService {
	return &dashboardService{productRepo: productRepo}
}

// GetStatistics recomputes the fleet overview from the current catalog on
// every call; nothing is cached between requests.
func (s *dashboardService) GetStatistics() (*catalog.Statistics, error) {
	products, err := s.productRepo.FindAll()
	if err != nil {
		return nil, err
	}

	stats := catalog.Summarize(products)
	return &stats, nil
}
