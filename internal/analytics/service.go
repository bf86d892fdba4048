package analytics

import (
	goshopify "github.com/bold-commerce/go-shopify/v3"

	"storeops/internal/logger"
	"storeops/internal/reports"
	"storeops/internal/store"
)

// Source supplies the fully materialized record sets the aggregations run
// over. *store.Client implements it; tests substitute fixtures.
type Source interface {
	AllProducts() ([]goshopify.Product, error)
	AllOrders() ([]goshopify.Order, error)
	AllCustomers() ([]goshopify.Customer, error)
	OrderSummaries() ([]store.OrderSummary, error)
}

// StoreReport bundles every analysis into one payload.
type StoreReport struct {
	SalesAnalysis            *SalesReport         `json:"sales_analysis"`
	CustomerBehaviorAnalysis *CustomerReport      `json:"customer_behavior_analysis"`
	AllOrders                []store.OrderSummary `json:"all_orders"`
}

// Service runs the aggregations against a Source. Every result is recomputed
// from a fresh full fetch and optionally snapshotted to the reports store;
// nothing is cached between calls.
type Service struct {
	src     Source
	reports *reports.Store
	logger  *logger.Logger
}

// New builds the analytics service. The reports store may be nil, in which
// case snapshots are skipped.
func New(src Source, rep *reports.Store, log *logger.Logger) *Service {
	return &Service{src: src, reports: rep, logger: log}
}

func (s *Service) AnalyzeSales() (*SalesReport, error) {
	orders, err := s.src.AllOrders()
	if err != nil {
		return nil, err
	}
	products, err := s.src.AllProducts()
	if err != nil {
		return nil, err
	}

	report := ComputeSales(orders, products)
	s.snapshot("sales", report)
	return report, nil
}

func (s *Service) AnalyzeCustomerBehavior() (*CustomerReport, error) {
	customers, err := s.src.AllCustomers()
	if err != nil {
		return nil, err
	}
	orders, err := s.src.AllOrders()
	if err != nil {
		return nil, err
	}
	products, err := s.src.AllProducts()
	if err != nil {
		return nil, err
	}

	report := ComputeCustomerBehavior(customers, orders, products)
	s.snapshot("customer_behavior", report)
	return report, nil
}

func (s *Service) LowStock() (*StockReport, error) {
	products, err := s.src.AllProducts()
	if err != nil {
		return nil, err
	}

	report := ComputeLowStock(products)
	s.snapshot("low_stock", report)
	return report, nil
}

func (s *Service) StockLevels() (map[int64]int, error) {
	products, err := s.src.AllProducts()
	if err != nil {
		return nil, err
	}
	return ComputeStockLevels(products), nil
}

// AnalyzeStore runs the sales and customer analyses plus the order summaries
// in one call.
func (s *Service) AnalyzeStore() (*StoreReport, error) {
	sales, err := s.AnalyzeSales()
	if err != nil {
		return nil, err
	}
	behavior, err := s.AnalyzeCustomerBehavior()
	if err != nil {
		return nil, err
	}
	summaries, err := s.src.OrderSummaries()
	if err != nil {
		return nil, err
	}

	return &StoreReport{
		SalesAnalysis:            sales,
		CustomerBehaviorAnalysis: behavior,
		AllOrders:                summaries,
	}, nil
}

// snapshot persists an analysis result when a reports store is configured.
// Persistence failures are logged, never surfaced: the analysis itself
// succeeded.
func (s *Service) snapshot(kind string, payload interface{}) {
	if s.reports == nil {
		return
	}
	if err := s.reports.SaveSnapshot(kind, payload); err != nil {
		s.logger.Warn("Failed to snapshot %s report: %v", kind, err)
	}
}
