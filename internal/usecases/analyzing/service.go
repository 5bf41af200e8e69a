package analyzing

import (
	"context"
	"sort"

	"github.com/vfg2006/furniture-manager-api/infrastructure/repository"
	"github.com/vfg2006/furniture-manager-api/internal/config"
	"github.com/vfg2006/furniture-manager-api/internal/domain"
	"github.com/vfg2006/furniture-manager-api/pkg/log"
)

type Analyzer interface {
	Metrics(ctx context.Context, r domain.DateRange) (*domain.Metrics, error)
	Compare(ctx context.Context, r domain.DateRange) (*domain.Comparison, error)
}

type Options struct {
	TopProducts      int
	BasketMinSupport int
	BasketLimit      int
}

type Service struct {
	repo repository.MetricsRepository
	opts Options
}

func NewService(repo repository.MetricsRepository, cfg *config.Config) Analyzer {
	return &Service{
		repo: repo,
		opts: Options{
			TopProducts:      cfg.Analytics.TopProducts,
			BasketMinSupport: cfg.Analytics.BasketMinSupport,
			BasketLimit:      cfg.Analytics.BasketLimit,
		},
	}
}

// Metrics monta o snapshot do intervalo dentro de uma única transação de leitura
func (s *Service) Metrics(ctx context.Context, r domain.DateRange) (*domain.Metrics, error) {
	var metrics *domain.Metrics

	err := s.repo.WithSnapshot(ctx, func(reader repository.MetricsReader) error {
		var err error
		metrics, err = s.build(ctx, reader, r)
		return err
	})
	if err != nil {
		return nil, err
	}

	return metrics, nil
}

// Compare monta o intervalo atual e o período anterior de mesma duração
func (s *Service) Compare(ctx context.Context, r domain.DateRange) (*domain.Comparison, error) {
	var comparison domain.Comparison

	err := s.repo.WithSnapshot(ctx, func(reader repository.MetricsReader) error {
		current, err := s.build(ctx, reader, r)
		if err != nil {
			return err
		}

		previous, err := s.build(ctx, reader, r.Previous())
		if err != nil {
			return err
		}

		comparison = domain.Comparison{
			Current:  current,
			Previous: previous,
			Delta:    Delta(current.Averages, previous.Averages),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &comparison, nil
}

func (s *Service) build(ctx context.Context, reader repository.MetricsReader, r domain.DateRange) (*domain.Metrics, error) {
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"from": r.FromString(),
		"to":   r.ToString(),
	})
	logger.Debug("analytics: building metrics")

	sales, err := reader.SalesByDay(ctx, r)
	if err != nil {
		return nil, err
	}

	lines, err := reader.OrderLines(ctx, r)
	if err != nil {
		return nil, err
	}

	spend, err := reader.CustomerSpend(ctx, r)
	if err != nil {
		return nil, err
	}

	history, err := reader.CustomerHistory(ctx, r.To)
	if err != nil {
		return nil, err
	}

	topProducts := TopProducts(lines, s.opts.TopProducts)
	pairs := BasketPairs(lines, s.opts.BasketMinSupport, s.opts.BasketLimit)

	names, err := reader.ProductNames(ctx, productIDs(topProducts, pairs))
	if err != nil {
		return nil, err
	}
	applyProductNames(topProducts, names)
	applyPairNames(pairs, names)

	if sales == nil {
		sales = make([]domain.DailySales, 0)
	}

	metrics := &domain.Metrics{
		Range:       r,
		SalesByDay:  sales,
		TopProducts: topProducts,
		Averages:    Averages(spend),
		BasketPairs: pairs,
		RFM:         RFM(history, r.To),
	}

	logger.WithFields(log.Fields{
		"orders":   metrics.Averages.Orders,
		"products": len(topProducts),
		"pairs":    len(pairs),
	}).Debug("analytics: metrics built")

	return metrics, nil
}

// productIDs une os ids presentes no ranking e nos pares, sem repetição
func productIDs(products []domain.ProductRanking, pairs []domain.BasketPair) []int64 {
	seen := make(map[int64]struct{})
	for _, p := range products {
		seen[p.ProductID] = struct{}{}
	}
	for _, p := range pairs {
		seen[p.AID] = struct{}{}
		seen[p.BID] = struct{}{}
	}

	ids := make([]int64, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}
