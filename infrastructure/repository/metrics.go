package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/furniture-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/furniture-manager-api/internal/domain"
)

const (
	ordersTable     = "albaranes"
	orderLinesTable = "lineas_albaran"
	productsTable   = "productos"
	customersTable  = "clientes"
)

// MetricsReader expõe as leituras necessárias para montar as métricas
type MetricsReader interface {
	SalesByDay(ctx context.Context, r domain.DateRange) ([]domain.DailySales, error)
	OrderLines(ctx context.Context, r domain.DateRange) ([]domain.OrderLine, error)
	CustomerSpend(ctx context.Context, r domain.DateRange) ([]domain.CustomerSpend, error)
	CustomerHistory(ctx context.Context, reference time.Time) ([]domain.CustomerHistory, error)
	ProductNames(ctx context.Context, ids []int64) (map[int64]string, error)
}

type MetricsRepository interface {
	MetricsReader
	// WithSnapshot executa fn com um leitor preso a uma transação somente leitura
	WithSnapshot(ctx context.Context, fn func(MetricsReader) error) error
}

type metricsRepository struct {
	conn *postgres.Connection
	q    postgres.Queryer
}

func NewMetricsRepository(conn *postgres.Connection) MetricsRepository {
	return &metricsRepository{
		conn: conn,
		q:    conn,
	}
}

func (r *metricsRepository) WithSnapshot(ctx context.Context, fn func(MetricsReader) error) error {
	return r.conn.RunReadOnly(ctx, func(tx *sql.Tx) error {
		return fn(&metricsRepository{conn: r.conn, q: tx})
	})
}

func (r *metricsRepository) SalesByDay(ctx context.Context, dr domain.DateRange) ([]domain.DailySales, error) {
	query, args, err := squirrel.
		Select("a.fecha", "COUNT(a.id)", "COALESCE(SUM(a.total), 0)").
		From(ordersTable + " a").
		Where(squirrel.GtOrEq{"a.fecha": dr.FromString()}).
		Where(squirrel.LtOrEq{"a.fecha": dr.ToString()}).
		GroupBy("a.fecha").
		OrderBy("a.fecha ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "metrics: build sales by day query")
	}

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "metrics: query sales by day")
	}
	defer rows.Close()

	sales := make([]domain.DailySales, 0)
	for rows.Next() {
		var (
			day   time.Time
			entry domain.DailySales
		)
		if err := rows.Scan(&day, &entry.Orders, &entry.Revenue); err != nil {
			return nil, errors.Wrap(err, "metrics: scan sales by day")
		}
		entry.Date = day.Format(time.DateOnly)
		sales = append(sales, entry)
	}

	return sales, errors.Wrap(rows.Err(), "metrics: iterate sales by day")
}

func (r *metricsRepository) OrderLines(ctx context.Context, dr domain.DateRange) ([]domain.OrderLine, error) {
	query, args, err := squirrel.
		Select("l.albaran_id", "l.producto_id", "l.cantidad", "l.precio_unitario").
		From(orderLinesTable + " l").
		Join(ordersTable + " a ON a.id = l.albaran_id").
		Where(squirrel.GtOrEq{"a.fecha": dr.FromString()}).
		Where(squirrel.LtOrEq{"a.fecha": dr.ToString()}).
		OrderBy("l.albaran_id ASC", "l.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "metrics: build order lines query")
	}

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "metrics: query order lines")
	}
	defer rows.Close()

	lines := make([]domain.OrderLine, 0)
	for rows.Next() {
		var line domain.OrderLine
		if err := rows.Scan(&line.OrderID, &line.ProductID, &line.Quantity, &line.UnitPrice); err != nil {
			return nil, errors.Wrap(err, "metrics: scan order line")
		}
		lines = append(lines, line)
	}

	return lines, errors.Wrap(rows.Err(), "metrics: iterate order lines")
}

func (r *metricsRepository) CustomerSpend(ctx context.Context, dr domain.DateRange) ([]domain.CustomerSpend, error) {
	query, args, err := squirrel.
		Select("a.cliente_id", "COUNT(a.id)", "COALESCE(SUM(a.total), 0)").
		From(ordersTable + " a").
		Where(squirrel.GtOrEq{"a.fecha": dr.FromString()}).
		Where(squirrel.LtOrEq{"a.fecha": dr.ToString()}).
		GroupBy("a.cliente_id").
		OrderBy("a.cliente_id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "metrics: build customer spend query")
	}

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "metrics: query customer spend")
	}
	defer rows.Close()

	spend := make([]domain.CustomerSpend, 0)
	for rows.Next() {
		var (
			customerID sql.NullInt64
			entry      domain.CustomerSpend
		)
		if err := rows.Scan(&customerID, &entry.Orders, &entry.Revenue); err != nil {
			return nil, errors.Wrap(err, "metrics: scan customer spend")
		}
		if customerID.Valid {
			id := customerID.Int64
			entry.CustomerID = &id
		}
		spend = append(spend, entry)
	}

	return spend, errors.Wrap(rows.Err(), "metrics: iterate customer spend")
}

func (r *metricsRepository) CustomerHistory(ctx context.Context, reference time.Time) ([]domain.CustomerHistory, error) {
	query, args, err := squirrel.
		Select("c.id", "MAX(a.fecha)", "COUNT(a.id)", "COALESCE(SUM(a.total), 0)").
		From(customersTable + " c").
		Join(ordersTable + " a ON a.cliente_id = c.id").
		Where(squirrel.LtOrEq{"a.fecha": reference.Format(time.DateOnly)}).
		GroupBy("c.id").
		OrderBy("c.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "metrics: build customer history query")
	}

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "metrics: query customer history")
	}
	defer rows.Close()

	history := make([]domain.CustomerHistory, 0)
	for rows.Next() {
		var (
			lastPurchase sql.NullTime
			entry        domain.CustomerHistory
		)
		if err := rows.Scan(&entry.CustomerID, &lastPurchase, &entry.Frequency, &entry.Monetary); err != nil {
			return nil, errors.Wrap(err, "metrics: scan customer history")
		}
		if lastPurchase.Valid {
			last := lastPurchase.Time
			entry.LastPurchase = &last
		}
		history = append(history, entry)
	}

	return history, errors.Wrap(rows.Err(), "metrics: iterate customer history")
}

func (r *metricsRepository) ProductNames(ctx context.Context, ids []int64) (map[int64]string, error) {
	names := make(map[int64]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	query, args, err := squirrel.
		Select("id", "nombre").
		From(productsTable).
		Where(squirrel.Eq{"id": ids}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "metrics: build product names query")
	}

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "metrics: query product names")
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id   int64
			name sql.NullString
		)
		if err := rows.Scan(&id, &name); err != nil {
			return nil, errors.Wrap(err, "metrics: scan product name")
		}
		if name.Valid && name.String != "" {
			names[id] = name.String
		}
	}

	return names, errors.Wrap(rows.Err(), "metrics: iterate product names")
}
