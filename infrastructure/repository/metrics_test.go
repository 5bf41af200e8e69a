package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/furniture-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/furniture-manager-api/internal/domain"
)

func newMetricsRepo(t *testing.T) (*metricsRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	conn := &postgres.Connection{DB: db}
	return &metricsRepository{conn: conn, q: conn}, mock
}

var january = domain.DateRange{
	From: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	To:   time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
}

func TestMetricsRepository_SalesByDay(t *testing.T) {
	repo, mock := newMetricsRepo(t)

	mock.ExpectQuery(`SELECT a.fecha, COUNT\(a.id\), COALESCE\(SUM\(a.total\), 0\) FROM albaranes a WHERE (.+) GROUP BY a.fecha ORDER BY a.fecha ASC`).
		WithArgs("2025-01-01", "2025-01-31").
		WillReturnRows(sqlmock.NewRows([]string{"fecha", "count", "sum"}).
			AddRow(time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC), int64(2), 2050.0).
			AddRow(time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC), int64(1), 320.0))

	sales, err := repo.SalesByDay(context.Background(), january)
	require.NoError(t, err)
	assert.Equal(t, []domain.DailySales{
		{Date: "2025-01-02", Orders: 2, Revenue: 2050},
		{Date: "2025-01-05", Orders: 1, Revenue: 320},
	}, sales)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMetricsRepository_SalesByDayEmpty(t *testing.T) {
	repo, mock := newMetricsRepo(t)

	mock.ExpectQuery(`FROM albaranes a`).
		WillReturnRows(sqlmock.NewRows([]string{"fecha", "count", "sum"}))

	sales, err := repo.SalesByDay(context.Background(), january)
	require.NoError(t, err)
	assert.NotNil(t, sales)
	assert.Empty(t, sales)
}

func TestMetricsRepository_OrderLines(t *testing.T) {
	repo, mock := newMetricsRepo(t)

	mock.ExpectQuery(`SELECT l.albaran_id, l.producto_id, l.cantidad, l.precio_unitario FROM lineas_albaran l JOIN albaranes a ON a.id = l.albaran_id`).
		WithArgs("2025-01-01", "2025-01-31").
		WillReturnRows(sqlmock.NewRows([]string{"albaran_id", "producto_id", "cantidad", "precio_unitario"}).
			AddRow(int64(10), int64(1), int64(1), 1200.0).
			AddRow(int64(10), int64(2), int64(2), 850.0))

	lines, err := repo.OrderLines(context.Background(), january)
	require.NoError(t, err)
	assert.Equal(t, []domain.OrderLine{
		{OrderID: 10, ProductID: 1, Quantity: 1, UnitPrice: 1200},
		{OrderID: 10, ProductID: 2, Quantity: 2, UnitPrice: 850},
	}, lines)
}

func TestMetricsRepository_CustomerSpendKeepsAnonymousGroup(t *testing.T) {
	repo, mock := newMetricsRepo(t)

	mock.ExpectQuery(`SELECT a.cliente_id, (.+) FROM albaranes a WHERE (.+) GROUP BY a.cliente_id`).
		WithArgs("2025-01-01", "2025-01-31").
		WillReturnRows(sqlmock.NewRows([]string{"cliente_id", "count", "sum"}).
			AddRow(int64(7), int64(3), 900.0).
			AddRow(nil, int64(1), 100.0))

	spend, err := repo.CustomerSpend(context.Background(), january)
	require.NoError(t, err)
	require.Len(t, spend, 2)
	assert.Equal(t, int64(7), *spend[0].CustomerID)
	assert.Nil(t, spend[1].CustomerID)
	assert.Equal(t, 1, spend[1].Orders)
}

func TestMetricsRepository_CustomerHistory(t *testing.T) {
	repo, mock := newMetricsRepo(t)
	last := time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT c.id, MAX\(a.fecha\), (.+) FROM clientes c JOIN albaranes a ON a.cliente_id = c.id WHERE a.fecha <= \$1`).
		WithArgs("2025-01-31").
		WillReturnRows(sqlmock.NewRows([]string{"id", "max", "count", "sum"}).
			AddRow(int64(1), last, int64(4), 3200.0).
			AddRow(int64(2), nil, int64(0), 0.0))

	history, err := repo.CustomerHistory(context.Background(), january.To)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, last, *history[0].LastPurchase)
	assert.Equal(t, 4, history[0].Frequency)
	assert.Nil(t, history[1].LastPurchase)
}

func TestMetricsRepository_ProductNames(t *testing.T) {
	repo, mock := newMetricsRepo(t)

	names, err := repo.ProductNames(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, names)

	mock.ExpectQuery(`SELECT id, nombre FROM productos WHERE id IN \(\$1,\$2\)`).
		WithArgs(int64(1), int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "nombre"}).
			AddRow(int64(1), "Sofá de cuero Milano").
			AddRow(int64(2), nil))

	names, err = repo.ProductNames(context.Background(), []int64{1, 2})
	require.NoError(t, err)
	assert.Equal(t, map[int64]string{1: "Sofá de cuero Milano"}, names)
}

func TestMetricsRepository_QueryError(t *testing.T) {
	repo, mock := newMetricsRepo(t)

	mock.ExpectQuery(`FROM albaranes a`).WillReturnError(errors.New("connection reset"))

	_, err := repo.CustomerSpend(context.Background(), january)
	assert.ErrorContains(t, err, "metrics: query customer spend")
	assert.ErrorContains(t, err, "connection reset")
}

func TestMetricsRepository_WithSnapshot(t *testing.T) {
	repo, mock := newMetricsRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM albaranes a`).
		WillReturnRows(sqlmock.NewRows([]string{"fecha", "count", "sum"}))
	mock.ExpectCommit()

	err := repo.WithSnapshot(context.Background(), func(reader MetricsReader) error {
		_, err := reader.SalesByDay(context.Background(), january)
		return err
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
