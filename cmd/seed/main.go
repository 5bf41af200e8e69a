package main

import (
	"context"
	"database/sql"
	"flag"
	"math/rand"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/furniture-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/furniture-manager-api/infrastructure/repository"
	"github.com/vfg2006/furniture-manager-api/internal/config"
	"github.com/vfg2006/furniture-manager-api/internal/domain"
	"github.com/vfg2006/furniture-manager-api/internal/usecases/authenticating"
	"github.com/vfg2006/furniture-manager-api/pkg/log"
	"github.com/vfg2006/furniture-manager-api/pkg/utils"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

type options struct {
	days          int
	maxPerDay     int
	seed          int64
	adminEmail    string
	adminPassword string
}

func main() {
	opts := options{}
	flag.IntVar(&opts.days, "days", 365, "dias de histórico de albaranes a gerar")
	flag.IntVar(&opts.maxPerDay, "max-per-day", 4, "máximo de albaranes por dia útil")
	flag.Int64Var(&opts.seed, "seed", 42, "semente do gerador aleatório")
	flag.StringVar(&opts.adminEmail, "admin-email", "admin@muebles.local", "email do usuário administrador")
	flag.StringVar(&opts.adminPassword, "admin-password", "admin12345", "senha do usuário administrador")
	flag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}
	log.Configure(cfg.App.LogLevel, cfg.App.Env)

	ctx := context.Background()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	if err := createSchema(ctx, conn); err != nil {
		logrus.WithError(err).Fatal("Erro ao criar schema")
	}

	if err := seedAdmin(ctx, conn, cfg, opts); err != nil {
		logrus.WithError(err).Fatal("Erro ao criar usuário administrador")
	}

	if err := seedSales(ctx, conn, opts); err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar dados de demonstração")
	}

	logrus.Info("Seed concluído")
}

func createSchema(ctx context.Context, conn *postgres.Connection) error {
	for _, stmt := range schemaStatements {
		if _, err := conn.ExecContext(ctx, stmt); err != nil {
			return errors.Wrap(err, "schema")
		}
	}
	logrus.Infof("Schema verificado (%d statements)", len(schemaStatements))
	return nil
}

func seedAdmin(ctx context.Context, conn *postgres.Connection, cfg *config.Config, opts options) error {
	auth := authenticating.NewService(repository.NewUserRepository(conn), cfg)

	_, err := auth.CreateUser(ctx, &domain.User{
		Name:         "Administrador",
		Email:        opts.adminEmail,
		PasswordHash: opts.adminPassword,
		RoleID:       1,
	})
	if errors.Is(err, authenticating.ErrUserAlreadyExists) {
		logrus.WithField("email", opts.adminEmail).Info("Administrador já existe")
		return nil
	}
	if err != nil {
		return err
	}

	logrus.WithField("email", opts.adminEmail).Info("Administrador criado")
	return nil
}

// seedSales só carrega dados quando ainda não há albaranes
func seedSales(ctx context.Context, conn *postgres.Connection, opts options) error {
	var existing int
	if err := conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM albaranes").Scan(&existing); err != nil {
		return errors.Wrap(err, "count albaranes")
	}
	if existing > 0 {
		logrus.Infof("Já existem %d albaranes, dados de demonstração ignorados", existing)
		return nil
	}

	to := domain.DateOf(time.Now())
	from := to.AddDate(0, 0, -opts.days)
	orders := generateOrders(rand.New(rand.NewSource(opts.seed)), from, to, opts.maxPerDay)

	return conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		productIDs, err := insertProducts(ctx, tx)
		if err != nil {
			return err
		}

		customerIDs, err := insertCustomers(ctx, tx)
		if err != nil {
			return err
		}

		bar := progressbar.Default(int64(len(orders)), "albaranes")
		for _, o := range orders {
			if err := insertOrder(ctx, tx, o, productIDs, customerIDs); err != nil {
				return err
			}
			_ = bar.Add(1)
		}

		logrus.WithFields(logrus.Fields{
			"from":      from.Format(time.DateOnly),
			"to":        to.Format(time.DateOnly),
			"orders":    len(orders),
			"products":  len(productIDs),
			"customers": len(customerIDs),
		}).Info("Dados de demonstração carregados")
		return nil
	})
}

func insertProducts(ctx context.Context, tx *sql.Tx) ([]int64, error) {
	ids := make([]int64, 0, len(catalog))
	for _, p := range catalog {
		query, args, err := psql.
			Insert("productos").
			Columns("nombre", "descripcion", "precio").
			Values(p.Name, p.Description, p.Price.StringFixed(2)).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return nil, err
		}

		var id int64
		if err := tx.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
			return nil, errors.Wrapf(err, "insert producto %s", p.Name)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func insertCustomers(ctx context.Context, tx *sql.Tx) ([]int64, error) {
	ids := make([]int64, 0, len(customers))
	for _, c := range customers {
		query, args, err := psql.
			Insert("clientes").
			Columns("nombre", "email").
			Values(c.Name, c.Email).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return nil, err
		}

		var id int64
		if err := tx.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
			return nil, errors.Wrapf(err, "insert cliente %s", c.Name)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func insertOrder(ctx context.Context, tx *sql.Tx, o order, productIDs, customerIDs []int64) error {
	code, err := utils.DocumentCode("ALB")
	if err != nil {
		return err
	}

	var customerID any
	if o.Customer >= 0 {
		customerID = customerIDs[o.Customer]
	}

	query, args, err := psql.
		Insert("albaranes").
		Columns("fecha", "descripcion", "total", "cliente_id").
		Values(o.Date.Format(time.DateOnly), code, o.Total().StringFixed(2), customerID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return err
	}

	var orderID int64
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&orderID); err != nil {
		return errors.Wrap(err, "insert albaran")
	}

	lines := psql.Insert("lineas_albaran").Columns("albaran_id", "producto_id", "cantidad", "precio_unitario")
	for _, l := range o.Lines {
		lines = lines.Values(orderID, productIDs[l.Product], l.Quantity, l.UnitPrice.StringFixed(2))
	}

	query, args, err = lines.ToSql()
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(err, "insert lineas_albaran")
	}

	return nil
}
