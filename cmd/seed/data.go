package main

import (
	"math/rand"
	"time"

	"github.com/shopspring/decimal"
)

type product struct {
	Name        string
	Description string
	Price       decimal.Decimal
}

type customer struct {
	Name  string
	Email string
}

var catalog = []product{
	{"Sofá de cuero Milano", "Sofá 3 plazas en cuero marrón", decimal.RequireFromString("1200.00")},
	{"Mesa de comedor Oslo", "Mesa extensible de madera maciza", decimal.RequireFromString("850.00")},
	{"Silla ergonómica Berlin", "Silla de oficina con soporte lumbar", decimal.RequireFromString("320.00")},
	{"Armario ropero Roma", "Armario de 3 puertas con espejo", decimal.RequireFromString("990.00")},
	{"Cama King Size Madrid", "Cama de matrimonio con cabecero", decimal.RequireFromString("1450.00")},
	{"Mesa auxiliar Lisboa", "Mesa de centro en roble", decimal.RequireFromString("189.90")},
	{"Lámpara de pie Nápoles", "Lámpara de lectura regulable", decimal.RequireFromString("74.50")},
	{"Colchón Viscoflex", "Colchón viscoelástico 150x190", decimal.RequireFromString("499.00")},
	{"Estantería Bergen", "Estantería modular de 5 baldas", decimal.RequireFromString("145.00")},
}

var customers = []customer{
	{"María González", "maria.gonzalez@example.com"},
	{"Juan Pérez", "juan.perez@example.com"},
	{"Ana López", "ana.lopez@example.com"},
	{"Carlos Sánchez", "carlos.sanchez@example.com"},
	{"Lucía Martín", "lucia.martin@example.com"},
	{"Javier Ruiz", "javier.ruiz@example.com"},
	{"Elena Torres", "elena.torres@example.com"},
	{"Pablo Navarro", "pablo.navarro@example.com"},
	{"Sara Romero", "sara.romero@example.com"},
	{"Diego Castro", "diego.castro@example.com"},
	{"Carmen Ortega", "carmen.ortega@example.com"},
	{"Raúl Molina", "raul.molina@example.com"},
}

// companions são produtos frequentemente comprados juntos (índices do catálogo)
var companions = map[int]int{
	0: 5, // sofá -> mesa auxiliar
	4: 7, // cama -> colchón
	1: 2, // mesa de comedor -> silla
}

type orderLine struct {
	Product   int
	Quantity  int
	UnitPrice decimal.Decimal
}

type order struct {
	Date     time.Time
	Customer int // -1 para venda sem cliente
	Lines    []orderLine
}

func (o order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range o.Lines {
		total = total.Add(l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return total.Round(2)
}

// generateOrders cria de 0 a maxPerDay albaranes por dia no intervalo [from, to]
func generateOrders(rng *rand.Rand, from, to time.Time, maxPerDay int) []order {
	var orders []order

	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		count := rng.Intn(maxPerDay + 1)
		// fim de semana vende mais
		if day.Weekday() == time.Saturday || day.Weekday() == time.Sunday {
			count++
		}

		for i := 0; i < count; i++ {
			orders = append(orders, order{
				Date:     day,
				Customer: pickCustomer(rng),
				Lines:    pickLines(rng),
			})
		}
	}

	return orders
}

func pickCustomer(rng *rand.Rand) int {
	if rng.Intn(10) == 0 {
		return -1
	}
	// clientes do início da lista compram mais, para o RFM ter segmentos distintos
	a, b := rng.Intn(len(customers)), rng.Intn(len(customers))
	return min(a, b)
}

func pickLines(rng *rand.Rand) []orderLine {
	used := map[int]bool{}
	lines := make([]orderLine, 0, 3)

	add := func(idx int) {
		if used[idx] {
			return
		}
		used[idx] = true
		lines = append(lines, orderLine{
			Product:   idx,
			Quantity:  1 + rng.Intn(2),
			UnitPrice: catalog[idx].Price,
		})
	}

	first := rng.Intn(len(catalog))
	add(first)

	if companion, ok := companions[first]; ok && rng.Intn(3) > 0 {
		add(companion)
	}
	if rng.Intn(4) == 0 {
		add(rng.Intn(len(catalog)))
	}

	return lines
}
