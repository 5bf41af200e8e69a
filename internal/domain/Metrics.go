package domain

import "time"

// Segmentos RFM
const (
	SegmentVIP        = "VIP"
	SegmentGrowing    = "Growing"
	SegmentAtRisk     = "At risk"
	SegmentOccasional = "Occasional"
)

// RecencyUnknownDays é usado quando o cliente não possui data de última compra
const RecencyUnknownDays = 99999

type DailySales struct {
	Date    string  `json:"date"`
	Orders  int     `json:"orders"`
	Revenue float64 `json:"revenue"`
}

type ProductRanking struct {
	ProductID int64   `json:"product_id"`
	Name      string  `json:"name"`
	Qty       int     `json:"qty"`
	Revenue   float64 `json:"revenue"`
}

type Averages struct {
	Orders         int     `json:"orders"`
	Revenue        float64 `json:"revenue"`
	AOV            float64 `json:"aov"`
	AvgPerCustomer float64 `json:"avg_per_customer"`
}

type BasketPair struct {
	AID        int64   `json:"a_id"`
	AName      string  `json:"a_name"`
	BID        int64   `json:"b_id"`
	BName      string  `json:"b_name"`
	Support    int     `json:"support"`
	Confidence float64 `json:"confidence"`
	Lift       float64 `json:"lift"`
}

type RFMCustomer struct {
	CustomerID  int64   `json:"cliente_id"`
	RecencyDays int     `json:"recency_days"`
	Frequency   int     `json:"frequency"`
	Monetary    float64 `json:"monetary"`
	R           int     `json:"R"`
	F           int     `json:"F"`
	M           int     `json:"M"`
	Segment     string  `json:"segment"`
}

type RFM struct {
	Summary    map[string]int `json:"summary"`
	ByCustomer []RFMCustomer  `json:"by_customer"`
}

// Metrics é o snapshot analítico de um intervalo
type Metrics struct {
	Range       DateRange        `json:"range"`
	SalesByDay  []DailySales     `json:"sales_by_day"`
	TopProducts []ProductRanking `json:"top_products"`
	Averages    Averages         `json:"averages"`
	BasketPairs []BasketPair     `json:"basket_pairs"`
	RFM         RFM              `json:"rfm"`
}

// OrderLine é uma linha de albarán dentro do intervalo consultado
type OrderLine struct {
	OrderID   int64
	ProductID int64
	Quantity  int
	UnitPrice float64
}

// CustomerSpend agrega os albaranes de um cliente no intervalo.
// CustomerID nulo representa albaranes sem cliente.
type CustomerSpend struct {
	CustomerID *int64
	Orders     int
	Revenue    float64
}

// CustomerHistory é o histórico completo do cliente até a data de referência
type CustomerHistory struct {
	CustomerID   int64
	LastPurchase *time.Time
	Frequency    int
	Monetary     float64
}
