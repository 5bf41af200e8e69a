package domain

import (
	"errors"
	"fmt"
	"time"
)

// DefaultLookbackDays é a janela padrão quando nenhuma data é informada
const DefaultLookbackDays = 180

var ErrInvalidDateRange = errors.New("date_from não pode ser posterior a date_to")

// DateRange é um intervalo fechado de datas de calendário [From, To]
type DateRange struct {
	From time.Time
	To   time.Time
}

// DateOf trunca um instante para a data de calendário (meia-noite UTC)
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func NewDateRange(from, to time.Time) (DateRange, error) {
	r := DateRange{From: DateOf(from), To: DateOf(to)}
	if r.From.After(r.To) {
		return DateRange{}, ErrInvalidDateRange
	}
	return r, nil
}

// ResolveDateRange aplica os padrões: to = hoje, from = to - lookbackDays.
func ResolveDateRange(from, to *time.Time, today time.Time, lookbackDays int) (DateRange, error) {
	if lookbackDays <= 0 {
		lookbackDays = DefaultLookbackDays
	}

	end := DateOf(today)
	if to != nil {
		end = DateOf(*to)
	}

	start := end.AddDate(0, 0, -lookbackDays)
	if from != nil {
		start = DateOf(*from)
	}

	return NewDateRange(start, end)
}

// Days retorna a quantidade de dias do intervalo, inclusive nas duas pontas
func (r DateRange) Days() int {
	return int(r.To.Sub(r.From).Hours()/24) + 1
}

// Previous retorna o período imediatamente anterior com a mesma duração
func (r DateRange) Previous() DateRange {
	prevTo := r.From.AddDate(0, 0, -1)
	prevFrom := prevTo.AddDate(0, 0, -(r.Days() - 1))
	return DateRange{From: prevFrom, To: prevTo}
}

func (r DateRange) FromString() string {
	return r.From.Format(time.DateOnly)
}

func (r DateRange) ToString() string {
	return r.To.Format(time.DateOnly)
}

func (r DateRange) String() string {
	return fmt.Sprintf("%s → %s", r.FromString(), r.ToString())
}

func (r DateRange) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf(`{"from":%q,"to":%q}`, r.FromString(), r.ToString())), nil
}
