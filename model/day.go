package model

import "fmt"

// DayOrder maps a day name to its position in the week, starting from 1.
type DayOrder map[string]int

var DefaultDays = []string{"Понедельник", "Вторник", "Среда", "Четверг", "Пятница", "Суббота"}

func DefaultDayOrder() DayOrder {
	order, _ := NewDayOrder(DefaultDays)
	return order
}

func NewDayOrder(days []string) (DayOrder, error) {
	order := make(DayOrder, len(days))
	for i, d := range days {
		if d == "" {
			return nil, fmt.Errorf("empty day name at position %d", i+1)
		}
		if _, ok := order[d]; ok {
			return nil, fmt.Errorf("duplicate day name %q", d)
		}
		order[d] = i + 1
	}
	return order, nil
}

func (o DayOrder) Rank(day string) (int, bool) {
	r, ok := o[day]
	return r, ok
}
