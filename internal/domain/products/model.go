package products

import (
	"strings"
	"time"
)

type Product struct {
	ID       int64
	Name     string
	Quantity int
	Category *string
	AddedAt  time.Time
}

func (p Product) CategoryName() string {
	if p.Category == nil || *p.Category == "" {
		return "не указана"
	}
	return *p.Category
}

// LowStock товар с количеством ниже порога предупреждения
func LowStock(quantity, threshold int) bool {
	return quantity < threshold
}

// Filter поиск без учёта регистра по подстроке в названии ИЛИ категории.
// Порядок исходного списка сохраняется.
func Filter(list []Product, term string) []Product {
	t := strings.ToLower(strings.TrimSpace(term))
	if t == "" {
		return nil
	}
	var out []Product
	for _, p := range list {
		nameMatch := strings.Contains(strings.ToLower(p.Name), t)
		catMatch := p.Category != nil && strings.Contains(strings.ToLower(*p.Category), t)
		if nameMatch || catMatch {
			out = append(out, p)
		}
	}
	return out
}
