package handler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rl1809/storefront/internal/core/domain"
)

var ErrInvalidNumber = errors.New("invalid number")

// formatNumber prints the shortest exact decimal form: 150, 4.5.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func FormatProduct(p domain.Product, currency string) string {
	return fmt.Sprintf("%s (%s) - %s %s, rating: %s/5",
		p.Title, p.Category, formatNumber(p.Price), currency, formatNumber(p.Rating))
}

func FormatOrder(o domain.Order, currency string) string {
	return fmt.Sprintf("Order: %d items, total: %s %s, status: %s",
		o.ItemCount(), formatNumber(o.TotalPrice), currency, o.Status)
}

// ParseIndices parses a comma-separated index list such as "0, 2,2".
// A blank line is an empty selection; any unparsable token fails the whole list.
func ParseIndices(line string) ([]int, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return []int{}, nil
	}

	parts := strings.Split(line, ",")
	indices := make([]int, 0, len(parts))
	for _, part := range parts {
		idx, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidNumber, part)
		}
		indices = append(indices, idx)
	}
	return indices, nil
}

func parseNumber(line string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, line)
	}
	return v, nil
}
