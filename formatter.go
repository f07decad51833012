package birdtab

import (
	"fmt"
	"sort"
	"strings"
)

const unknownOrder = "(unknown)"

// FormatOrderBreakdown formats per-order record counts sorted by order name.
// Records without an order are counted under "(unknown)".
func FormatOrderBreakdown(records []*Record) string {
	if len(records) == 0 {
		return ""
	}

	counts := make(map[string]int)
	for _, r := range records {
		counts[displayOrder(r.Order)]++
	}

	orders := make([]string, 0, len(counts))
	for order := range counts {
		orders = append(orders, order)
	}
	sort.Strings(orders)

	var b strings.Builder
	b.WriteString("Breakdown by Order:\n")
	for _, order := range orders {
		fmt.Fprintf(&b, "  %-20s: %4d species\n", order, counts[order])
	}
	return b.String()
}

// FormatSamples formats up to perOrder records from each run of
// consecutive records sharing an order, in encounter order.
func FormatSamples(records []*Record, perOrder int) string {
	if len(records) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("Sample species extracted:\n")
	shown := 0
	for i, r := range records {
		if i == 0 || r.Order != records[i-1].Order {
			fmt.Fprintf(&b, "\n  %s:\n", displayOrder(r.Order))
			shown = 0
		}
		if shown < perOrder {
			fmt.Fprintf(&b, "    - %s (%s) [%s]\n", r.CommonName, r.ScientificName, displayStatus(r.IUCNStatus))
			shown++
		}
	}
	return b.String()
}

// FormatRecords lists every record on its own line.
func FormatRecords(records []*Record) string {
	if len(records) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("Extracted birds:\n")
	for _, r := range records {
		fmt.Fprintf(&b, "  - %s (%s) - %s\n", r.CommonName, r.ScientificName, displayStatus(r.IUCNStatus))
	}
	return b.String()
}

func displayOrder(order string) string {
	if order == "" {
		return unknownOrder
	}
	return order
}

func displayStatus(s IUCNStatus) string {
	if s == "" {
		return "N/A"
	}
	return string(s)
}
