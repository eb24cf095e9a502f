package invoice

import (
	"log/slog"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/Akk525/invoice-parser/constants"
	"github.com/Akk525/invoice-parser/internal/extract"
)

var (
	// textItemRe matches a line-item rendered as plain text:
	// <description> <integer quantity> <currency amount> <currency amount>.
	textItemRe = regexp.MustCompile(`^([A-Za-z\s]+)\s+(\d+)\s+(US\$[0-9,]+\.?[0-9]*)\s+(US\$[0-9,]+\.?[0-9]*)$`)
	// servicePeriodRe matches the date range sometimes printed under an item.
	servicePeriodRe = regexp.MustCompile(`([A-Za-z]{3}\s+\d{1,2},\s+\d{4})\s*[–-]\s*(\d{1,2}\s+[A-Za-z]{3}\s+\d{4})`)
)

// ReconstructLineItems builds canonical line items from the detected tables,
// falling back to raw text lines when no table yields anything usable.
func ReconstructLineItems(tables []extract.Table, text string, log *slog.Logger) []LineItem {
	if log == nil {
		log = slog.Default()
	}

	var items []LineItem
	for _, table := range tables {
		for _, row := range table.Rows {
			item := lineItemFromRow(row)
			if item.fieldCount() >= 2 {
				items = append(items, item)
			}
		}
	}
	if len(items) > 0 {
		log.Debug("lineitems.from_tables", "count", len(items))
		return items
	}

	if text == "" {
		return nil
	}
	items = lineItemsFromText(text, log)
	if len(items) > 0 {
		log.Debug("lineitems.from_text", "count", len(items))
	}
	return items
}

// lineItemFromRow classifies each column by header keyword. Keys are walked
// in sorted order so duplicate-keyword headers resolve deterministically.
func lineItemFromRow(row map[string]string) LineItem {
	keys := make([]string, 0, len(row))
	for k := range row {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var item LineItem
	for _, key := range keys {
		value := strings.TrimSpace(row[key])
		if key == "" || value == "" {
			continue
		}
		keyLower := strings.ToLower(key)
		switch {
		case containsAny(keyLower, constants.DescriptionHeaders):
			item.Description = value
		case containsAny(keyLower, constants.QuantityHeaders):
			qty := NormalizeAmount(value)
			item.Quantity = &qty
		case containsAny(keyLower, constants.UnitPriceHeaders):
			price := NormalizeAmount(value)
			item.UnitPrice = &price
		case containsAny(keyLower, constants.TotalHeaders):
			total := NormalizeAmount(value)
			item.TotalAmount = &total
		}
	}
	return item
}

// lineItemsFromText reconstructs items from lines shaped like
// "Cloud hosting 3 US$10.00 US$30.00", attaching a service period when the
// following line carries a date range. Some documents render line items as
// plain text with no extractable table structure at all.
func lineItemsFromText(text string, log *slog.Logger) []LineItem {
	var items []LineItem
	lines := strings.Split(text, "\n")

	for i, line := range lines {
		line = strings.TrimSpace(line)
		m := textItemRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		qty := ParsedAmount(float64(mustInt(m[2])))
		unitPrice := NormalizeAmount(m[3])
		totalAmount := NormalizeAmount(m[4])
		item := LineItem{
			Description: strings.TrimSpace(m[1]),
			Quantity:    &qty,
			UnitPrice:   &unitPrice,
			TotalAmount: &totalAmount,
		}

		if i+1 < len(lines) {
			next := strings.TrimSpace(lines[i+1])
			if dm := servicePeriodRe.FindStringSubmatch(next); dm != nil {
				item.ServicePeriod = dm[1] + " - " + dm[2]
			}
		}

		items = append(items, item)
		log.Debug("lineitems.text_item",
			"description", item.Description, "quantity", m[2], "service_period", item.ServicePeriod)
	}
	return items
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

func mustInt(s string) int {
	n, _ := strconv.Atoi(s) // guarded by \d+ in the pattern
	return n
}
