package format

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"shopify-mcp-layer/internal/infrastructure/shopify"
)

const noItems = "No items found."

type tableSpec struct {
	columns []string
	row     func(item map[string]any) []string
}

// tableSpecs picks the columns worth a model's attention per entity. Row
// funcs read the internal-cased keys the executor produces.
var tableSpecs = map[Entity]tableSpec{
	Products: {
		columns: []string{"ID", "Title", "Vendor", "Status", "Variants"},
		row: func(item map[string]any) []string {
			variants, _ := item["variants"].([]any)
			return []string{str(item, "id"), str(item, "title"), str(item, "vendor"), str(item, "status"), fmt.Sprint(len(variants))}
		},
	},
	Orders: {
		columns: []string{"ID", "Name", "Created", "Financial Status", "Fulfillment Status", "Total"},
		row: func(item map[string]any) []string {
			return []string{str(item, "id"), str(item, "name"), str(item, "createdAt"), str(item, "financialStatus"), str(item, "fulfillmentStatus"), str(item, "totalPrice")}
		},
	},
	DraftOrders: {
		columns: []string{"ID", "Name", "Status", "Total"},
		row: func(item map[string]any) []string {
			return []string{str(item, "id"), str(item, "name"), str(item, "status"), str(item, "totalPrice")}
		},
	},
	Customers: {
		columns: []string{"ID", "Email", "Name", "Orders", "Total Spent"},
		row: func(item map[string]any) []string {
			name := strings.TrimSpace(str(item, "firstName") + " " + str(item, "lastName"))
			return []string{str(item, "id"), str(item, "email"), name, str(item, "ordersCount"), str(item, "totalSpent")}
		},
	},
	InventoryItems: {
		columns: []string{"ID", "SKU", "Tracked", "Cost"},
		row: func(item map[string]any) []string {
			return []string{str(item, "id"), str(item, "sku"), str(item, "tracked"), str(item, "cost")}
		},
	},
	InventoryLevels: {
		columns: []string{"Inventory Item", "Location", "Available"},
		row: func(item map[string]any) []string {
			return []string{str(item, "inventoryItemId"), str(item, "locationId"), str(item, "available")}
		},
	},
	Locations: {
		columns: []string{"ID", "Name", "City", "Country", "Active"},
		row: func(item map[string]any) []string {
			return []string{str(item, "id"), str(item, "name"), str(item, "city"), str(item, "countryCode"), str(item, "active")}
		},
	},
	Fulfillments: {
		columns: []string{"ID", "Order", "Status", "Tracking"},
		row: func(item map[string]any) []string {
			return []string{str(item, "id"), str(item, "orderId"), str(item, "status"), str(item, "trackingNumber")}
		},
	},
	Webhooks: {
		columns: []string{"ID", "Topic", "Address", "Format"},
		row: func(item map[string]any) []string {
			return []string{str(item, "id"), str(item, "topic"), str(item, "address"), str(item, "format")}
		},
	},
	Themes: {
		columns: []string{"ID", "Name", "Role"},
		row: func(item map[string]any) []string {
			return []string{str(item, "id"), str(item, "name"), str(item, "role")}
		},
	},
	Assets: {
		columns: []string{"Key", "Content Type", "Size"},
		row: func(item map[string]any) []string {
			return []string{str(item, "key"), str(item, "contentType"), str(item, "size")}
		},
	},
	Collections: {
		columns: []string{"ID", "Title", "Handle", "Updated"},
		row: func(item map[string]any) []string {
			return []string{str(item, "id"), str(item, "title"), str(item, "handle"), str(item, "updatedAt")}
		},
	},
	PriceRules: {
		columns: []string{"ID", "Title", "Value Type", "Value", "Starts"},
		row: func(item map[string]any) []string {
			return []string{str(item, "id"), str(item, "title"), str(item, "valueType"), str(item, "value"), str(item, "startsAt")}
		},
	},
	DiscountCodes: {
		columns: []string{"ID", "Code", "Usage Count"},
		row: func(item map[string]any) []string {
			return []string{str(item, "id"), str(item, "code"), str(item, "usageCount")}
		},
	},
	Metafields: {
		columns: []string{"ID", "Namespace", "Key", "Type", "Value"},
		row: func(item map[string]any) []string {
			return []string{str(item, "id"), str(item, "namespace"), str(item, "key"), str(item, "type"), str(item, "value")}
		},
	},
	Policies: {
		columns: []string{"Title", "Handle", "Updated"},
		row: func(item map[string]any) []string {
			return []string{str(item, "title"), str(item, "handle"), str(item, "updatedAt")}
		},
	},
}

func pageMarkdown(page *shopify.Page, entity Entity) string {
	if page == nil || len(page.Items) == 0 {
		return noItems
	}

	spec, ok := tableSpecs[entity]
	if !ok {
		spec = genericSpec(page.Items)
	}

	var b strings.Builder
	b.WriteString("| " + strings.Join(spec.columns, " | ") + " |\n")
	b.WriteString("|" + strings.Repeat(" --- |", len(spec.columns)) + "\n")
	for _, raw := range page.Items {
		item, ok := raw.(map[string]any)
		if !ok {
			item = map[string]any{"value": raw}
		}
		cells := spec.row(item)
		for i, c := range cells {
			cells[i] = cell(c)
		}
		b.WriteString("| " + strings.Join(cells, " | ") + " |\n")
	}

	b.WriteString(fmt.Sprintf("\nShowing %d item(s).", page.Count))
	if page.HasMore {
		b.WriteString(" More results may be available.")
	}
	if page.NextCursor != "" {
		b.WriteString(fmt.Sprintf(" Next page cursor: `%s`.", page.NextCursor))
	}
	return b.String()
}

// genericSpec derives columns from the first item's keys, sorted and capped
// so an unfamiliar payload still renders as a readable table.
func genericSpec(items []any) tableSpec {
	const maxColumns = 5

	first, ok := items[0].(map[string]any)
	if !ok {
		return tableSpec{
			columns: []string{"Value"},
			row:     func(item map[string]any) []string { return []string{str(item, "value")} },
		}
	}

	keys := make([]string, 0, len(first))
	for key := range first {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	if len(keys) > maxColumns {
		keys = keys[:maxColumns]
	}

	return tableSpec{
		columns: keys,
		row: func(item map[string]any) []string {
			out := make([]string, len(keys))
			for i, key := range keys {
				out[i] = scalar(item[key])
			}
			return out
		},
	}
}

// scalar renders any value on a single line, collapsing nested structures
// into compact JSON.
func scalar(v any) string {
	switch v.(type) {
	case map[string]any, []any:
		out, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(out)
	default:
		if v == nil {
			return ""
		}
		return display(v)
	}
}

func itemMarkdown(raw any, entity Entity) string {
	item, ok := raw.(map[string]any)
	if !ok {
		return scalar(raw)
	}

	keys := make([]string, 0, len(item))
	for key := range item {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("## " + heading(item, entity) + "\n\n")
	for _, key := range keys {
		switch v := item[key].(type) {
		case map[string]any, []any:
			encoded, err := json.MarshalIndent(v, "", "  ")
			if err != nil {
				continue
			}
			b.WriteString(fmt.Sprintf("- **%s**:\n\n```json\n%s\n```\n", key, encoded))
		default:
			b.WriteString(fmt.Sprintf("- **%s**: %s\n", key, scalar(v)))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func heading(item map[string]any, entity Entity) string {
	for _, key := range []string{"title", "name", "key"} {
		if v := str(item, key); v != "" {
			return v
		}
	}
	if id := str(item, "id"); id != "" {
		return string(entity) + " " + id
	}
	return string(entity)
}

// cell keeps table layout intact when values carry pipes or newlines.
func cell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}
