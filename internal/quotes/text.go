package quotes

import (
	"strings"

	"github.com/Simplici0/listing-pricer/internal/pricing"
)

const rule = "===================="

// FormatSheet renders the plain-text price and weight block of a sheet. A sheet without
// results renders nothing.
func FormatSheet(sheet pricing.Sheet) string {
	if len(sheet.Results) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("===== Price Information =====\n")
	b.WriteString("SKU : PRICE : COM\n")
	for _, r := range sheet.Results {
		b.WriteString(r.Line())
		b.WriteString(r.Annotation())
		b.WriteString("\n\n")
	}
	b.WriteString("\n===== Weight Information =====\n")
	b.WriteString(sheet.WeightInfo())
	b.WriteString("\n")
	b.WriteString(rule)
	b.WriteString("\n")
	return b.String()
}

// FormatText renders a stored quote with a short header followed by its sheet.
func FormatText(q Quote) string {
	var b strings.Builder
	b.WriteString(rule)
	b.WriteString("\n")
	b.WriteString("Quote : ")
	b.WriteString(q.ID.String())
	b.WriteString("\nListing : ")
	b.WriteString(q.ListingID)
	if q.Title != "" {
		b.WriteString("\nTitle : ")
		b.WriteString(q.Title)
	}
	b.WriteString("\nCreated : ")
	b.WriteString(q.CreatedAt.UTC().Format("2006-01-02 15:04:05"))
	b.WriteString("\n")
	b.WriteString(rule)
	b.WriteString("\n")
	b.WriteString(FormatSheet(q.Sheet))
	return b.String()
}
