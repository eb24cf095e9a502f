package invoice

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/Akk525/invoice-parser/constants"
)

// Auxiliary holds the secondary fields derived from the full text,
// independent of the primary field resolution.
type Auxiliary struct {
	PONumber     string
	PaymentTerms string
	Currency     string
}

var (
	poNumberRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)p\.?o\.?\s*#?\s*:?\s*([A-Za-z0-9\-_]+)`),
		regexp.MustCompile(`(?i)purchase\s*order\s*#?\s*:?\s*([A-Za-z0-9\-_]+)`),
		regexp.MustCompile(`(?i)order\s*#?\s*:?\s*([A-Za-z0-9\-_]+)`),
	}
	paymentTermsRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)terms?\s*:?\s*([A-Za-z0-9\s\-,]+)`),
		regexp.MustCompile(`(?i)payment\s*terms?\s*:?\s*([A-Za-z0-9\s\-,]+)`),
		regexp.MustCompile(`(?i)net\s*(\d+)`),
	}

	emailRe = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phoneRe = regexp.MustCompile(`\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
)

// ExtractAuxiliary runs the independent single-pass scans for purchase-order
// number, payment terms, and currency. Each short-circuits on first match.
func ExtractAuxiliary(text string, log *slog.Logger) Auxiliary {
	if log == nil {
		log = slog.Default()
	}
	var aux Auxiliary

	for _, re := range poNumberRes {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		value := strings.TrimSpace(m[1])
		// "PO Box 1630" is a postal address, not a purchase order.
		if strings.EqualFold(value, "box") {
			continue
		}
		aux.PONumber = value
		break
	}

	for _, re := range paymentTermsRes {
		if m := re.FindStringSubmatch(text); m != nil {
			aux.PaymentTerms = strings.TrimSpace(m[1])
			break
		}
	}

	for _, rule := range constants.CurrencyRules {
		if strings.Contains(text, rule.Token) {
			aux.Currency = rule.Code
			break
		}
	}

	log.Debug("auxiliary.ok",
		"po_number", aux.PONumber, "payment_terms", aux.PaymentTerms, "currency", aux.Currency)
	return aux
}

// ExtractVendorInfo scans the letterhead region (the first few lines) for
// contact details. First match wins per category.
func ExtractVendorInfo(text string, profile LayoutProfile, log *slog.Logger) VendorInfo {
	if log == nil {
		log = slog.Default()
	}

	addressRe, err := regexp.Compile(`(?i)` + strings.Join(profile.AddressMarkers, "|"))
	if err != nil {
		log.Warn("vendorinfo.address_pattern_error", "error", err)
		addressRe = nil
	}

	var info VendorInfo
	lines := strings.Split(text, "\n")
	if len(lines) > constants.HeaderScanLines {
		lines = lines[:constants.HeaderScanLines]
	}
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if info.Email == "" {
			if m := emailRe.FindString(line); m != "" {
				info.Email = m
			}
		}
		if info.Phone == "" {
			if m := phoneRe.FindString(line); m != "" {
				info.Phone = m
			}
		}
		if info.Address == "" && addressRe != nil && addressRe.MatchString(line) {
			info.Address = line
		}
	}

	log.Debug("vendorinfo.ok",
		"has_email", info.Email != "", "has_phone", info.Phone != "", "has_address", info.Address != "")
	return info
}
