package invoice

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// LayoutProfile carries the letterhead vocabulary the structural name
// strategies are tuned to. The defaults target one vendor's invoice layout;
// swap the profile (or register extra strategies) to handle another.
type LayoutProfile struct {
	// VendorToken is the full vendor name as it appears in the letterhead.
	VendorToken string
	// VendorKeyword is a looser single-word probe for standalone name lines.
	VendorKeyword string
	// BillToMarker introduces the customer block.
	BillToMarker string
	// AddressNoise marks lines to skip while hunting the customer name:
	// postal boxes, city/region names, email/domain fragments.
	AddressNoise []string
	// AddressMarkers are patterns identifying the vendor's own address line.
	AddressMarkers []string
}

func DefaultLayoutProfile() LayoutProfile {
	return LayoutProfile{
		VendorToken:   "khan academy",
		VendorKeyword: "khan",
		BillToMarker:  "bill to",
		AddressNoise: []string{
			"po box", "mountain view", "california", "united states",
			"@", ".com", ".org", "honors college", "west lafayette", "indiana",
		},
		AddressMarkers: []string{`po\s+box\s+\d+`, `mountain\s+view`, `california`},
	}
}

var (
	lettersOnlyRe = regexp.MustCompile(`^[A-Za-z\s]+$`)
	poBoxNameRe   = regexp.MustCompile(`(?im)po\s+box\s+\d+\s+([A-Za-z\s]+?)(?:\s+\d+\s+[A-Za-z\s]+|$)`)
)

// markerPattern turns the bill-to marker into a whitespace-tolerant pattern.
func (p LayoutProfile) markerPattern() string {
	words := strings.Fields(p.BillToMarker)
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(w)
	}
	return strings.Join(quoted, `\s+`)
}

// vendorAnchorLine finds a letterhead line carrying both the vendor token
// and the bill-to marker and extracts whatever precedes the marker.
func (p LayoutProfile) vendorAnchorLine(text string) (string, bool) {
	re, err := regexp.Compile(`(?i)^(.*?)\s+` + p.markerPattern())
	if err != nil {
		return "", false
	}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lower := strings.ToLower(line)
		if !strings.Contains(lower, p.VendorToken) || !strings.Contains(lower, p.BillToMarker) {
			continue
		}
		if m := re.FindStringSubmatch(line); m != nil {
			return strings.TrimSpace(m[1]), true
		}
	}
	return "", false
}

// vendorStandaloneLine finds a line consisting only of letters and spaces
// that contains the vendor keyword.
func (p LayoutProfile) vendorStandaloneLine(text string) (string, bool) {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if lettersOnlyRe.MatchString(line) && strings.Contains(strings.ToLower(line), p.VendorKeyword) {
			return line, true
		}
	}
	return "", false
}

// vendorAnywhere is the loosest probe: any line mentioning the vendor token.
func (p LayoutProfile) vendorAnywhere(text string) (string, bool) {
	for _, line := range strings.Split(text, "\n") {
		if strings.Contains(strings.ToLower(line), p.VendorToken) {
			return titleCase(p.VendorToken), true
		}
	}
	return "", false
}

// customerAfterBillTo scans the lines following the bill-to marker, skips
// address and contact noise, and returns the first plain name line
// (letters and spaces only, at least two words).
func (p LayoutProfile) customerAfterBillTo(text string) (string, bool) {
	billToSeen := false
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)

		if strings.Contains(strings.ToLower(line), p.BillToMarker) {
			billToSeen = true
			continue
		}
		if !billToSeen || line == "" {
			continue
		}

		lower := strings.ToLower(line)
		noisy := false
		for _, kw := range p.AddressNoise {
			if strings.Contains(lower, kw) {
				noisy = true
				break
			}
		}
		if noisy {
			continue
		}
		if lettersOnlyRe.MatchString(line) && len(strings.Fields(line)) >= 2 {
			return line, true
		}
	}
	return "", false
}

// customerFromPOBox recovers a name trailing a "PO Box <number>" token when
// the text collapses the address block onto one line.
func (p LayoutProfile) customerFromPOBox(text string) (string, bool) {
	m := poBoxNameRe.FindStringSubmatch(strings.ToLower(text))
	if m == nil {
		return "", false
	}
	name := strings.TrimSpace(m[1])
	if name == "" {
		return "", false
	}
	return titleCase(name), true
}

// invoiceNumberShapes are the id token shapes tried, in order, when no
// labeled rule matched. The broad trailing digit run is deliberately last.
var invoiceNumberShapes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)invoice\s*number\s*([A-Fa-f0-9]{8}[0-9]{4})`),
	regexp.MustCompile(`(?i)([A-Fa-f0-9]{8}[0-9]{4})`),
	regexp.MustCompile(`(?i)([A-Za-z0-9]+-[A-Fa-f0-9]{8}-[0-9]{4})`),
	regexp.MustCompile(`(?i)([A-Fa-f0-9]{8}-[0-9]{4})`),
	regexp.MustCompile(`(?i)(INV[A-Za-z0-9\-_]+)`),
	regexp.MustCompile(`([0-9]{4,})`),
}

func invoiceNumberFallback(text string) (string, bool) {
	for _, re := range invoiceNumberShapes {
		if m := re.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1]), true
		}
	}
	return "", false
}

// amountTokenRes match currency-prefixed, currency-suffixed, and bare
// two-decimal numeric tokens for the max-value total heuristic.
var amountTokenRes = []*regexp.Regexp{
	regexp.MustCompile(`\$\s*([0-9,]+\.?[0-9]*)`),
	regexp.MustCompile(`([0-9,]+\.?[0-9]*)\s*\$`),
	regexp.MustCompile(`([0-9,]+\.[0-9]{2})`),
}

// largestAmountFallback returns the largest positive amount anywhere in the
// text. The largest number on an invoice is usually the grand total; this
// is a best-effort heuristic and occasionally wrong by design.
func largestAmountFallback(text string) (string, bool) {
	var max float64
	found := false
	for _, re := range amountTokenRes {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			amt, ok := NormalizeAmount(m[1]).Float64()
			if !ok || amt <= 0 {
				continue
			}
			if !found || amt > max {
				max = amt
				found = true
			}
		}
	}
	if !found {
		return "", false
	}
	return strconv.FormatFloat(max, 'f', -1, 64), true
}

// titleCase capitalizes each space-separated word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		for j := 1; j < len(r); j++ {
			r[j] = unicode.ToLower(r[j])
		}
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
