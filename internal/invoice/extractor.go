package invoice

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/Akk525/invoice-parser/constants"
)

// Strategy is one field-specific fallback heuristic, tried only after every
// declared rule for the field has missed. Strategies receive the original
// (case-preserved) text.
type Strategy func(text string) (string, bool)

type compiledRule struct {
	re      *regexp.Regexp
	group   int
	pattern string
}

// Extractor resolves named fields from raw document text using ordered
// pattern rules and registered fallback strategies.
type Extractor struct {
	log       *slog.Logger
	rules     map[constants.Field][]compiledRule
	fallbacks map[constants.Field][]Strategy
}

// NewExtractor compiles the pattern set and registers the default fallback
// strategies. A rule that fails to compile is logged and skipped at
// resolution time; it never aborts the field or the record.
func NewExtractor(patterns PatternSet, profile LayoutProfile, log *slog.Logger) *Extractor {
	if log == nil {
		log = slog.Default()
	}
	e := &Extractor{
		log:       log,
		rules:     make(map[constants.Field][]compiledRule, len(patterns)),
		fallbacks: make(map[constants.Field][]Strategy, 4),
	}
	for field, rules := range patterns {
		compiled := make([]compiledRule, 0, len(rules))
		for i, r := range rules {
			group := r.Group
			if group <= 0 {
				group = 1
			}
			re, err := regexp.Compile(`(?im)` + r.Pattern)
			if err != nil {
				log.Warn("fields.rule.compile_error",
					"field", field, "rule", i+1, "pattern", r.Pattern, "error", err)
				re = nil
			}
			compiled = append(compiled, compiledRule{re: re, group: group, pattern: r.Pattern})
		}
		e.rules[field] = compiled
	}

	e.fallbacks[constants.FieldInvoiceNumber] = []Strategy{invoiceNumberFallback}
	e.fallbacks[constants.FieldTotal] = []Strategy{largestAmountFallback}
	e.fallbacks[constants.FieldVendorName] = []Strategy{
		profile.vendorAnchorLine,
		profile.vendorStandaloneLine,
		profile.vendorAnywhere,
	}
	e.fallbacks[constants.FieldCustomerName] = []Strategy{
		profile.customerAfterBillTo,
		profile.customerFromPOBox,
	}
	return e
}

// RegisterFallback appends a strategy to the field's fallback chain.
// Later registrations have lower precedence.
func (e *Extractor) RegisterFallback(field constants.Field, s Strategy) {
	e.fallbacks[field] = append(e.fallbacks[field], s)
}

// Resolve returns the raw, untyped value for one field. The field's rules
// are tried in declared order against the lowercased text; the first rule
// whose capture group matches wins. When every rule misses, the field's
// fallback strategies run in registration order. The per-rule debug events
// are diagnostic only and never change the outcome.
func (e *Extractor) Resolve(text string, field constants.Field) (string, bool) {
	lower := strings.ToLower(text)

	for i, rule := range e.rules[field] {
		if rule.re == nil {
			continue // failed to compile, already logged
		}
		m := rule.re.FindStringSubmatch(lower)
		if m == nil || len(m) <= rule.group {
			e.log.Debug("fields.resolve.rule_miss", "field", field, "rule", i+1)
			continue
		}
		value := strings.TrimSpace(m[rule.group])
		e.log.Debug("fields.resolve.hit",
			"field", field, "rule", i+1, "pattern", rule.pattern, "value", value)
		return value, true
	}

	for i, strat := range e.fallbacks[field] {
		if value, ok := strat(text); ok {
			e.log.Debug("fields.resolve.fallback_hit", "field", field, "strategy", i+1, "value", value)
			return value, true
		}
	}

	e.log.Debug("fields.resolve.miss", "field", field)
	return "", false
}
