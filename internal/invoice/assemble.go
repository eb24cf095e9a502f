package invoice

import (
	"log/slog"
	"path/filepath"
	"regexp"
	"time"

	"github.com/Akk525/invoice-parser/constants"
	"github.com/Akk525/invoice-parser/internal/extract"
)

// filenameInvoiceRe matches the dash-delimited hex-digit id some vendors
// embed in the download filename (e.g. Invoice-4E62BC7A-0001.pdf).
var filenameInvoiceRe = regexp.MustCompile(`[A-Fa-f0-9]{8}-[0-9]{4}`)

// Assembler merges extractor outputs into one Record and stamps metadata.
type Assembler struct {
	extractor *Extractor
	profile   LayoutProfile
	log       *slog.Logger
	now       func() time.Time
}

func NewAssembler(extractor *Extractor, profile LayoutProfile, log *slog.Logger) *Assembler {
	if log == nil {
		log = slog.Default()
	}
	return &Assembler{
		extractor: extractor,
		profile:   profile,
		log:       log,
		now:       time.Now,
	}
}

// WithClock overrides the timestamp source. Everything else about assembly
// is a pure function of the document, so a fixed clock makes the output
// byte-for-byte reproducible.
func (a *Assembler) WithClock(now func() time.Time) *Assembler {
	a.now = now
	return a
}

// BuildRecord resolves every field against the document and merges the
// results. No field is required: whatever cannot be resolved stays null or
// absent without blocking the rest.
func (a *Assembler) BuildRecord(doc *extract.Document, sourceFile string, debug bool) *Record {
	text := doc.FullText
	rec := &Record{}

	filenameID := filenameInvoiceRe.FindString(filepath.Base(sourceFile))

	if v, ok := a.extractor.Resolve(text, constants.FieldInvoiceNumber); ok {
		rec.InvoiceNumber = &v
	} else if filenameID != "" {
		// Lower precedence than any in-text rule, higher than absent.
		a.log.Debug("assemble.invoice_number.from_filename", "value", filenameID)
		rec.InvoiceNumber = &filenameID
	}

	if v, ok := a.extractor.Resolve(text, constants.FieldDate); ok {
		d := NormalizeDate(v)
		rec.Date = &d
	}
	if v, ok := a.extractor.Resolve(text, constants.FieldDueDate); ok {
		d := NormalizeDate(v)
		rec.DueDate = &d
	}
	if v, ok := a.extractor.Resolve(text, constants.FieldTotal); ok {
		amt := NormalizeAmount(v)
		rec.Total = &amt
	}
	if v, ok := a.extractor.Resolve(text, constants.FieldSubtotal); ok {
		amt := NormalizeAmount(v)
		rec.Subtotal = &amt
	}
	if v, ok := a.extractor.Resolve(text, constants.FieldTax); ok {
		amt := NormalizeAmount(v)
		rec.Tax = &amt
	}
	if v, ok := a.extractor.Resolve(text, constants.FieldVendorName); ok {
		rec.VendorName = &v
	}
	if v, ok := a.extractor.Resolve(text, constants.FieldCustomerName); ok {
		rec.CustomerName = &v
	}

	if info := ExtractVendorInfo(text, a.profile, a.log); !info.Empty() {
		rec.VendorInfo = &info
	}
	rec.LineItems = ReconstructLineItems(doc.Tables, text, a.log)

	aux := ExtractAuxiliary(text, a.log)
	rec.PONumber = aux.PONumber
	rec.PaymentTerms = aux.PaymentTerms
	rec.Currency = aux.Currency

	rec.ExtractionDate = a.now().Format(time.RFC3339)
	rec.SourceFile = sourceFile

	if debug {
		rec.DebugInfo = &DebugInfo{
			ExtractedTextLength:   len(text),
			TablesFound:           len(doc.Tables),
			FilenameInvoiceNumber: filenameID,
		}
		rec.RawText = truncate(text, constants.RawTextSampleLimit)
		rec.RawTables = doc.Tables
	}

	return rec
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}
