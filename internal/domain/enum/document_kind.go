package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// DocumentKind identifies which commercial document a record represents. All
// kinds share one line-item/totals engine; the kind decides the numbering
// prefix, the party side and which route group the record is served under.
type DocumentKind int

const (
	KindInvoice         DocumentKind = 0
	KindQuotation       DocumentKind = 1
	KindPurchase        DocumentKind = 2
	KindPurchaseOrder   DocumentKind = 3
	KindCreditNote      DocumentKind = 4
	KindDebitNote       DocumentKind = 5
	KindDeliveryChallan DocumentKind = 6
)

var documentKindNames = [...]string{
	"Invoice", "Quotation", "Purchase", "PurchaseOrder",
	"CreditNote", "DebitNote", "DeliveryChallan",
}

var documentKindPrefixes = [...]string{
	"INV", "QT", "PUR", "PO", "CN", "DN", "DC",
}

func (k DocumentKind) String() string {
	if int(k) < 0 || int(k) >= len(documentKindNames) {
		return "Invoice"
	}
	return documentKindNames[k]
}

// Prefix returns the numbering prefix for the kind, e.g. "INV" for invoices.
func (k DocumentKind) Prefix() string {
	if int(k) < 0 || int(k) >= len(documentKindPrefixes) {
		return "DOC"
	}
	return documentKindPrefixes[k]
}

// CustomerSide reports whether documents of this kind reference a customer.
// Vendor-side kinds (purchases, purchase orders, debit notes) reference a
// vendor instead.
func (k DocumentKind) CustomerSide() bool {
	switch k {
	case KindPurchase, KindPurchaseOrder, KindDebitNote:
		return false
	}
	return true
}

// Valid reports whether k is a known kind.
func (k DocumentKind) Valid() bool {
	return int(k) >= 0 && int(k) < len(documentKindNames)
}

func (k DocumentKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

func (k *DocumentKind) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*k = DocumentKind(i)
		return nil
	}
	for i, name := range documentKindNames {
		if name == str {
			*k = DocumentKind(i)
			return nil
		}
	}
	return nil
}

func (k DocumentKind) Value() (driver.Value, error) {
	return int64(k), nil
}

func (k *DocumentKind) Scan(value interface{}) error {
	if value == nil {
		*k = KindInvoice
		return nil
	}
	switch v := value.(type) {
	case int64:
		*k = DocumentKind(v)
	case int:
		*k = DocumentKind(v)
	}
	return nil
}
