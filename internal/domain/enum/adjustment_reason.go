package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// AdjustmentReason records why an item's stock level changed
type AdjustmentReason int

const (
	AdjustmentReasonManual   AdjustmentReason = 0
	AdjustmentReasonPurchase AdjustmentReason = 1
	AdjustmentReasonSale     AdjustmentReason = 2
	AdjustmentReasonReturn   AdjustmentReason = 3
)

var adjustmentReasonNames = [...]string{"Manual", "Purchase", "Sale", "Return"}

func (r AdjustmentReason) String() string {
	if int(r) < 0 || int(r) >= len(adjustmentReasonNames) {
		return "Manual"
	}
	return adjustmentReasonNames[r]
}

// Valid reports whether the reason is a known value
func (r AdjustmentReason) Valid() bool {
	return int(r) >= 0 && int(r) < len(adjustmentReasonNames)
}

func (r AdjustmentReason) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

func (r *AdjustmentReason) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*r = AdjustmentReason(i)
		return nil
	}
	for i, name := range adjustmentReasonNames {
		if name == str {
			*r = AdjustmentReason(i)
			return nil
		}
	}
	return nil
}

func (r AdjustmentReason) Value() (driver.Value, error) {
	return int64(r), nil
}

func (r *AdjustmentReason) Scan(value interface{}) error {
	if value == nil {
		*r = AdjustmentReasonManual
		return nil
	}
	switch v := value.(type) {
	case int64:
		*r = AdjustmentReason(v)
	case int:
		*r = AdjustmentReason(v)
	}
	return nil
}
