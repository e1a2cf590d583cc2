package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// PaymentMode represents how a payment was made
type PaymentMode int

const (
	PaymentModeCash         PaymentMode = 0
	PaymentModeCheque       PaymentMode = 1
	PaymentModeBankTransfer PaymentMode = 2
	PaymentModeUPI          PaymentMode = 3
	PaymentModeCard         PaymentMode = 4
)

var paymentModeNames = [...]string{"Cash", "Cheque", "BankTransfer", "UPI", "Card"}

func (m PaymentMode) String() string {
	if int(m) < 0 || int(m) >= len(paymentModeNames) {
		return "Cash"
	}
	return paymentModeNames[m]
}

// Valid reports whether the mode is a known payment mode
func (m PaymentMode) Valid() bool {
	return int(m) >= 0 && int(m) < len(paymentModeNames)
}

func (m PaymentMode) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *PaymentMode) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*m = PaymentMode(i)
		return nil
	}
	for i, name := range paymentModeNames {
		if name == str {
			*m = PaymentMode(i)
			return nil
		}
	}
	return nil
}

func (m PaymentMode) Value() (driver.Value, error) {
	return int64(m), nil
}

func (m *PaymentMode) Scan(value interface{}) error {
	if value == nil {
		*m = PaymentModeCash
		return nil
	}
	switch v := value.(type) {
	case int64:
		*m = PaymentMode(v)
	case int:
		*m = PaymentMode(v)
	}
	return nil
}
