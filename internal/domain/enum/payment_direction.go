package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// PaymentDirection distinguishes money received from money paid out
type PaymentDirection int

const (
	PaymentDirectionIn  PaymentDirection = 0
	PaymentDirectionOut PaymentDirection = 1
)

var paymentDirectionNames = [...]string{"In", "Out"}

func (d PaymentDirection) String() string {
	if int(d) < 0 || int(d) >= len(paymentDirectionNames) {
		return "In"
	}
	return paymentDirectionNames[d]
}

// Valid reports whether the direction is a known value
func (d PaymentDirection) Valid() bool {
	return int(d) >= 0 && int(d) < len(paymentDirectionNames)
}

func (d PaymentDirection) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *PaymentDirection) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*d = PaymentDirection(i)
		return nil
	}
	switch str {
	case "In":
		*d = PaymentDirectionIn
	case "Out":
		*d = PaymentDirectionOut
	}
	return nil
}

func (d PaymentDirection) Value() (driver.Value, error) {
	return int64(d), nil
}

func (d *PaymentDirection) Scan(value interface{}) error {
	if value == nil {
		*d = PaymentDirectionIn
		return nil
	}
	switch v := value.(type) {
	case int64:
		*d = PaymentDirection(v)
	case int:
		*d = PaymentDirection(v)
	}
	return nil
}
