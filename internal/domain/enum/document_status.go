package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// DocumentStatus represents the lifecycle state of a commercial document
type DocumentStatus int

const (
	DocumentStatusDraft         DocumentStatus = 0
	DocumentStatusSent          DocumentStatus = 1
	DocumentStatusPaid          DocumentStatus = 2
	DocumentStatusPartiallyPaid DocumentStatus = 3
	DocumentStatusOverdue       DocumentStatus = 4
	DocumentStatusCancelled     DocumentStatus = 5
)

var documentStatusNames = [...]string{
	"Draft", "Sent", "Paid", "PartiallyPaid", "Overdue", "Cancelled",
}

func (s DocumentStatus) String() string {
	if int(s) < 0 || int(s) >= len(documentStatusNames) {
		return "Draft"
	}
	return documentStatusNames[s]
}

// Valid reports whether s is a known status.
func (s DocumentStatus) Valid() bool {
	return int(s) >= 0 && int(s) < len(documentStatusNames)
}

func (s DocumentStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *DocumentStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = DocumentStatus(i)
		return nil
	}
	for i, name := range documentStatusNames {
		if name == str {
			*s = DocumentStatus(i)
			return nil
		}
	}
	return nil
}

func (s DocumentStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *DocumentStatus) Scan(value interface{}) error {
	if value == nil {
		*s = DocumentStatusDraft
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = DocumentStatus(v)
	case int:
		*s = DocumentStatus(v)
	}
	return nil
}
