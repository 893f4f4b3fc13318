package result

import (
	"encoding/json"
	"errors"
	"fmt"
)

// StatusKind is the kind of execution status.
type StatusKind byte

// Execution status kinds.
const (
	StatusUnknown StatusKind = iota
	StatusNotStarted
	StatusStarted
	StatusFailure
	StatusSuccessValue
	StatusSuccessReceiptID
)

var statusNames = map[StatusKind]string{
	StatusUnknown:          "Unknown",
	StatusNotStarted:       "NotStarted",
	StatusStarted:          "Started",
	StatusFailure:          "Failure",
	StatusSuccessValue:     "SuccessValue",
	StatusSuccessReceiptID: "SuccessReceiptId",
}

// String implements the stringer interface.
func (k StatusKind) String() string {
	if s, ok := statusNames[k]; ok {
		return s
	}
	return fmt.Sprintf("StatusKind(%d)", byte(k))
}

// ExecutionStatus is a transaction or receipt execution status. NEAR encodes
// it either as a bare string or as an object with a single key.
type ExecutionStatus struct {
	Kind StatusKind
	// SuccessValue is the decoded return value for StatusSuccessValue.
	SuccessValue []byte
	// SuccessReceiptID is set for StatusSuccessReceiptID.
	SuccessReceiptID string
	// Failure is the raw failure description for StatusFailure.
	Failure json.RawMessage
}

type statusAux struct {
	SuccessValue     *[]byte         `json:"SuccessValue,omitempty"`
	SuccessReceiptID *string         `json:"SuccessReceiptId,omitempty"`
	Failure          json.RawMessage `json:"Failure,omitempty"`
}

// IsSuccess returns true for successful statuses.
func (s *ExecutionStatus) IsSuccess() bool {
	return s.Kind == StatusSuccessValue || s.Kind == StatusSuccessReceiptID
}

// MarshalJSON implements the json.Marshaler interface.
func (s ExecutionStatus) MarshalJSON() ([]byte, error) {
	switch s.Kind {
	case StatusSuccessValue:
		v := s.SuccessValue
		if v == nil {
			v = []byte{}
		}
		return json.Marshal(statusAux{SuccessValue: &v})
	case StatusSuccessReceiptID:
		return json.Marshal(statusAux{SuccessReceiptID: &s.SuccessReceiptID})
	case StatusFailure:
		f := s.Failure
		if len(f) == 0 {
			f = json.RawMessage("{}")
		}
		return json.Marshal(statusAux{Failure: f})
	default:
		return json.Marshal(s.Kind.String())
	}
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (s *ExecutionStatus) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		switch name {
		case "Unknown":
			*s = ExecutionStatus{Kind: StatusUnknown}
		case "NotStarted":
			*s = ExecutionStatus{Kind: StatusNotStarted}
		case "Started":
			*s = ExecutionStatus{Kind: StatusStarted}
		default:
			return fmt.Errorf("unknown execution status %q", name)
		}
		return nil
	}
	var aux statusAux
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	switch {
	case aux.SuccessValue != nil:
		*s = ExecutionStatus{Kind: StatusSuccessValue, SuccessValue: *aux.SuccessValue}
	case aux.SuccessReceiptID != nil:
		*s = ExecutionStatus{Kind: StatusSuccessReceiptID, SuccessReceiptID: *aux.SuccessReceiptID}
	case len(aux.Failure) != 0:
		*s = ExecutionStatus{Kind: StatusFailure, Failure: aux.Failure}
	default:
		return errors.New("empty execution status")
	}
	return nil
}
