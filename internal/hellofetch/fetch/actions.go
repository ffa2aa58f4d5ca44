package fetch

import "encoding/json"

// Wire names for the actions, shared with anything that logs or serializes them.
const (
	TypeRequest = "FETCH_DATA_REQUEST"
	TypeSuccess = "FETCH_DATA_SUCCESS"
	TypeFailure = "FETCH_DATA_FAILURE"
)

// Action describes a requested state transition.
type Action interface {
	Type() string
}

// RequestStarted marks the start of a fetch cycle.
type RequestStarted struct{}

// RequestSucceeded carries the payload of a completed fetch.
type RequestSucceeded struct {
	Payload Payload
}

// RequestFailed carries the user-facing failure text.
type RequestFailed struct {
	Message string
}

func (RequestStarted) Type() string   { return TypeRequest }
func (RequestSucceeded) Type() string { return TypeSuccess }
func (RequestFailed) Type() string    { return TypeFailure }

func (a RequestStarted) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string `json:"type"`
	}{a.Type()})
}

func (a RequestSucceeded) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type    string  `json:"type"`
		Payload Payload `json:"payload"`
	}{a.Type(), a.Payload})
}

func (a RequestFailed) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type  string `json:"type"`
		Error string `json:"error"`
	}{a.Type(), a.Message})
}
