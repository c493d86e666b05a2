package checkapi

// CheckRequest is the body of POST /check.
type CheckRequest struct {
	Kind  string `json:"kind"`
	Value string `json:"value"`
}

// CheckResponse reports the result for a single value. Message is set when the
// value is invalid; IDCard is set for valid chinese_id_card values.
type CheckResponse struct {
	Kind    string  `json:"kind"`
	Value   string  `json:"value"`
	Valid   bool    `json:"valid"`
	Message string  `json:"message,omitempty"`
	IDCard  *IDCard `json:"id_card,omitempty"`
}

// IDCard is the JSON form of validator.IDCardInfo.
type IDCard struct {
	Region    string `json:"region"`
	BirthDate string `json:"birth_date"` // YYYY-MM-DD
	Sequence  string `json:"sequence"`
	Gender    string `json:"gender"`
	CheckCode string `json:"check_code"`
}

// BatchItem is one value of a batch request. Field defaults to "items[i]".
type BatchItem struct {
	Field string `json:"field,omitempty"`
	Kind  string `json:"kind"`
	Value string `json:"value"`
}

type BatchRequest struct {
	Items []BatchItem `json:"items"`
}

// BatchResponse lists every failing item; Valid is true when there are none.
type BatchResponse struct {
	Valid  bool         `json:"valid"`
	Errors []FieldError `json:"errors,omitempty"`
}

type FieldError struct {
	Field   string `json:"field"`
	Key     string `json:"key"`
	Message string `json:"message"`
}

type KindsResponse struct {
	Kinds []string `json:"kinds"`
}

// ErrorResponse wraps every non-2xx answer.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
