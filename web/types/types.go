package types

// ChatRequest is the body of POST /chat. SessionID is optional; when absent
// the cookie session from the middleware is used.
type ChatRequest struct {
	Message   string `json:"message" form:"message"`
	SessionID string `json:"session_id" form:"session_id"`
}

// ChatResponse is the envelope returned for one chat turn. MatchedQuestion
// is only populated when the match was confident enough to surface.
type ChatResponse struct {
	Reply               string   `json:"reply"`
	SessionID           string   `json:"session_id"`
	MatchedQuestion     *string  `json:"matched_question"`
	Confidence          float64  `json:"confidence"`
	ConfidenceLevel     string   `json:"confidence_level"`
	Category            string   `json:"category"`
	Intent              string   `json:"intent"`
	AnswerSource        string   `json:"answer_source"`
	EnhancedByAssistant bool     `json:"enhanced_by_assistant"`
	AssistantAvailable  bool     `json:"assistant_available"`
	Suggestions         []string `json:"suggestions,omitempty"`
}

// FAQRequest is the body of the admin FAQ create/update endpoints.
type FAQRequest struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category"`
}

// ReminderRequest is the body of POST /api/save-reminder. IC is an accepted
// alias for ICNumber kept for older widget builds.
type ReminderRequest struct {
	Name        string  `json:"name"`
	ICNumber    string  `json:"ic_number"`
	IC          string  `json:"ic"`
	Phone       string  `json:"phone"`
	ZakatType   string  `json:"zakat_type"`
	ZakatAmount float64 `json:"zakat_amount"`
	Year        string  `json:"year"`
	SessionID   string  `json:"session_id"`
}

// CalculateRequest is the body of POST /calculate-zakat. Amount and Expenses
// are pointers so a missing field can be told apart from an explicit zero;
// the same goes for Year versus the default assessment year.
type CalculateRequest struct {
	Type     string   `json:"type"`
	Amount   *float64 `json:"amount"`
	Expenses *float64 `json:"expenses"`
	Year     *string  `json:"year"`
	YearType string   `json:"year_type"`
}

// BulkDeleteRequest is the body of POST /admin/chat-logs/bulk-delete.
type BulkDeleteRequest struct {
	IDs []int64 `json:"ids"`
}

// ClearOldRequest is the body of POST /admin/chat-logs/clear-old. Days
// defaults to 30 when omitted.
type ClearOldRequest struct {
	Days *int `json:"days"`
}
