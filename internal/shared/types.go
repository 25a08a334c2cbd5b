package shared

// Asynq task types
const (
	TypeLeadNotify = "lead:notify"
	TypeLeadDigest = "lead:digest"
)

// Queue names, ordered by worker priority
const (
	QueueHigh    = "high"
	QueueDefault = "default"
	QueueLow     = "low"
)

// LeadNotifyPayload is enqueued after a successful lead insert.
// The worker re-reads the lead by ID so the email always reflects
// what was actually persisted.
type LeadNotifyPayload struct {
	LeadID string `json:"leadId"`
}

// LeadDigestPayload triggers the daily per-source lead summary.
// Date là ngày cần tổng hợp (YYYY-MM-DD); rỗng = hôm qua.
type LeadDigestPayload struct {
	Date string `json:"date"`
}
