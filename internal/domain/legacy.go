package domain

// LegacyQuoteRequest is the flat quote-request shape used before orders and
// clients were split. Consumed once by the migrator, then deleted.
type LegacyQuoteRequest struct {
	ID                     string `json:"id"`
	ClientName             string `json:"clientName"`
	ClientEmail            string `json:"clientEmail"`
	ClientPhone            string `json:"clientPhone"`
	ProjectTitle           string `json:"projectTitle"`
	ProjectCategory        string `json:"projectCategory"`
	ProjectDescription     string `json:"projectDescription"`
	Budget                 string `json:"budget"`
	Timeline               string `json:"timeline"`
	AdditionalRequirements string `json:"additionalRequirements,omitempty"`
	Timestamp              string `json:"timestamp,omitempty"`
	Status                 string `json:"status"`
}

// legacyStatusMap converts the legacy six-value vocabulary to order statuses.
var legacyStatusMap = map[string]OrderStatus{
	"new":       StatusQuoteRequested,
	"reviewing": StatusQuoteReviewing,
	"quoted":    StatusQuoteSent,
	"accepted":  StatusQuoteAccepted,
	"rejected":  StatusQuoteRejected,
	"archived":  StatusArchived,
}

// MapLegacyStatus converts a legacy status value, defaulting unknown values
// to quote_requested.
func MapLegacyStatus(legacy string) OrderStatus {
	if s, ok := legacyStatusMap[legacy]; ok {
		return s
	}
	return StatusQuoteRequested
}
