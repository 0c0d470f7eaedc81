package domain

import "time"

type OrderStatus string

const (
	StatusQuoteRequested    OrderStatus = "quote_requested"
	StatusQuoteReviewing    OrderStatus = "quote_reviewing"
	StatusQuoteSent         OrderStatus = "quote_sent"
	StatusQuoteAccepted     OrderStatus = "quote_accepted"
	StatusQuoteRejected     OrderStatus = "quote_rejected"
	StatusProjectStarted    OrderStatus = "project_started"
	StatusProjectInProgress OrderStatus = "project_in_progress"
	StatusProjectReview     OrderStatus = "project_review"
	StatusProjectCompleted  OrderStatus = "project_completed"
	StatusProjectDelivered  OrderStatus = "project_delivered"
	StatusArchived          OrderStatus = "archived"
)

type OrderType string

const (
	TypeQuote   OrderType = "quote"
	TypeProject OrderType = "project"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

type SenderType string

const (
	SenderClient SenderType = "client"
	SenderAdmin  SenderType = "admin"
)

type FileCategory string

const (
	FileBrief       FileCategory = "brief"
	FileDesign      FileCategory = "design"
	FileSource      FileCategory = "source"
	FileDeliverable FileCategory = "deliverable"
	FileOther       FileCategory = "other"
)

// Order is a client's quote request, or an active project once accepted.
// Messages, files and milestones are embedded: the order owns them exclusively
// and they are not addressable outside of it. Client is a denormalized
// snapshot taken at creation time for display stability; ClientID points at
// the registry record.
type Order struct {
	ID       string      `json:"id"`
	ClientID string      `json:"clientId"`
	Client   Client      `json:"client"`
	Type     OrderType   `json:"type"`
	Status   OrderStatus `json:"status"`
	Priority Priority    `json:"priority"`

	Title                  string `json:"title"`
	Category               string `json:"category"`
	Description            string `json:"description"`
	Budget                 string `json:"budget"`
	Timeline               string `json:"timeline"`
	AdditionalRequirements string `json:"additionalRequirements,omitempty"`

	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
	DueDate           *time.Time `json:"dueDate,omitempty"`
	EstimatedDelivery *time.Time `json:"estimatedDelivery,omitempty"`
	ActualDelivery    *time.Time `json:"actualDelivery,omitempty"`

	Messages []OrderMessage `json:"messages"`
	Files    []ProjectFile  `json:"files"`

	Progress   int         `json:"progress"`
	Milestones []Milestone `json:"milestones"`

	QuotedPrice *float64 `json:"quotedPrice,omitempty"`
	FinalPrice  *float64 `json:"finalPrice,omitempty"`
	Paid        bool     `json:"paid,omitempty"`
	InvoiceID   string   `json:"invoiceId,omitempty"`
}

type OrderMessage struct {
	ID          string        `json:"id"`
	OrderID     string        `json:"orderId"`
	SenderID    string        `json:"senderId"`
	SenderType  SenderType    `json:"senderType"`
	Content     string        `json:"content"`
	Attachments []ProjectFile `json:"attachments,omitempty"`
	Timestamp   time.Time     `json:"timestamp"`
	Read        bool          `json:"read"`
}

type ProjectFile struct {
	ID         string       `json:"id"`
	OrderID    string       `json:"orderId"`
	Name       string       `json:"name"`
	Category   FileCategory `json:"type"`
	URL        string       `json:"url"`
	Size       int64        `json:"size"`
	UploadedBy SenderType   `json:"uploadedBy"`
	UploadedAt time.Time    `json:"uploadedAt"`
}

type Milestone struct {
	ID          string     `json:"id"`
	OrderID     string     `json:"orderId"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     time.Time  `json:"dueDate"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	Position    int        `json:"order"`
}
