package domain

import "time"

type RecipientType string

const (
	RecipientClient RecipientType = "client"
	RecipientAdmin  RecipientType = "admin"
)

type NotificationKind string

const (
	NotifStatusChange       NotificationKind = "status_change"
	NotifNewMessage         NotificationKind = "new_message"
	NotifNewFile            NotificationKind = "new_file"
	NotifPaymentDue         NotificationKind = "payment_due"
	NotifMilestoneCompleted NotificationKind = "milestone_completed"
)

// OrderNotification is a one-way message addressed to one side of an order.
// Created as a side effect of order mutations; only the read flag is ever
// mutated afterwards.
type OrderNotification struct {
	ID            string           `json:"id"`
	OrderID       string           `json:"orderId"`
	RecipientType RecipientType    `json:"recipientType"`
	Kind          NotificationKind `json:"type"`
	Title         string           `json:"title"`
	Message       string           `json:"message"`
	Timestamp     time.Time        `json:"timestamp"`
	Read          bool             `json:"read"`
	Urgent        bool             `json:"urgent"`
}
