// internal/domain/models/workorder.go
package models

import "time"

// WorkOrder is a unit of service work.
//
// DisplayID is the human-facing ticket number (#WO-NNNN) and is independent of ID.
// Location and Description are flattened free text composed when the order is created;
// SerialNumber, IssueTitle and Instructions keep the raw form fragments for reference.
// CustomerID is empty for orders not associated with a customer.
type WorkOrder struct {
	ID           string    `bson:"id" json:"id"`
	DisplayID    string    `bson:"display_id" json:"display_id"`
	Title        string    `bson:"title" json:"title"`
	Location     string    `bson:"location" json:"location"`
	Description  string    `bson:"description" json:"description"`
	Date         string    `bson:"date" json:"date"`
	Status       Status    `bson:"status" json:"status"`
	AssignedUser User      `bson:"assigned_user" json:"assigned_user"`
	SerialNumber string    `bson:"serial_number,omitempty" json:"serial_number,omitempty"`
	IssueTitle   string    `bson:"issue_title,omitempty" json:"issue_title,omitempty"`
	Instructions string    `bson:"instructions,omitempty" json:"instructions,omitempty"`
	Attachments  []string  `bson:"attachments,omitempty" json:"attachments,omitempty"`
	CustomerID   string    `bson:"customer_id,omitempty" json:"customer_id,omitempty"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}
