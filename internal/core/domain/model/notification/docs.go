// Package notification provides the Notification entity and the fixed table
// that maps an order status to notification content.
//
// A notification is immutable once created except for its read flag and read
// time. It expires DefaultRetention after creation.
package notification
