// internal/domain/models/customer.go
package models

// Customer is a service site. SiteName, Address and ContactName are required;
// Postcode and ContactPhone may be empty.
type Customer struct {
	ID           string `bson:"id" json:"id"`
	SiteName     string `bson:"site_name" json:"site_name"`
	Address      string `bson:"address" json:"address"`
	Postcode     string `bson:"postcode" json:"postcode"`
	ContactName  string `bson:"contact_name" json:"contact_name"`
	ContactPhone string `bson:"contact_phone" json:"contact_phone"`
}
