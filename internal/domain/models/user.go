// internal/domain/models/user.go
package models

// User is reference data for a technician or admin. The dashboard never mutates users;
// they are stamped onto work orders as the assignee.
type User struct {
	ID           string `bson:"id" json:"id"`
	Name         string `bson:"name" json:"name"`
	Email        string `bson:"email" json:"email"`
	Initials     string `bson:"initials" json:"initials"`
	AvatarColor  string `bson:"avatar_color" json:"avatar_color"`
	Organization string `bson:"organization,omitempty" json:"organization,omitempty"`
}
