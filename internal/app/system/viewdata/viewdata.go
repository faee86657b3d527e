// internal/app/system/viewdata/viewdata.go
package viewdata

import (
	"net/http"

	"github.com/dalemusser/fieldhub/internal/app/system/auth"
	"github.com/dalemusser/fieldhub/internal/app/system/derive"
	"github.com/dalemusser/fieldhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/httpnav"
)

// SiteName is shown in the page title and header.
const SiteName = "FieldHub"

// BaseVM contains common fields for all view models.
// Embed this struct in your feature-specific view models.
//
// Usage:
//
//	type myPageData struct {
//	    viewdata.BaseVM
//	    // page-specific fields...
//	}
//
//	data := myPageData{
//	    BaseVM: viewdata.NewBaseVM(r, "Page Title", "/default-back"),
//	}
type BaseVM struct {
	SiteName string

	// User context (from auth middleware)
	IsLoggedIn   bool
	UserName     string
	UserInitials string
	AvatarColor  string

	// Page context
	Title       string
	BackURL     string
	CurrentPath string
	NavSection  string

	// Unread notification count for the header badge; set by handlers that know it.
	UnreadCount int

	// Inline form error
	Error string
}

// NewBaseVM creates a BaseVM for a page.
func NewBaseVM(r *http.Request, title, backDefault string) BaseVM {
	vm := BaseVM{
		SiteName:    SiteName,
		Title:       title,
		BackURL:     httpnav.ResolveBackURL(r, backDefault),
		CurrentPath: httpnav.CurrentPath(r),
	}
	if u, ok := auth.CurrentUser(r); ok {
		vm.IsLoggedIn = true
		vm.UserName = u.Name
		vm.UserInitials = u.Initials
		vm.AvatarColor = u.AvatarColor
	}
	return vm
}

// SetError sets the inline form error.
func (b *BaseVM) SetError(msg string) {
	b.Error = msg
}

// CountUnread sets the header badge from the live notification feed.
func (b *BaseVM) CountUnread(ns []models.Notification) {
	b.UnreadCount = derive.UnreadCount(ns)
}
