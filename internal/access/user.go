package access

import (
	"sync"

	alertdomain "github.com/hydrowatch/hydrowatch/internal/alert/domain"
)

// User is a session-scoped account linked to one meter. Login succeeds only
// when the presented meter ID equals the linked one (exact match here; the
// Gate handles the case-insensitive entry check).
type User struct {
	userID        string
	linkedMeterID string

	mu       sync.Mutex
	loggedIn bool
}

func NewUser(userID, linkedMeterID string) *User {
	return &User{userID: userID, linkedMeterID: linkedMeterID}
}

func (u *User) UserID() string        { return u.userID }
func (u *User) LinkedMeterID() string { return u.linkedMeterID }

// Login verifies the presented meter ID against the linked one.
func (u *User) Login(meterID string) bool {
	if meterID != u.linkedMeterID {
		return false
	}
	u.mu.Lock()
	u.loggedIn = true
	u.mu.Unlock()
	return true
}

func (u *User) Logout() {
	u.mu.Lock()
	u.loggedIn = false
	u.mu.Unlock()
}

func (u *User) LoggedIn() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.loggedIn
}

// ViewUsageReport returns a placeholder report reference for the linked
// meter, or a login prompt when the session is not active.
func (u *User) ViewUsageReport() string {
	if !u.LoggedIn() {
		return "Please log in first."
	}
	return "Usage report for meter: " + u.linkedMeterID
}

// ReceiveAlert delivers an alert message to an active session. It returns
// the delivered message, or an empty string when logged out.
func (u *User) ReceiveAlert(a alertdomain.Alert) string {
	if !u.LoggedIn() {
		return ""
	}
	return "Alert received: " + a.Message
}
