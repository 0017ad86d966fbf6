package models

// User is the single signed-in account for the session. There is one
// current user at a time; the record round-trips through the key-value
// store under StoreKeyUser.
type User struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Phone         string  `json:"phone"`
	Email         string  `json:"email"`
	Gender        string  `json:"gender,omitempty"` // "Male", "Female" or "Other"
	ProfilePic    string  `json:"profilePic,omitempty"`
	CreditBalance float64 `json:"creditBalance"`
}

// DefaultCreditBalance is granted to every newly registered user.
const DefaultCreditBalance = 150.00
