package domain

import "time"

// Customer is a contact record, optionally linked to a dashboard User.
// The link is a nullable reference, not an ownership relation: the target
// user may be deactivated or missing, in which case the customer is treated
// as unlinked wherever the link is resolved.
type Customer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	UserID    string    `json:"userId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CustomerWithUser is a customer with its linked user resolved. User is nil
// when the customer is unlinked or the link target could not be resolved.
type CustomerWithUser struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	User      *UserInfo `json:"user,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
