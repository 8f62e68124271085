package domain

// SiteType identifies which variant of the deployment a request belongs to.
// A single process serves both the public marketing site and the admin
// dashboard; the variant is derived from the request's Host header.
type SiteType string

const (
	SiteTypeAdmin    SiteType = "admin"
	SiteTypeCustomer SiteType = "customer"
)

// Valid reports whether s is one of the known site variants.
func (s SiteType) Valid() bool {
	return s == SiteTypeAdmin || s == SiteTypeCustomer
}
