package admin

// Credential is a stored admin identity. Rows are seeded out of band
// (cmd/createadmin); the API only reads them.
type Credential struct {
	ID           int64
	Username     string
	PasswordHash string
}

// Principal is the authenticated admin identity carried through request
// context after token verification.
type Principal struct {
	Username string
}
