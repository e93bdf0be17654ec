package model

// User identifies the actor attempting to hold and confirm seats.  The
// booking core only ever compares users by ID; name and email exist for
// notifications and display.
//
// Fields:
//  ID    – primary key identifier, the comparable identity.
//  Name  – display name.
//  Email – address confirmation notifications are sent to.
type User struct {
	ID    uint64 // users.id
	Name  string // users.name
	Email string // users.email
}
