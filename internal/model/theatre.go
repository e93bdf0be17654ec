package model

// Theatre is a physical venue containing one or more screens.  Like all
// catalog entities it is read-only after load.
//
// Fields:
//  ID      – primary key identifier.
//  Name    – display name of the venue.
//  City    – city the venue is located in.
//  Screens – screens belonging to this theatre.
type Theatre struct {
	ID      uint64    // theatres.id
	Name    string    // theatres.name
	City    string    // theatres.city
	Screens []*Screen // screens of this theatre
}

// Screen is a single auditorium inside a theatre.  Shows are scheduled
// per screen; the screen's seats are instantiated per show so that the
// same physical seat can be sold independently for different shows.
type Screen struct {
	ID      uint64 // screens.id
	Name    string // screens.name, e.g. "Audi 1"
	Theatre *Theatre
}
