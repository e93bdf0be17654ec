package model

// Movie describes a film that can be scheduled as a show.  Movies are
// catalog data: they are loaded once at startup and never mutated by
// the booking flow.
//
// Fields:
//  ID       – primary key identifier.
//  Title    – display title of the movie.
//  Language – spoken language of the print.
//  Duration – running time in minutes.
//  Genres   – list of genre tags.
type Movie struct {
	ID       uint64   // movies.id
	Title    string   // movies.title
	Language string   // movies.language
	Duration uint32   // movies.duration_minutes
	Genres   []string // movies.genres (comma separated in storage)
}
