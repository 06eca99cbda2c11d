// Copyright (c) 2026 Myflix. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package movie implements the read-only movie catalog.

Movies are created out of band by the seed command; the API only lists and
queries them.

# Architecture

  - Entity: [Movie], [Genre], [Director].
  - Repository: Postgres and MongoDB implementations, optionally wrapped by a
    Redis read-through cache.
  - Handler: chi routes under /movies and /directors.
*/
package movie

// # Domain Entities

// Genre classifies a movie.
type Genre struct {
	Name        string `json:"Name" bson:"Name"`
	Description string `json:"Description" bson:"Description"`
}

// Director is the person credited with directing a movie.
//
// Birth and Death are years kept as text, so partial or unknown values from
// the seed data survive untouched.
type Director struct {
	Name  string  `json:"Name" bson:"Name"`
	Bio   string  `json:"Bio" bson:"Bio"`
	Birth string  `json:"Birth" bson:"Birth"`
	Death *string `json:"Death,omitempty" bson:"Death,omitempty"`
}

// Movie is a catalog entry. The identifier is assigned by the store.
type Movie struct {
	ID          string   `json:"_id"`
	Title       string   `json:"Title"`
	Description string   `json:"Description"`
	Genre       Genre    `json:"Genre"`
	Director    Director `json:"Director"`
	ImagePath   string   `json:"ImagePath"`
	Featured    bool     `json:"Featured"`
}
