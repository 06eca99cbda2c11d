// Copyright (c) 2026 Myflix. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package movie

import "context"

// Repository defines the read contract for the catalog.
//
// Single-item lookups that match nothing return (nil, nil); callers decide
// whether absence is an error.
type Repository interface {
	ListMovies(context context.Context) ([]*Movie, error)
	GetMovie(context context.Context, id string) (*Movie, error)
	ListByGenre(context context.Context, genre string) ([]*Movie, error)
	GetDirector(context context.Context, name string) (*Director, error)
}

// Writer inserts catalog entries. Only the seed command writes movies.
type Writer interface {
	CreateMovie(context context.Context, movie *Movie) error
}
