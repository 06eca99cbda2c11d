// Copyright (c) 2026 Myflix. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package movie

import (
	"context"
	"errors"
	"sync"
	"time"
)

// fakeRepository is an in-memory [Repository] that counts calls.
type fakeRepository struct {
	movies []*Movie
	err    error
	calls  int
}

func (repo *fakeRepository) ListMovies(context.Context) ([]*Movie, error) {
	repo.calls++
	if repo.err != nil {
		return nil, repo.err
	}
	return repo.movies, nil
}

func (repo *fakeRepository) GetMovie(_ context.Context, id string) (*Movie, error) {
	repo.calls++
	if repo.err != nil {
		return nil, repo.err
	}
	for _, movie := range repo.movies {
		if movie.ID == id {
			return movie, nil
		}
	}
	return nil, nil
}

func (repo *fakeRepository) ListByGenre(_ context.Context, genre string) ([]*Movie, error) {
	repo.calls++
	if repo.err != nil {
		return nil, repo.err
	}
	matched := make([]*Movie, 0)
	for _, movie := range repo.movies {
		if movie.Genre.Name == genre {
			matched = append(matched, movie)
		}
	}
	return matched, nil
}

func (repo *fakeRepository) GetDirector(_ context.Context, name string) (*Director, error) {
	repo.calls++
	if repo.err != nil {
		return nil, repo.err
	}
	for _, movie := range repo.movies {
		if movie.Director.Name == name {
			director := movie.Director
			return &director, nil
		}
	}
	return nil, nil
}

// mapCache is an in-memory [Cache].
type mapCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	getErr  error
}

func newMapCache() *mapCache {
	return &mapCache{entries: make(map[string][]byte)}
}

func (cache *mapCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	if cache.getErr != nil {
		return nil, false, cache.getErr
	}
	value, found := cache.entries[key]
	return value, found, nil
}

func (cache *mapCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	cache.entries[key] = value
	return nil
}

var errStore = errors.New("store unavailable")

func catalog() []*Movie {
	return []*Movie{
		{
			ID:       "m1",
			Title:    "Inception",
			Genre:    Genre{Name: "Science Fiction"},
			Director: Director{Name: "Christopher Nolan", Birth: "1970"},
		},
		{
			ID:       "m2",
			Title:    "Memento",
			Genre:    Genre{Name: "Thriller"},
			Director: Director{Name: "Christopher Nolan", Birth: "1970"},
		},
	}
}
