// Copyright (c) 2026 Myflix. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pointer builds pointers to literals, mostly for optional fields
// such as a director's death year or a partial profile update.
package pointer

// To returns a pointer to a copy of v (e.g. pointer.To("2017")).
func To[T any](v T) *T {
	return &v
}
