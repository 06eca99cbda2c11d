// Copyright (c) 2026 Myflix. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

import (
	"fmt"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// placeholderHash is compared against when no stored hash exists, so a login
// for an unknown username costs the same bcrypt work as a wrong password.
var placeholderHash = sync.OnceValue(func() []byte {
	hash, _ := bcrypt.GenerateFromPassword([]byte("myflix-placeholder"), bcrypt.DefaultCost)
	return hash
})

// HashPassword returns a salted bcrypt hash at the default cost.
//
// Inputs longer than 72 bytes are rejected by bcrypt; callers validate the
// length first so the user sees a field error instead.
func HashPassword(plainTextPassword string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(plainTextPassword), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("sec: failed to hash password: %w", err)
	}
	return string(hashedBytes), nil
}

// CheckPasswordHash reports whether plainTextPassword matches existingHash.
// A malformed hash never matches.
func CheckPasswordHash(plainTextPassword, existingHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(existingHash), []byte(plainTextPassword)) == nil
}

// BurnPasswordCheck runs a bcrypt comparison and discards the result. Call it on the
// unknown-user path of a login.
func BurnPasswordCheck(plainTextPassword string) {
	_ = bcrypt.CompareHashAndPassword(placeholderHash(), []byte(plainTextPassword))
}
