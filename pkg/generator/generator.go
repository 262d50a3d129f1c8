// Package generator derives candidate account numbers from bcrypt hashes.
package generator

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

const numberLength = 10

type AccountNumber struct {
	cost int
}

func NewAccountNumber(cost int) *AccountNumber {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &AccountNumber{cost: cost}
}

// Generate hashes a nanosecond timestamp mixed with random bytes and keeps
// the first 10 digits of the encoded hash, right-padded with zeros when the
// hash carries fewer. Uniqueness is not guaranteed; callers must check the
// store and retry on collision.
func (g *AccountNumber) Generate() (string, error) {
	entropy := make([]byte, 8)
	if _, err := rand.Read(entropy); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}

	seed := strconv.FormatInt(time.Now().UnixNano(), 10) + hex.EncodeToString(entropy)
	hash, err := bcrypt.GenerateFromPassword([]byte(seed), g.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash seed: %w", err)
	}

	var digits strings.Builder
	for _, c := range string(hash) {
		if c >= '0' && c <= '9' {
			digits.WriteRune(c)
			if digits.Len() == numberLength {
				break
			}
		}
	}

	number := digits.String()
	for len(number) < numberLength {
		number += "0"
	}
	return number, nil
}
