package kvcache

import "github.com/google/uuid"

// newRandomKey returns a random (version 4) UUID in its canonical string form.
func newRandomKey() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
