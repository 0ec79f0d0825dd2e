package model

import "math/rand"

const (
	codeAlphabet      = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	orderNumberLength = 10

	articleMin = 10000
	articleMax = 100000
)

// generateOrderNumber returns a fresh human-readable order code.
// Codes are minted at build time, never at field-set time, so two
// builds of the same builder yield different numbers.
func generateOrderNumber() string {
	buf := make([]byte, orderNumberLength)
	for i := range buf {
		buf[i] = codeAlphabet[rand.Intn(len(codeAlphabet))]
	}
	return string(buf)
}

// generateArticle returns a random product article code.
func generateArticle() int {
	return articleMin + rand.Intn(articleMax-articleMin)
}
