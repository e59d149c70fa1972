// Package textutil provides small text helpers for deriving identifiers from
// human-entered campaign data.
//
// Slug folds accents (so "Menina Ôculos" and "Menina Oculos" agree) before
// reducing a string to a lowercase, filesystem-safe token. SanitizeFileName
// keeps display text intact while removing characters that break paths.
package textutil
