// Package sequence loads the numeric sequences compared by wavecmp.
//
// The reference document is a bare JSON array of numbers. The candidate
// document is an object that holds the array under a named field, "Waves" by
// default, as written by the waveform generator. Integers and floats are both
// read as float64.
package sequence

import (
	"fmt"
	"os"
	"strings"

	"github.com/tidwall/gjson"

	apperrors "github.com/delatech/waveform/internal/errors"
)

// DefaultField is the candidate document field holding the sequence.
const DefaultField = "Waves"

// LoadReference reads a reference sequence from path.
func LoadReference(path string) ([]float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.InputError{Path: path, Err: err}
	}
	return ParseReference(data, path)
}

// LoadCandidate reads the sequence stored under field in the document at path.
func LoadCandidate(path, field string) ([]float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.InputError{Path: path, Err: err}
	}
	return ParseCandidate(data, field, path)
}

// ParseReference parses a document whose top level is an array of numbers.
// source names the document in errors.
func ParseReference(data []byte, source string) ([]float64, error) {
	if !gjson.ValidBytes(data) {
		return nil, apperrors.ParseError{Path: source, Reason: "invalid JSON"}
	}
	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return nil, apperrors.ParseError{Path: source, Reason: fmt.Sprintf("expected an array, got %s", describe(root))}
	}
	return numbers(root, source, "")
}

// ParseCandidate parses an object document and returns the array of numbers
// at field. field is a gjson path, so nested documents can be addressed as
// "result.Waves". When a key is repeated the last occurrence wins.
func ParseCandidate(data []byte, field, source string) ([]float64, error) {
	if field == "" {
		field = DefaultField
	}
	if !gjson.ValidBytes(data) {
		return nil, apperrors.ParseError{Path: source, Reason: "invalid JSON"}
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, apperrors.ParseError{Path: source, Reason: fmt.Sprintf("expected an object, got %s", describe(root))}
	}

	value := lookup(root, field)
	if !value.Exists() {
		return nil, apperrors.ParseError{Path: source, Field: field, Reason: "field is missing"}
	}
	if !value.IsArray() {
		return nil, apperrors.ParseError{Path: source, Field: field, Reason: fmt.Sprintf("expected an array, got %s", describe(value))}
	}
	return numbers(value, source, field)
}

// lookup resolves field against root. Plain dotted paths take the last
// occurrence of a repeated key, matching encoding/json. Paths with gjson
// wildcards, queries or modifiers are handed to gjson unchanged.
func lookup(root gjson.Result, field string) gjson.Result {
	if strings.ContainsAny(field, `*?#|@\`) {
		return root.Get(field)
	}
	cur := root
	for _, key := range strings.Split(field, ".") {
		if !cur.IsObject() {
			cur = cur.Get(key)
			continue
		}
		var last gjson.Result
		cur.ForEach(func(k, v gjson.Result) bool {
			if k.String() == key {
				last = v
			}
			return true
		})
		cur = last
	}
	return cur
}

func numbers(array gjson.Result, source, field string) ([]float64, error) {
	elems := array.Array()
	values := make([]float64, len(elems))
	for i, e := range elems {
		if e.Type != gjson.Number {
			return nil, apperrors.ParseError{
				Path:   source,
				Field:  field,
				Reason: fmt.Sprintf("element %d: expected a number, got %s", i, describe(e)),
			}
		}
		values[i] = e.Float()
	}
	return values, nil
}

func describe(r gjson.Result) string {
	switch {
	case r.IsArray():
		return "array"
	case r.IsObject():
		return "object"
	case r.Type == gjson.Null:
		return "null"
	case r.Type == gjson.String:
		return "string"
	case r.Type == gjson.True, r.Type == gjson.False:
		return "boolean"
	case r.Type == gjson.Number:
		return "number"
	default:
		return "nothing"
	}
}
