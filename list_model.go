package imx

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ListItem is the element type a list editor can edit.
type ListItem interface {
	~string | ~int
}

// ErrEmptyInput is returned by Commit for a blank buffer.
var ErrEmptyInput = errors.New("imx: empty input")

// ListModel is the editing logic behind ListEditor, usable on its own.
// Items is owned by the caller; the model only inserts and removes in
// place.
type ListModel[T ListItem] struct {
	Items       *[]T
	Deduplicate bool

	// Equal decides duplicates. Nil means exact equality for ints and
	// NFC-normalized equality for strings.
	Equal func(a, b T) bool

	// Parse turns the input buffer into one element. Nil means trimmed
	// text for strings and strconv.Atoi for ints.
	Parse func(s string) (T, error)
}

func (m ListModel[T]) equal(a, b T) bool {
	if m.Equal != nil {
		return m.Equal(a, b)
	}
	if a == b {
		return true
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Kind() == reflect.String {
		return norm.NFC.String(va.String()) == norm.NFC.String(vb.String())
	}
	return false
}

// Contains reports whether an element equal to v is present.
func (m ListModel[T]) Contains(v T) bool {
	return slices.ContainsFunc(*m.Items, func(it T) bool { return m.equal(it, v) })
}

// Add appends v and reports whether the list changed. With Deduplicate an
// element already present is not added again.
func (m ListModel[T]) Add(v T) bool {
	if m.Deduplicate && m.Contains(v) {
		return false
	}
	*m.Items = append(*m.Items, v)
	return true
}

// Remove deletes the element at i. An out-of-range index changes nothing.
func (m ListModel[T]) Remove(i int) bool {
	if i < 0 || i >= len(*m.Items) {
		return false
	}
	*m.Items = slices.Delete(*m.Items, i, i+1)
	return true
}

// Commit parses buf as exactly one element and adds it.
func (m ListModel[T]) Commit(buf string) (bool, error) {
	parse := m.Parse
	if parse == nil {
		parse = parseItem[T]
	}
	v, err := parse(buf)
	if err != nil {
		return false, err
	}
	return m.Add(v), nil
}

func parseItem[T ListItem](s string) (T, error) {
	var v T
	s = strings.TrimSpace(s)
	if s == "" {
		return v, ErrEmptyInput
	}
	rv := reflect.ValueOf(&v).Elem()
	if rv.Kind() == reflect.String {
		rv.SetString(s)
		return v, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return v, fmt.Errorf("imx: %q is not a whole number: %w", s, err)
	}
	rv.SetInt(int64(n))
	return v, nil
}

func formatItem[T ListItem](v T) string {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.String {
		return rv.String()
	}
	return strconv.FormatInt(rv.Int(), 10)
}
