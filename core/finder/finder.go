package finder

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrNotFound is returned by FindOne when the key does not occur.
	ErrNotFound = errors.New("value not found")
	// ErrAmbiguous is returned by FindOne when the key occurs more than once.
	ErrAmbiguous = errors.New("multiple values found")
)

// Option configures a search.
type Option func(*options)

type options struct {
	allow map[string]struct{}
	deny  map[string]struct{}
}

// Allow restricts descent into mapping children to the given keys.
// An allow-list holding no real key name (Allow("")) blocks all descent.
func Allow(keys ...string) Option {
	return func(o *options) {
		if o.allow == nil {
			o.allow = make(map[string]struct{}, len(keys))
		}
		for _, k := range keys {
			o.allow[k] = struct{}{}
		}
	}
}

// Deny forbids descent into mapping children with the given keys.
func Deny(keys ...string) Option {
	return func(o *options) {
		if o.deny == nil {
			o.deny = make(map[string]struct{}, len(keys))
		}
		for _, k := range keys {
			o.deny[k] = struct{}{}
		}
	}
}

// descend reports whether the walk may enter the child stored under key.
func (o *options) descend(key string) bool {
	if len(o.allow) > 0 {
		if _, ok := o.allow[key]; !ok {
			return false
		}
	}
	_, denied := o.deny[key]
	return !denied
}

// FindAll returns every value stored under key, in pre-order.
// It never fails; an empty result is a nil slice.
func FindAll(container any, key string, opts ...Option) []any {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	var result []any
	walk(container, key, o, &result)
	return result
}

// FindOne returns the single value stored under key.
// It fails with ErrNotFound on zero matches and ErrAmbiguous on more than one.
func FindOne(container any, key string, opts ...Option) (any, error) {
	result := FindAll(container, key, opts...)
	switch len(result) {
	case 0:
		return nil, fmt.Errorf("%w: key=%q", ErrNotFound, key)
	case 1:
		return result[0], nil
	default:
		return nil, fmt.Errorf("%w: key=%q (%d matches)", ErrAmbiguous, key, len(result))
	}
}

func walk(node any, key string, o *options, result *[]any) {
	switch v := node.(type) {
	case Object:
		for _, m := range v {
			visit(m.Key, m.Value, key, o, result)
		}
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			visit(k, v[k], key, o, result)
		}
	case []any:
		for _, elem := range v {
			walk(elem, key, o, result)
		}
	}
}

func visit(k string, v any, key string, o *options, result *[]any) {
	if k == key {
		*result = append(*result, v)
	}
	if o.descend(k) {
		walk(v, key, o, result)
	}
}
