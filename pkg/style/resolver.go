package style

import (
	"sort"
	"strings"

	"github.com/arthur-debert/pihello/pkg/errors"
)

// Resolver turns tag bodies into Specs. A Resolver may carry aliases: named
// tag bodies that stand in for their tokens wherever they appear. Aliases are
// resolved after attribute keywords and before colors, and cannot refer to
// other aliases.
//
// A Resolver is immutable and safe for concurrent use.
type Resolver struct {
	aliases map[string]Spec
}

var defaultResolver = &Resolver{}

// NewResolver builds a Resolver from an alias table. Every alias body is
// parsed up front; an invalid one fails with errors.ErrThemeInvalid.
func NewResolver(aliases map[string]string) (*Resolver, error) {
	r := &Resolver{aliases: make(map[string]Spec, len(aliases))}
	for name, body := range aliases {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" || strings.ContainsAny(key, " \t") {
			return nil, errors.Newf(errors.ErrThemeInvalid, "invalid alias name %q", name).
				WithDetail("alias", name)
		}
		if _, ok := LookupAttribute(key); ok {
			return nil, errors.Newf(errors.ErrThemeInvalid, "alias %q shadows an attribute keyword", name).
				WithDetail("alias", name)
		}
		spec, err := defaultResolver.Parse(body)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrThemeInvalid, "alias %q", name).
				WithDetail("alias", name).
				WithDetail("body", body)
		}
		r.aliases[key] = spec
	}
	return r, nil
}

// Parse splits body on whitespace and resolves each token in order.
// Unknown tokens fail with the color parser's errors.ErrColorParse error.
func (r *Resolver) Parse(body string) (Spec, error) {
	fields := strings.Fields(strings.ToLower(body))
	if len(fields) == 0 {
		return nil, nil
	}

	spec := make(Spec, 0, len(fields))
	for _, tok := range fields {
		if _, ok := LookupAttribute(tok); !ok {
			if alias, ok := r.aliases[tok]; ok {
				spec = append(spec, alias...)
				continue
			}
		}

		t, err := parseToken(tok)
		if err != nil {
			if coded, ok := err.(*errors.Error); ok {
				coded.WithDetail("token", tok)
			}
			return nil, err
		}
		spec = append(spec, t)
	}
	return spec, nil
}

// Render parses body and returns its escape sequence.
func (r *Resolver) Render(body string) (string, error) {
	spec, err := r.Parse(body)
	if err != nil {
		return "", err
	}
	return spec.Render(), nil
}

// Aliases returns the alias names known to r, sorted.
func (r *Resolver) Aliases() []string {
	out := make([]string, 0, len(r.aliases))
	for name := range r.aliases {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
