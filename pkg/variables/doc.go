// Package variables holds the values a template can interpolate.
//
// A Store maps dot-joined keys to scalar Values. Nested maps coming from
// variable files are flattened on the way in, so the template placeholder
// {gravity_last_updated.relative.days} looks up the key
// "gravity_last_updated.relative.days" directly. A Store is never mutated
// while a template renders; Merge returns a new Store.
package variables
