// Package markup renders pihello templates into terminal output.
//
// A template is plain text with two kinds of spans:
//
//	[bold red]      a style tag, replaced by its SGR escape sequence
//	{core_current}  a placeholder, replaced by the variable's value
//
// Tags and placeholders end at the first closing bracket or brace and do not
// nest. A backslash before [ or { emits that character literally; before
// anything else it is kept. A closing ] or } outside a span is literal text,
// and escape sequences already present in the input are copied unchanged.
// Every rendered string ends with a full SGR reset so styles never leak into
// whatever the terminal prints next.
//
// Unterminated spans, nested openers and unknown variables all fail with an
// errors.ErrTagParse error. Bad tag bodies fail with the color parser's
// errors.ErrColorParse error. Nothing is written on failure.
package markup
