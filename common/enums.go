// Package common keeps enums and error types shared by the conversion
// packages and the command line layer, so neither has to import the other.
package common

//go:generate go tool go-enum --marshal --names

// Surface syntax of the generated stylesheet.
// ENUM(scss, sass)
type TargetSyntax int

// Ext returns file extension (with dot) for the syntax.
func (t TargetSyntax) Ext() string {
	return "." + t.String()
}

// Taxonomy of conversion failures.
// ENUM(SyntaxError, ImportNotFoundError, UnknownNodeKindError, OperatorConversionError, FeatureConversionError, ConfigurationError, UnknownError)
type ErrorKind int
