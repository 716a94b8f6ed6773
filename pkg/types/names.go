package types

import (
	"github.com/dlclark/regexp2"
	"golang.org/x/text/unicode/norm"

	"typeforge/pkg/errors"
)

// Identifier rules for type and field names: dotted segments of letters,
// digits and underscores, optionally ending in a backtick arity suffix the
// way generic definitions are conventionally named ("List`1").
var identPattern = regexp2.MustCompile(
	"^[\\p{L}_][\\p{L}\\p{Nd}_]*(\\.[\\p{L}_][\\p{L}\\p{Nd}_]*)*(\x60[0-9]+)?$",
	regexp2.None,
)

// normalizeName brings name into NFC form and validates it. Source text can
// arrive in any Unicode normalization; two spellings of the same identifier
// must land on the same stored name.
func normalizeName(op, typeName, name string) (string, error) {
	if name == "" {
		return "", errors.NewArgument(op, typeName, "name must not be empty")
	}
	name = norm.NFC.String(name)
	ok, err := identPattern.MatchString(name)
	if err != nil {
		return "", errors.NewArgument(op, typeName, "name could not be validated").CausedBy(err)
	}
	if !ok {
		return "", errors.NewArgument(op, typeName, "invalid identifier: "+name)
	}
	return name, nil
}
