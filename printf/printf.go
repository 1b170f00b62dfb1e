// Package printf implements FTL's extensible formatted-output machinery
// (spec §4.11): a format table mapping a verb letter to a registered
// formatter closure, so auxiliary modules (JSON's %j/%J, in principle an
// XML or ELF module's own verbs) can extend the set of recognized
// `%<letter>` sequences without this package knowing about them ahead of
// time. Grounded on the same registry-by-name pattern value/types.go
// uses for value kinds and dir uses for struct-dir field specs —
// register once at init time, look up by key thereafter.
package printf

import (
	"fmt"
	"strings"

	"github.com/ftl-lang/ftl/value"
)

// FormatFunc renders v as the text a verb substitutes into the output,
// given root for any nested value.String calls a composite formatter
// needs to resolve directory contents.
type FormatFunc func(root value.Value, v value.Value) (string, error)

// Verb is one registered `%<letter>` formatter (spec: "a format table
// maps letter -> (applicable type, help, closure)").
type Verb struct {
	Letter byte
	Help   string
	// Type restricts which value kind the verb accepts; nil accepts any
	// value (the default %s verb, for instance).
	Type   *value.Type
	Format FormatFunc
}

var registry = map[byte]Verb{}

// Register installs v, usable in any format string from then on.
// Register panics on a duplicate letter — two modules fighting over the
// same verb is a startup wiring bug, not a condition a script can
// recover from, matching value.Register's panic-on-duplicate-name
// policy for the same reason.
func Register(v Verb) {
	if _, exists := registry[v.Letter]; exists {
		panic(fmt.Sprintf("printf: duplicate verb %q", v.Letter))
	}
	registry[v.Letter] = v
}

// Lookup finds a registered verb by letter.
func Lookup(letter byte) (Verb, bool) {
	v, ok := registry[letter]
	return v, ok
}

func init() {
	Register(Verb{
		Letter: 's',
		Help:   "a value's default display form",
		Format: func(root, v value.Value) (string, error) { return v.String(root), nil },
	})
}

// Sprintf expands format, consuming one of args per `%<letter>`
// sequence in declaration order (spec §4.11). A literal `%%` yields one
// '%'. An unregistered letter or a type mismatch against a verb's
// declared Type is reported as an error rather than passed through
// verbatim, so a typo surfaces immediately instead of printing "%z" into
// a script's output.
func Sprintf(root value.Value, format string, args []value.Value) (string, error) {
	var b strings.Builder
	argi := 0
	for i := 0; i < len(format); i++ {
		c := format[i]
		if c != '%' {
			b.WriteByte(c)
			continue
		}
		i++
		if i >= len(format) {
			return "", fmt.Errorf("printf: trailing %%")
		}
		letter := format[i]
		if letter == '%' {
			b.WriteByte('%')
			continue
		}
		verb, ok := Lookup(letter)
		if !ok {
			return "", fmt.Errorf("printf: unknown verb %%%c", letter)
		}
		if argi >= len(args) {
			return "", fmt.Errorf("printf: not enough arguments for %%%c", letter)
		}
		arg := args[argi]
		argi++
		if verb.Type != nil && arg.Kind() != verb.Type {
			return "", fmt.Errorf("printf: %%%c expects %s, got %s", letter, verb.Type.Name, arg.Kind().Name)
		}
		s, err := verb.Format(root, arg)
		if err != nil {
			return "", err
		}
		b.WriteString(s)
	}
	return b.String(), nil
}
