// Package locale infers the base writing direction from the process locale.
package locale

import (
	"strings"

	"golang.org/x/text/language"

	"github.com/grindlemire/go-shadow/internal/layout"
)

// rtlScripts lists ISO 15924 codes of scripts written right to left.
var rtlScripts = map[string]bool{
	"Adlm": true,
	"Arab": true,
	"Hebr": true,
	"Mand": true,
	"Nkoo": true,
	"Rohg": true,
	"Samr": true,
	"Syrc": true,
	"Thaa": true,
	"Yezi": true,
}

// DirectionFor returns RTL when the likely script of tag is written right
// to left, and LTR otherwise (including for und).
func DirectionFor(tag language.Tag) layout.WritingDirection {
	script, confidence := tag.Script()
	if confidence == language.No {
		return layout.LTR
	}
	if rtlScripts[script.String()] {
		return layout.RTL
	}
	return layout.LTR
}

// FromEnv reads the POSIX locale variables in precedence order
// (LC_ALL, LC_MESSAGES, LANG) and converts the first non-empty one to a
// language tag. Unparseable values and the C/POSIX locales yield und.
func FromEnv(lookup func(string) (string, bool)) language.Tag {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v, ok := lookup(key); ok && v != "" {
			return Parse(v)
		}
	}
	return language.Und
}

// Parse converts a POSIX locale name such as "ar_EG.UTF-8@latin" into a
// BCP 47 tag.
func Parse(posix string) language.Tag {
	name := posix
	if i := strings.IndexAny(name, ".@"); i >= 0 {
		name = name[:i]
	}
	if name == "" || name == "C" || name == "POSIX" {
		return language.Und
	}
	tag, err := language.Parse(strings.ReplaceAll(name, "_", "-"))
	if err != nil {
		return language.Und
	}
	return tag
}
