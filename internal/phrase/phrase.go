// Package phrase turns the affirmative and negative English phrases used in
// feature files ("is", "is not", "have", ...) into a closed set of variants with
// boolean and plural semantics.
package phrase

import (
	"fmt"
	"strings"

	"github.com/hiberbee/kube-bdd/internal/messages"
	"github.com/hiberbee/kube-bdd/internal/steperrors"
)

// Variant is one member of the affirmation vocabulary
type Variant string

const (
	Contains    Variant = "CONTAINS"
	ShouldBe    Variant = "SHOULD_BE"
	ShouldNotBe Variant = "SHOULD_NOT_BE"
	IsNot       Variant = "IS_NOT"
	Is          Variant = "IS"
	HasNot      Variant = "HAS_NOT"
	Has         Variant = "HAS"
	Have        Variant = "HAVE"
	HaveNot     Variant = "HAVE_NOT"
	Are         Variant = "ARE"
	AreNot      Variant = "ARE_NOT"
)

// Pattern matches every phrase accepted by Parse at a step boundary, in any
// case and with a space or underscore between words.
const Pattern = `((?i:is|is[ _]not|has|has[ _]not|have|have[ _]not|should|should[ _]not|are|are[ _]not|contains))`

// Variants lists the vocabulary in declaration order.
var Variants = []Variant{Contains, ShouldBe, ShouldNotBe, IsNot, Is, HasNot, Has, Have, HaveNot, Are, AreNot}

// "should" and "should not" are part of the step vocabulary without a
// dedicated variant.
var aliases = map[string]Variant{
	"SHOULD":     ShouldBe,
	"SHOULD_NOT": ShouldNotBe,
}

// Normalize uppercases value and replaces spaces with underscores.
func Normalize(value string) string {
	return strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(value)), " ", "_")
}

// Parse returns the variant for value. Matching ignores case and accepts either
// spaces or underscores between words.
func Parse(value string) (Variant, error) {
	name := Normalize(value)
	for _, v := range Variants {
		if string(v) == name {
			return v, nil
		}
	}
	if v, ok := aliases[name]; ok {
		return v, nil
	}
	return "", steperrors.NewStepError(messages.UnknownPhrase, "Phrase", value, "Vocabulary", "affirmation")
}

// MustParse is Parse for phrases known at compile time.
func MustParse(value string) Variant {
	v, err := Parse(value)
	if err != nil {
		panic(err)
	}
	return v
}

// Yes reports whether the variant affirms.
func (v Variant) Yes() bool {
	switch v {
	case Is, Are, ShouldBe, Has, Have, Contains:
		return true
	case IsNot, AreNot, ShouldNotBe, HasNot, HaveNot:
		return false
	default:
		panic(fmt.Sprintf("phrase: unknown variant %q", string(v)))
	}
}

// No is the negation of Yes.
func (v Variant) No() bool {
	return !v.Yes()
}

// Plural reports whether the variant is a plural affirmative.
func (v Variant) Plural() bool {
	switch v {
	case Are, Have:
		return true
	case Contains, ShouldBe, ShouldNotBe, IsNot, Is, HasNot, Has, HaveNot, AreNot:
		return false
	default:
		panic(fmt.Sprintf("phrase: unknown variant %q", string(v)))
	}
}

func (v Variant) String() string {
	return string(v)
}

// Phrase is the lower-case English form, e.g. "is not".
func (v Variant) Phrase() string {
	return strings.ReplaceAll(strings.ToLower(string(v)), "_", " ")
}
