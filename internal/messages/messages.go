package messages

import (
	"fmt"
	"strings"
)

// This package provides all the failure messages that are reported in a scenario report.
// Note that we add a comment with the message parameters so that it is possible
// to see the parameters in the IDE when creating an error message.
var (
	// Phrase errors

	// UnknownPhrase The phrase '{{.Phrase}}' is not a recognized {{.Vocabulary}} phrase.
	UnknownPhrase = createMessage(
		KindParse,
		"The phrase '{{.Phrase}}' is not a recognized {{.Vocabulary}} phrase.",
	)

	// Cluster lookups

	// NamespaceNotFound The namespace '{{.Name}}' was not found on the cluster.
	NamespaceNotFound = createMessage(
		KindNotFound,
		"The namespace '{{.Name}}' was not found on the cluster.",
	)

	// Cache errors

	// CacheEntryMissing The scenario has no '{{.Key}}' value. Run '{{.Step}}' before asserting on it.
	CacheEntryMissing = createMessage(
		KindCacheMiss,
		"The scenario has no '{{.Key}}' value. Run '{{.Step}}' before asserting on it.",
	)

	// CacheEntryInvalid The scenario value '{{.Key}}' is a {{.Actual}}, expected a {{.Expected}}.
	CacheEntryInvalid = createMessage(
		KindCacheMiss,
		"The scenario value '{{.Key}}' is a {{.Actual}}, expected a {{.Expected}}.",
	)

	// Assertions

	// MasterURLMismatch Expected master url '{{.URL}}' {{.Phrase}} '{{.Host}}' to be {{.Expected}}, got {{.Actual}}.
	MasterURLMismatch = createMessage(
		KindAssertion,
		"Expected master url '{{.URL}}' {{.Phrase}} '{{.Host}}' to be {{.Expected}}, got {{.Actual}}.",
	)

	// ListSizeMismatch Expected list size to be greater than or equal to {{.Expected}}, got {{.Actual}}.
	ListSizeMismatch = createMessage(
		KindAssertion,
		"Expected list size to be greater than or equal to {{.Expected}}, got {{.Actual}}.",
	)

	// FieldNotMatched Expected any of {{.Count}} {{.Kind}} to have '{{.Path}}' containing '{{.Value}}', got {{.Actual}}.
	FieldNotMatched = createMessage(
		KindAssertion,
		"Expected any of {{.Count}} {{.Kind}} to have '{{.Path}}' containing '{{.Value}}', got {{.Actual}}.",
	)

	// DependencyMissing Expected '{{.File}}' to contain '{{.Dependency}}'.
	DependencyMissing = createMessage(
		KindAssertion,
		"Expected '{{.File}}' to contain '{{.Dependency}}'.",
	)

	// CommandExecutable Expected command '{{.Command}}' {{.Phrase}} executable, got executable={{.Actual}}.
	CommandExecutable = createMessage(
		KindAssertion,
		"Expected command '{{.Command}}' {{.Phrase}} executable, got executable={{.Actual}}.",
	)

	// External calls

	// ClusterRequestFailed The cluster request to {{.Operation}} failed: '{{.Error}}'.
	ClusterRequestFailed = createMessage(
		KindExternalCall,
		"The cluster request to {{.Operation}} failed: '{{.Error}}'.",
	)

	// FileReadFailed The file '{{.File}}' could not be read: '{{.Error}}'.
	FileReadFailed = createMessage(
		KindExternalCall,
		"The file '{{.File}}' could not be read: '{{.Error}}'.",
	)

	// ResourceConversionFailed The {{.Kind}} resource {{.Name}} could not be converted: '{{.Error}}'.
	ResourceConversionFailed = createMessage(
		KindExternalCall,
		"The {{.Kind}} resource {{.Name}} could not be converted: '{{.Error}}'.",
	)

	// Configuration related errors

	// ConfigurationFailed The runner startup failed: '{{.Error}}'.
	ConfigurationFailed = createMessage(
		KindExternalCall,
		"The runner startup failed: '{{.Error}}'.",
	)
)

// Kind classifies a message so callers can tell parse, lookup, cache, assertion
// and external call failures apart.
type Kind int

const (
	KindParse Kind = iota + 1
	KindNotFound
	KindCacheMiss
	KindAssertion
	KindExternalCall
)

func (k Kind) String() string {
	switch k {
	case KindParse:
		return "ParseError"
	case KindNotFound:
		return "NotFoundError"
	case KindCacheMiss:
		return "CacheMissError"
	case KindAssertion:
		return "AssertionFailure"
	case KindExternalCall:
		return "ExternalCallError"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

type MessageCode struct {
	kind Kind
	one  string
}

func (m *MessageCode) GetKind() Kind {
	return m.kind
}

func (m *MessageCode) GetMessage() string {
	return m.one
}

func createMessage(kind Kind, one string) *MessageCode {
	return &MessageCode{
		kind,
		one,
	}
}

func GetErrorMessage(messageCode *MessageCode, messageParams ...any) string {
	msg := messageCode.GetMessage()
	for i := 0; i < len(messageParams); i += 2 {
		param := messageParams[i]
		var paramValue any
		if i+1 < len(messageParams) {
			paramValue = messageParams[i+1]
		} else {
			paramValue = "NOT_DEFINED" // this is a placeholder for a missing parameter value - if you see this value then the code needs to be fixed
		}
		msg = strings.ReplaceAll(msg, fmt.Sprintf("{{.%v}}", param), fmt.Sprintf("%v", paramValue))
	}
	return msg
}
