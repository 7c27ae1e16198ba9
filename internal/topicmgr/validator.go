package topicmgr

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	namePattern   = regexp.MustCompile(`^[a-z][a-z0-9]*(\.[a-z][a-z0-9]*)*$`)
	modulePattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

	reservedPrefixes  = []string{"system.", "internal.", "debug."}
	frameworkPrefixes = []string{"ws.", "server."}
)

// Validator checks topic definitions against the naming rules.
type Validator struct{}

// NewValidator creates a validator.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateName checks a dotted, lowercase topic name.
func (v *Validator) ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if len(name) > 100 {
		return fmt.Errorf("name too long (max 100 characters)")
	}
	if !namePattern.MatchString(name) {
		return fmt.Errorf("name must be lowercase dot-separated segments: %q", name)
	}
	for _, prefix := range reservedPrefixes {
		if strings.HasPrefix(name, prefix) {
			return fmt.Errorf("name cannot start with reserved prefix %q", prefix)
		}
	}
	return nil
}

// ValidateDefinition checks a topic before registration.
func (v *Validator) ValidateDefinition(topic Topic) error {
	if topic == nil {
		return fmt.Errorf("topic cannot be nil")
	}
	if err := v.ValidateName(topic.Name()); err != nil {
		return fmt.Errorf("invalid topic name: %w", err)
	}
	if strings.TrimSpace(topic.Description()) == "" {
		return fmt.Errorf("topic description cannot be empty")
	}

	switch topic.Scope() {
	case ScopeFramework:
		if topic.Module() != "" {
			return fmt.Errorf("framework topics should not have a module")
		}
		for _, prefix := range frameworkPrefixes {
			if strings.HasPrefix(topic.Name(), prefix) {
				return nil
			}
		}
		return fmt.Errorf("framework topic must start with one of %v", frameworkPrefixes)
	case ScopeModule:
		if !modulePattern.MatchString(topic.Module()) {
			return fmt.Errorf("invalid module name %q", topic.Module())
		}
		return nil
	default:
		return fmt.Errorf("invalid topic scope: %s", topic.Scope())
	}
}
