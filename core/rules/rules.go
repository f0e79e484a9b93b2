// Package rules hosts the pluggable commit filters and rewriters applied
// during extraction. A commit record passes extraction only if every
// registered rule accepts it; accepted records are then handed to every
// rule's Postprocess in registration order.
package rules

import (
	"github.com/gitcrew/gitcrew/internal/contract"
	"github.com/gitcrew/gitcrew/schema"
)

// Rule is a stateless predicate plus mutator over a single commit record.
// Implementations must be safe for concurrent use: extraction runs one
// worker per repository and all workers share the registry.
type Rule interface {
	// Name identifies the rule in error messages.
	Name() string

	// Accept reports whether the record should be kept. It must not
	// mutate the record.
	Accept(rec *schema.CommitRecord) (bool, error)

	// Postprocess rewrites the record in place, e.g. to normalize
	// author identities.
	Postprocess(rec *schema.CommitRecord) error
}

// registry is fixed for the process lifetime: rules are registered during
// startup, before any extraction begins, and only read afterwards.
var registry []Rule

// Register appends a rule to the process-wide registry. Rules run in
// registration order.
func Register(r Rule) {
	registry = append(registry, r)
}

// Reset clears the registry. Intended for tests.
func Reset() {
	registry = nil
}

// Registered returns the current rule set in registration order.
func Registered() []Rule {
	return registry
}

// Accept runs every registered rule's predicate against the record.
// The record is kept only when all rules accept it. A rule failure is
// fatal for the whole run.
func Accept(rec *schema.CommitRecord) (bool, error) {
	for _, r := range registry {
		ok, err := r.Accept(rec)
		if err != nil {
			return false, &contract.RuleError{Rule: r.Name(), Stage: "accept", Err: err}
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// Postprocess runs every registered rule's mutator against the record in
// registration order.
func Postprocess(rec *schema.CommitRecord) error {
	for _, r := range registry {
		if err := r.Postprocess(rec); err != nil {
			return &contract.RuleError{Rule: r.Name(), Stage: "postprocess", Err: err}
		}
	}
	return nil
}

// Setup installs the built-in rules derived from the runtime configuration.
// It is called once from command setup, after config validation.
func Setup(cfg *contract.Config) {
	if len(cfg.BotEmails) > 0 {
		Register(NewBotFilter(cfg.BotEmails))
	}
	if len(cfg.Aliases) > 0 {
		Register(NewAliasRule(cfg.Aliases))
	}
}
