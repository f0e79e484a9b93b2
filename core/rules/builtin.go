package rules

import "github.com/gitcrew/gitcrew/schema"

// BotFilter rejects commits authored by known automation accounts, matched
// by exact author email.
type BotFilter struct {
	emails map[string]struct{}
}

var _ Rule = &BotFilter{} // Compile-time check

// NewBotFilter builds a filter for the given bot email addresses.
func NewBotFilter(emails []string) *BotFilter {
	set := make(map[string]struct{}, len(emails))
	for _, e := range emails {
		set[e] = struct{}{}
	}
	return &BotFilter{emails: set}
}

// Name implements the Rule interface.
func (f *BotFilter) Name() string { return "bot-filter" }

// Accept implements the Rule interface.
func (f *BotFilter) Accept(rec *schema.CommitRecord) (bool, error) {
	_, isBot := f.emails[rec.AuthorEmail]
	return !isBot, nil
}

// Postprocess implements the Rule interface. Filtering has no rewrite step.
func (f *BotFilter) Postprocess(_ *schema.CommitRecord) error { return nil }

// AliasRule rewrites author names to a canonical identity, so contributors
// who committed under several spellings are aggregated as one person.
type AliasRule struct {
	aliases map[string]string
}

var _ Rule = &AliasRule{} // Compile-time check

// NewAliasRule builds a rewriter from alias name to canonical name.
func NewAliasRule(aliases map[string]string) *AliasRule {
	return &AliasRule{aliases: aliases}
}

// Name implements the Rule interface.
func (r *AliasRule) Name() string { return "alias" }

// Accept implements the Rule interface. Aliasing never rejects a commit.
func (r *AliasRule) Accept(_ *schema.CommitRecord) (bool, error) { return true, nil }

// Postprocess implements the Rule interface.
func (r *AliasRule) Postprocess(rec *schema.CommitRecord) error {
	if canonical, ok := r.aliases[rec.AuthorName]; ok {
		rec.AuthorName = canonical
	}
	return nil
}
