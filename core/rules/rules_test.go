package rules

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitcrew/gitcrew/internal/contract"
	"github.com/gitcrew/gitcrew/schema"
)

type failingRule struct{ stage string }

func (r *failingRule) Name() string { return "failing" }

func (r *failingRule) Accept(_ *schema.CommitRecord) (bool, error) {
	if r.stage == "accept" {
		return false, errors.New("boom")
	}
	return true, nil
}

func (r *failingRule) Postprocess(_ *schema.CommitRecord) error {
	if r.stage == "postprocess" {
		return errors.New("boom")
	}
	return nil
}

func TestBotFilter(t *testing.T) {
	f := NewBotFilter([]string{"scripty@kde.org"})

	ok, err := f.Accept(&schema.CommitRecord{AuthorEmail: "scripty@kde.org"})
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = f.Accept(&schema.CommitRecord{AuthorEmail: "dev@example.com"})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAliasRule(t *testing.T) {
	r := NewAliasRule(map[string]string{"Montel Laurent": "Laurent Montel"})

	rec := &schema.CommitRecord{AuthorName: "Montel Laurent"}
	require.NoError(t, r.Postprocess(rec))
	assert.Equal(t, "Laurent Montel", rec.AuthorName)

	rec = &schema.CommitRecord{AuthorName: "Someone Else"}
	require.NoError(t, r.Postprocess(rec))
	assert.Equal(t, "Someone Else", rec.AuthorName)
}

func TestAcceptRequiresAllRules(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	Register(NewBotFilter([]string{"bot@ci.invalid"}))
	Register(NewAliasRule(map[string]string{"A": "B"}))

	ok, err := Accept(&schema.CommitRecord{AuthorEmail: "dev@example.com"})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Accept(&schema.CommitRecord{AuthorEmail: "bot@ci.invalid"})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPostprocessRunsInRegistrationOrder(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	Register(NewAliasRule(map[string]string{"one": "two"}))
	Register(NewAliasRule(map[string]string{"two": "three"}))

	rec := &schema.CommitRecord{AuthorName: "one"}
	require.NoError(t, Postprocess(rec))
	assert.Equal(t, "three", rec.AuthorName)
}

func TestRuleFailureIsFatal(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	Register(&failingRule{stage: "accept"})
	_, err := Accept(&schema.CommitRecord{})
	var ruleErr *contract.RuleError
	require.ErrorAs(t, err, &ruleErr)
	assert.Equal(t, "failing", ruleErr.Rule)
	assert.Equal(t, "accept", ruleErr.Stage)

	Reset()
	Register(&failingRule{stage: "postprocess"})
	err = Postprocess(&schema.CommitRecord{})
	require.ErrorAs(t, err, &ruleErr)
	assert.Equal(t, "postprocess", ruleErr.Stage)
}

func TestSetupInstallsConfiguredRules(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	Setup(&contract.Config{
		BotEmails: []string{"bot@ci.invalid"},
		Aliases:   map[string]string{"a": "b"},
	})
	assert.Len(t, Registered(), 2)

	Reset()
	Setup(&contract.Config{})
	assert.Empty(t, Registered())
}
