package gitlog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/gitcrew/gitcrew/core/rules"
	"github.com/gitcrew/gitcrew/internal/contract"
)

// logFixture builds a delimited git log for the given records, each record
// being [hash, name, email, date, subject, fileBlock].
func logFixture(records ...[6]string) []byte {
	var sb []byte
	for _, r := range records {
		sb = append(sb, '\x1e')
		for i, f := range r {
			if i > 0 {
				sb = append(sb, '\x1f')
			}
			sb = append(sb, f...)
		}
	}
	return sb
}

var testNow = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

func TestExtractParsesRecords(t *testing.T) {
	rules.Reset()
	t.Cleanup(rules.Reset)

	raw := logFixture(
		[6]string{"aaa111", "Alice", "alice@example.com", "2021-01-04 10:30:00 +0200", "first commit", "\nsrc/main.go\nREADME.md\n"},
		[6]string{"bbb222", "Bob", "bob@example.com", "2021-01-05 09:00:00 +0000", "merge branch", "\n"},
	)

	client := &contract.MockGitClient{}
	client.On("GetCommitLog", mock.Anything, "/repos/demo", mock.Anything, mock.Anything).Return(raw, nil)

	got, err := Extract(context.Background(), client, "/repos/demo", time.Time{}, time.Time{}, testNow)
	require.NoError(t, err)
	require.Len(t, got, 2)

	first := got[0]
	assert.Equal(t, "demo:aaa111", first.ID)
	assert.Equal(t, "Alice", first.AuthorName)
	assert.Equal(t, "alice@example.com", first.AuthorEmail)
	assert.Equal(t, "first commit", first.Message)
	assert.Equal(t, "demo", first.Repository)
	assert.Equal(t, time.Date(2021, 1, 4, 8, 30, 0, 0, time.UTC), first.Date)
	assert.Equal(t, []string{"demo:README.md", "demo:src/main.go"}, first.Files)

	// Merge commits carry no file list.
	assert.Empty(t, got[1].Files)
	client.AssertExpectations(t)
}

func TestExtractPropagatesGitFailure(t *testing.T) {
	client := &contract.MockGitClient{}
	extractErr := &contract.ExtractionError{RepoPath: "/repos/demo", Err: errors.New("exit status 128")}
	client.On("GetCommitLog", mock.Anything, "/repos/demo", mock.Anything, mock.Anything).Return([]byte(nil), extractErr)

	_, err := Extract(context.Background(), client, "/repos/demo", time.Time{}, time.Time{}, testNow)
	var ee *contract.ExtractionError
	require.ErrorAs(t, err, &ee)
}

func TestParseDropsMalformedAndFutureDates(t *testing.T) {
	rules.Reset()
	t.Cleanup(rules.Reset)

	raw := logFixture(
		[6]string{"aaa111", "Alice", "a@x", "not a date", "bad", ""},
		[6]string{"bbb222", "Alice", "a@x", "2099-01-01 00:00:00 +0000", "post-dated", ""},
		[6]string{"ccc333", "Alice", "a@x", "2021-01-04 10:00:00 +0000", "fine", ""},
	)

	got, err := parse(raw, "demo", time.Time{}, time.Time{}, testNow)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "demo:ccc333", got[0].ID)
}

func TestParseDateRangeIsInclusive(t *testing.T) {
	rules.Reset()
	t.Cleanup(rules.Reset)

	raw := logFixture(
		[6]string{"a", "A", "a@x", "2020-12-31 23:59:59 +0000", "before", ""},
		[6]string{"b", "A", "a@x", "2021-01-01 00:00:00 +0000", "at start", ""},
		[6]string{"c", "A", "a@x", "2021-02-01 00:00:00 +0000", "at end", ""},
		[6]string{"d", "A", "a@x", "2021-02-01 00:00:01 +0000", "after", ""},
	)

	start := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2021, 2, 1, 0, 0, 0, 0, time.UTC)
	got, err := parse(raw, "demo", start, end, testNow)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "demo:b", got[0].ID)
	assert.Equal(t, "demo:c", got[1].ID)
}

func TestParseAppliesRules(t *testing.T) {
	rules.Reset()
	t.Cleanup(rules.Reset)
	rules.Register(rules.NewBotFilter([]string{"scripty@kde.org"}))
	rules.Register(rules.NewAliasRule(map[string]string{"Montel Laurent": "Laurent Montel"}))

	raw := logFixture(
		[6]string{"a", "scripty", "scripty@kde.org", "2021-01-04 10:00:00 +0000", "automated", ""},
		[6]string{"b", "Montel Laurent", "montel@kde.org", "2021-01-04 11:00:00 +0000", "fix", ""},
	)

	got, err := parse(raw, "demo", time.Time{}, time.Time{}, testNow)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Laurent Montel", got[0].AuthorName)
}

func TestParseShortRecordDefaultsFields(t *testing.T) {
	rules.Reset()
	t.Cleanup(rules.Reset)

	raw := []byte("\x1ea1\x1fAlice\x1falice@x\x1f2021-01-04 10:00:00 +0000")
	got, err := parse(raw, "demo", time.Time{}, time.Time{}, testNow)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Empty(t, got[0].Message)
	assert.Empty(t, got[0].Files)
}
