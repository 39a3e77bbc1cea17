package uploader

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwaldron/gerritup/config"
	"github.com/mwaldron/gerritup/internal/git"
)

func newTestUploader(mock *git.MockClient) (*Uploader, *bytes.Buffer) {
	u := New(mock, config.DefaultConfig())
	out := &bytes.Buffer{}
	u.Stdout = out
	return u, out
}

func reviewMock() *git.MockClient {
	return &git.MockClient{
		Branches: map[string]git.BranchConfig{
			"work": {Remote: "origin", Merge: "refs/heads/main"},
		},
		Contains: map[string][]string{
			"HEAD": {"work"},
		},
		RemoteURLs: map[string]string{
			"origin": "sso://host/proj",
		},
	}
}

func TestRun_PushesReviewRefspec(t *testing.T) {
	mock := reviewMock()
	u, out := newTestUploader(mock)

	err := u.Run(context.Background(), "HEAD", []string{"a", "b@x.com"})

	require.NoError(t, err)
	require.Len(t, mock.Pushed, 1)
	assert.Equal(t, "origin HEAD:refs/for/main%r=a@google.com,r=b@x.com", mock.Pushed[0])
	assert.Contains(t, out.String(), "Uploading HEAD to origin branch main")
}

func TestRun_NoReviewers(t *testing.T) {
	mock := reviewMock()
	u, _ := newTestUploader(mock)

	err := u.Run(context.Background(), "HEAD", nil)

	require.NoError(t, err)
	require.Len(t, mock.Pushed, 1)
	assert.Equal(t, "origin HEAD:refs/for/main", mock.Pushed[0])
}

func TestRun_RemoteSanityFailsBeforePush(t *testing.T) {
	mock := reviewMock()
	mock.RemoteURLs["origin"] = "https://github.com/org/proj.git"
	u, _ := newTestUploader(mock)

	err := u.Run(context.Background(), "HEAD", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not look like a review server")
	assert.Empty(t, mock.Pushed, "no push may happen after a failed sanity check")
}

func TestRun_ResolutionFailureHasContext(t *testing.T) {
	mock := &git.MockClient{}
	u, _ := newTestUploader(mock)

	err := u.Run(context.Background(), "deadbeef", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "can't get upstream for deadbeef")
	assert.Empty(t, mock.Pushed)
}

func TestRun_InvalidReviewerFailsBeforePush(t *testing.T) {
	mock := reviewMock()
	u, _ := newTestUploader(mock)

	err := u.Run(context.Background(), "HEAD", []string{"not a reviewer"})

	require.Error(t, err)
	assert.Empty(t, mock.Pushed)
}

func TestRun_PushErrorPropagates(t *testing.T) {
	mock := reviewMock()
	mock.PushErr = errors.New("remote rejected")
	u, _ := newTestUploader(mock)

	err := u.Run(context.Background(), "HEAD", nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, mock.PushErr)
}
