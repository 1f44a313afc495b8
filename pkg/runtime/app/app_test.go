package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/de-tools/dept-reports/pkg/models/domain"
	"github.com/de-tools/dept-reports/pkg/services/authoring"
	"github.com/de-tools/dept-reports/pkg/services/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApp_LazyStore(t *testing.T) {
	a, err := New(config.Settings{DBPath: filepath.Join(t.TempDir(), "reports.db"), LogLevel: "info"})
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })

	s1, err := a.Store()
	require.NoError(t, err)
	s2, err := a.Store()
	require.NoError(t, err)
	assert.Same(t, s1, s2)

	svc, err := a.Authoring()
	require.NoError(t, err)
	assert.NotNil(t, svc)

	require.NoError(t, a.Close())
	require.NoError(t, a.Close())
}

func TestApp_DirectoryUser(t *testing.T) {
	path := filepath.Join(t.TempDir(), "directory.ini")
	require.NoError(t, os.WriteFile(path, []byte("[users.u-7]\nname = Ada\nposition = Auditor\ndepartment = Internal Audit\n"), 0o600))

	a, err := New(config.Settings{DBPath: "unused.db", DirectoryPath: path})
	require.NoError(t, err)
	ctx := context.Background()

	u, err := a.User(ctx, "u-7", "", "", "")
	require.NoError(t, err)
	assert.Equal(t, domain.User{ID: "u-7", Name: "Ada", Position: "Auditor", Department: "Internal Audit"}, u)

	u, err = a.User(ctx, "", "Bo", "Clerk", "Finance")
	require.NoError(t, err)
	assert.Equal(t, domain.User{Name: "Bo", Position: "Clerk", Department: "Finance"}, u)

	_, err = a.User(ctx, "", "", "", "")
	assert.Error(t, err)
}

func TestLocalUploader(t *testing.T) {
	u := &LocalUploader{newID: func() string { return "id" }}

	att, err := u.Upload(context.Background(), authoring.File{Name: "/tmp/minutes.pdf", Size: 42})
	require.NoError(t, err)
	assert.Equal(t, domain.Attachment{
		URL:          "file:///tmp/minutes.pdf",
		Filename:     "id-minutes.pdf",
		OriginalName: "minutes.pdf",
		Size:         42,
		Mimetype:     "application/pdf",
	}, att)

	_, err = u.Upload(context.Background(), authoring.File{})
	assert.Error(t, err)
}
