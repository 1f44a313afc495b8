package directory

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/de-tools/dept-reports/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
[departments.fin]
name = Finance

[departments.ict]
name = ICT

[clients.c-002]
name = Globex
sector = Energy

[clients.c-001]
name = Acme Ltd

[staff.s-1]
name = Sam Otieno
role = Analyst

[users.u-1]
name = Jane Doe
position = Finance Manager
department = Finance
`

func TestParse(t *testing.T) {
	ctx := context.Background()
	dir, err := Parse([]byte(sample))
	require.NoError(t, err)

	departments, err := dir.ListDepartments(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.DirectoryEntry{
		{ID: "fin", Name: "Finance", Attributes: map[string]string{}},
		{ID: "ict", Name: "ICT", Attributes: map[string]string{}},
	}, departments)

	clients, err := dir.ListClients(ctx)
	require.NoError(t, err)
	require.Len(t, clients, 2)
	assert.Equal(t, "Acme Ltd", clients[0].Name)
	assert.Equal(t, "Energy", clients[1].Attributes["sector"])

	staff, err := dir.ListStaff(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Analyst", staff[0].Attributes["role"])
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"missing id", "[users]\nname = x\n"},
		{"unknown group", "[vendors.v-1]\nname = x\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestNewFileDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "directory.ini")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	dir, err := NewFileDirectory(path)
	require.NoError(t, err)

	user, err := User(context.Background(), dir, "u-1")
	require.NoError(t, err)
	assert.Equal(t, domain.User{ID: "u-1", Name: "Jane Doe", Position: "Finance Manager", Department: "Finance"}, user)

	_, err = User(context.Background(), dir, "u-404")
	assert.EqualError(t, err, "user u-404 not found")

	_, err = NewFileDirectory(filepath.Join(t.TempDir(), "missing.ini"))
	assert.Error(t, err)
}

func TestEmpty(t *testing.T) {
	users, err := Empty().ListUsers(context.Background())
	require.NoError(t, err)
	assert.Empty(t, users)
}
