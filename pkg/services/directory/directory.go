// Package directory provides read-only lookups of departments, clients,
// staff and users referenced by report fields.
package directory

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/de-tools/dept-reports/pkg/models/domain"
	"gopkg.in/ini.v1"
)

type Directory interface {
	ListDepartments(ctx context.Context) ([]domain.DirectoryEntry, error)
	ListClients(ctx context.Context) ([]domain.DirectoryEntry, error)
	ListStaff(ctx context.Context) ([]domain.DirectoryEntry, error)
	ListUsers(ctx context.Context) ([]domain.DirectoryEntry, error)
}

const (
	groupDepartments = "departments"
	groupClients     = "clients"
	groupStaff       = "staff"
	groupUsers       = "users"
)

// FileDirectory reads an ini file whose sections are named "<group>.<id>",
// for example:
//
//	[users.u-1]
//	name = Jane Doe
//	position = Finance Manager
//	department = Finance
//
// The name key becomes the entry name; every other key is an attribute.
type FileDirectory struct {
	groups map[string][]domain.DirectoryEntry
}

func NewFileDirectory(path string) (*FileDirectory, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load directory %s: %w", path, err)
	}
	return fromIni(cfg)
}

// Parse reads a directory from ini formatted data.
func Parse(data []byte) (*FileDirectory, error) {
	cfg, err := ini.Load(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse directory: %w", err)
	}
	return fromIni(cfg)
}

// Empty returns a directory with no entries.
func Empty() *FileDirectory {
	return &FileDirectory{groups: map[string][]domain.DirectoryEntry{}}
}

func fromIni(cfg *ini.File) (*FileDirectory, error) {
	d := Empty()
	for _, section := range cfg.Sections() {
		if len(section.Keys()) == 0 {
			continue
		}
		group, id, ok := strings.Cut(section.Name(), ".")
		if !ok || id == "" {
			return nil, fmt.Errorf("directory section %q must be named <group>.<id>", section.Name())
		}
		switch group {
		case groupDepartments, groupClients, groupStaff, groupUsers:
		default:
			return nil, fmt.Errorf("unknown directory group %q", group)
		}

		entry := domain.DirectoryEntry{
			ID:         id,
			Name:       section.Key("name").String(),
			Attributes: map[string]string{},
		}
		for _, key := range section.Keys() {
			if key.Name() != "name" {
				entry.Attributes[key.Name()] = key.String()
			}
		}
		d.groups[group] = append(d.groups[group], entry)
	}

	for _, entries := range d.groups {
		sort.SliceStable(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	}
	return d, nil
}

func (d *FileDirectory) list(group string) []domain.DirectoryEntry {
	return append([]domain.DirectoryEntry{}, d.groups[group]...)
}

func (d *FileDirectory) ListDepartments(_ context.Context) ([]domain.DirectoryEntry, error) {
	return d.list(groupDepartments), nil
}

func (d *FileDirectory) ListClients(_ context.Context) ([]domain.DirectoryEntry, error) {
	return d.list(groupClients), nil
}

func (d *FileDirectory) ListStaff(_ context.Context) ([]domain.DirectoryEntry, error) {
	return d.list(groupStaff), nil
}

func (d *FileDirectory) ListUsers(_ context.Context) ([]domain.DirectoryEntry, error) {
	return d.list(groupUsers), nil
}

// User resolves a user entry into the acting user passed to authoring.
func User(ctx context.Context, dir Directory, id string) (domain.User, error) {
	users, err := dir.ListUsers(ctx)
	if err != nil {
		return domain.User{}, err
	}
	for _, u := range users {
		if u.ID == id {
			return domain.User{
				ID:         u.ID,
				Name:       u.Name,
				Position:   u.Attributes["position"],
				Department: u.Attributes["department"],
			}, nil
		}
	}
	return domain.User{}, fmt.Errorf("user %s not found", id)
}
