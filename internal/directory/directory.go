// Package directory provides read access to the user directory, the external
// collaborator that assignment pickers consume. Users are stored as YAML
// records under the taskdeck home directory; taskdeck reads them but does
// not manage them.
package directory

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/kvarley/taskdeck/internal/constants"
	"github.com/kvarley/taskdeck/internal/ctxutil"
	"github.com/kvarley/taskdeck/internal/domain"
	deckerrors "github.com/kvarley/taskdeck/internal/errors"
)

// validRoles is the set of accepted role values.
//
//nolint:gochecknoglobals // Read-only lookup table
var validRoles = map[constants.Role]bool{
	constants.RoleAdmin:   true,
	constants.RoleManager: true,
	constants.RoleHR:      true,
	constants.RoleQC:      true,
	constants.RoleWorker:  true,
}

// validWorkerTypes is the set of accepted worker type values.
// Empty is allowed for non-workers.
//
//nolint:gochecknoglobals // Read-only lookup table
var validWorkerTypes = map[constants.WorkerType]bool{
	"":                          true,
	constants.WorkerTypeViewer:  true,
	constants.WorkerTypeClicker: true,
	constants.WorkerTypeBoth:    true,
}

// usersFile is the on-disk shape of the directory file.
type usersFile struct {
	Users []domain.User `yaml:"users"`
}

// Directory holds the loaded user records, indexed by id.
type Directory struct {
	users []domain.User
	byID  map[int]int
}

// Load reads the user directory from deckHome/users.yaml.
// A missing file yields an empty directory, not an error: the directory is
// optional and assignment falls back to unvalidated ids without it.
func Load(ctx context.Context, deckHome string) (*Directory, error) {
	if err := ctxutil.Canceled(ctx); err != nil {
		return nil, err
	}

	path := filepath.Join(deckHome, constants.UsersFileName)
	data, err := os.ReadFile(path) //#nosec G304 -- path is constructed from trusted base
	if err != nil {
		if os.IsNotExist(err) {
			return &Directory{byID: map[int]int{}}, nil
		}
		return nil, fmt.Errorf("failed to read user directory: %w", err)
	}

	var f usersFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse user directory: %w", err)
	}

	d := &Directory{
		users: f.Users,
		byID:  make(map[int]int, len(f.Users)),
	}
	for i, u := range f.Users {
		if err := validateUser(u); err != nil {
			return nil, fmt.Errorf("user directory entry %d: %w", i, err)
		}
		d.byID[u.ID] = i
	}
	return d, nil
}

// validateUser checks a single directory record.
func validateUser(u domain.User) error {
	if u.ID <= 0 {
		return fmt.Errorf("%w: id must be positive", deckerrors.ErrInvalidArgument)
	}
	if u.Name == "" {
		return fmt.Errorf("%w: name %w", deckerrors.ErrInvalidArgument, deckerrors.ErrEmptyValue)
	}
	if !validRoles[u.Role] {
		return fmt.Errorf("%w: %q", deckerrors.ErrInvalidRole, u.Role)
	}
	if !validWorkerTypes[u.WorkerType] {
		return fmt.Errorf("%w: %q", deckerrors.ErrInvalidWorkerType, u.WorkerType)
	}
	return nil
}

// Lookup returns the user with the given id.
func (d *Directory) Lookup(id int) (domain.User, error) {
	pos, ok := d.byID[id]
	if !ok {
		return domain.User{}, fmt.Errorf("user %d: %w", id, deckerrors.ErrUserNotFound)
	}
	return d.users[pos], nil
}

// List returns all users in file order.
func (d *Directory) List() []domain.User {
	out := make([]domain.User, len(d.users))
	copy(out, d.users)
	return out
}

// Empty reports whether the directory has no records, which is the case
// when no users.yaml exists.
func (d *Directory) Empty() bool {
	return len(d.users) == 0
}
