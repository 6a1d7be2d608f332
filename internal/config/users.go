package config

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/carson-networks/hustle-tracker/internal/core"
)

// usersFile is the layout of USERS_FILE:
//
//	[[users]]
//	id = "alice"
//	role = "ADMIN"
type usersFile struct {
	Users []userEntry `toml:"users"`
}

type userEntry struct {
	ID   string `toml:"id"`
	Role string `toml:"role"`
}

// LoadUsers reads a TOML user directory. A missing role means USER.
func LoadUsers(path string) ([]core.User, error) {
	var file usersFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, errors.Wrapf(err, "decode users file %s", path)
	}

	users := make([]core.User, 0, len(file.Users))
	for i, entry := range file.Users {
		if entry.ID == "" {
			return nil, errors.Errorf("users file %s: entry %d has no id", path, i)
		}
		role := core.Role(entry.Role)
		switch role {
		case "":
			role = core.RoleUser
		case core.RoleAdmin, core.RoleUser:
		default:
			return nil, errors.Errorf("users file %s: user %q has unknown role %q", path, entry.ID, entry.Role)
		}
		users = append(users, core.User{ID: entry.ID, Role: role})
	}
	return users, nil
}

// Users returns the seed user directory: the users file first, then every
// ADMIN_USER_IDS entry as an admin. Later entries win for repeated ids.
func (c *Config) Users() ([]core.User, error) {
	var users []core.User
	if c.UsersFile != "" {
		fromFile, err := LoadUsers(c.UsersFile)
		if err != nil {
			return nil, err
		}
		users = append(users, fromFile...)
	}
	for _, id := range c.AdminUserIDs {
		users = append(users, core.User{ID: id, Role: core.RoleAdmin})
	}
	return users, nil
}
