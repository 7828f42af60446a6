package validate

import (
	"sort"

	"sysforge/internal/config"
)

func validateUsers(users []config.User) []ValidationError {
	var errs []ValidationError

	nameCounts := make(map[string]int)
	for _, user := range users {
		nameCounts[user.Name]++
	}
	var duplicated []string
	for name, count := range nameCounts {
		if count > 1 {
			duplicated = append(duplicated, name)
		}
	}
	sort.Strings(duplicated)
	for _, name := range duplicated {
		errs = append(errs, DuplicateUser{Name: name, Count: nameCounts[name]})
	}

	for _, user := range users {
		if !userName.MatchString(user.Name) {
			errs = append(errs, InvalidUsername{Value: user.Name})
		}
		if user.Shell != "" {
			if reason := checkPath(user.Shell); reason != "" {
				errs = append(errs, InvalidPath{FieldPath: "users.shell", Value: user.Shell, Reason: reason})
			}
		}
		if user.Home != "" {
			if reason := checkPath(user.Home); reason != "" {
				errs = append(errs, InvalidPath{FieldPath: "users.home", Value: user.Home, Reason: reason})
			}
		}
	}

	return errs
}
