package command

import (
	"strings"

	"github.com/tair/inventory-tracker/pkg/apperror"
)

func requiredName(name, field string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", apperror.Validation("%s name is required", field)
	}
	return name, nil
}
