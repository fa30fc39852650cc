package catalog

import "github.com/BruksfildServices01/barbearia-api/internal/models"

const DefaultDurationMin = 30

var Types = []string{"corte", "barba", "combo"}

func IsValidType(t string) bool {
	for _, v := range Types {
		if v == t {
			return true
		}
	}
	return false
}

// IsStoredImage reports whether name refers to an uploaded file that the
// catalog owns. The default placeholder is shared and never removed.
func IsStoredImage(name string) bool {
	return name != "" && name != models.DefaultServiceImage
}
