// Package pagination holds the listing defaults the API applies when page
// controls are left unset.
package pagination

const (
	DefaultPage    = 1
	DefaultPerPage = 50
	MaxPerPage     = 100
)

// Normalize fills in the API defaults for unset page controls and clamps
// perPage to the documented maximum.
func Normalize(page, perPage int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}

	if perPage <= 0 {
		perPage = DefaultPerPage
	} else if perPage > MaxPerPage {
		perPage = MaxPerPage
	}

	return page, perPage
}
