package menus

import (
	"regexp"
	"strings"
)

/*
	Public menu URLs
	----------------
	- Responsible ONLY for building the address a QR code points at
	  and for validating menu ids taken from that address.
	- No access logic, no persistence here
*/

var menuID = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_\-]{0,63}$`)

// PublicPath is the public page of a menu.
// Example: "menu-1" -> "/m/menu-1"
func PublicPath(id string) string {
	return "/m/" + id
}

// BuildPublicURL joins the site base URL and the public path.
// Example: ("https://menyqr.no/", "menu-1") -> "https://menyqr.no/m/menu-1"
func BuildPublicURL(baseURL, id string) string {
	return strings.TrimRight(baseURL, "/") + PublicPath(id)
}

// ValidID reports whether id can be a menu id.
func ValidID(id string) bool {
	return menuID.MatchString(id)
}
