// Package icons maps CMS-supplied icon identifiers to the closed set the UI
// can actually render. Unknown identifiers resolve to a fallback icon rather
// than an error, so a typo in authored content never breaks a page.
package icons

import "strings"

// Icon is a renderable icon identifier.
type Icon string

// Fallback is served for any identifier outside the registry.
const Fallback Icon = "circle"

const (
	Building  Icon = "building"
	HardHat   Icon = "hard-hat"
	Key       Icon = "key"
	Chart     Icon = "chart"
	Shield    Icon = "shield"
	Home      Icon = "home"
	Phone     Icon = "phone"
	Mail      Icon = "mail"
	MapPin    Icon = "map-pin"
	Users     Icon = "users"
	Award     Icon = "award"
	Handshake Icon = "handshake"
)

var registry = map[string]Icon{
	string(Building):  Building,
	string(HardHat):   HardHat,
	string(Key):       Key,
	string(Chart):     Chart,
	string(Shield):    Shield,
	string(Home):      Home,
	string(Phone):     Phone,
	string(Mail):      Mail,
	string(MapPin):    MapPin,
	string(Users):     Users,
	string(Award):     Award,
	string(Handshake): Handshake,
}

// Resolve maps an authored identifier to a known icon. The boolean reports
// whether the identifier was recognized; unrecognized identifiers return the
// fallback icon.
func Resolve(name string) (Icon, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.ReplaceAll(key, "_", "-")
	if icon, ok := registry[key]; ok {
		return icon, true
	}
	return Fallback, false
}

// Known reports whether an identifier names a registered icon.
func Known(name string) bool {
	_, ok := Resolve(name)
	return ok
}

// All returns every registered identifier, for admin pickers.
func All() []Icon {
	out := make([]Icon, 0, len(registry))
	for _, icon := range registry {
		out = append(out, icon)
	}
	return out
}
