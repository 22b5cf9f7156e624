// Package wifi assembles the join string encoded into a network QR
// code, in the key:value format understood by phone camera apps.
package wifi

import (
	"fmt"
	"strings"
)

// Security names the authentication scheme of a network
type Security string

const (
	SecurityNone Security = "none"
	SecurityWPA  Security = "WPA"
	SecurityWEP  Security = "WEP"
)

// DefaultSecurity is what credential forms and flags preselect when the
// user does not choose a scheme. Open networks must be requested
// explicitly; the zero value of Network still means an open network.
const DefaultSecurity = SecurityWPA

// ParseSecurity converts a scheme name to a Security value. Matching is
// case-insensitive; the result uses the canonical spelling scanners
// expect.
func ParseSecurity(name string) (Security, error) {
	switch strings.ToLower(name) {
	case "none", "":
		return SecurityNone, nil
	case "wpa":
		return SecurityWPA, nil
	case "wep":
		return SecurityWEP, nil
	default:
		return SecurityNone, fmt.Errorf("unknown security %q (want WPA, WEP or none)", name)
	}
}

// Network describes the credentials a scanner needs to join a WiFi
// network. The zero value is an open, visible network.
type Network struct {
	SSID     string
	Security Security
	Password string
	Hidden   bool
}

// Payload assembles the WIFI: string: semicolon-joined segments with the
// SSID always present, security and password only for secured networks,
// and the hidden flag only when set. The exact byte layout matters --
// it is consumed by third-party scanning software.
func (n Network) Payload() string {
	segments := []string{"S:" + n.SSID}

	if n.Security != "" && n.Security != SecurityNone {
		segments = append(segments, "T:"+string(n.Security), "P:"+n.Password)
	}
	if n.Hidden {
		segments = append(segments, "H:true")
	}

	return "WIFI:" + strings.Join(segments, ";")
}
