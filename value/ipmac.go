package value

import (
	"fmt"
	"net"

	"golang.org/x/crypto/blake2b"
)

// IPAddr is a fixed-width IPv4/IPv6 address value (spec §3 "IP address").
type IPAddr struct {
	Header
	ip net.IP
}

// NewIPAddr wraps a net.IP as an IPAddr value.
func NewIPAddr(l *Locals, ip net.IP) *IPAddr {
	v := &IPAddr{ip: ip}
	v.setKind(TIPAddr)
	if l != nil {
		return Alloc(l, v)
	}
	return v
}

func (v *IPAddr) IP() net.IP          { return v.ip }
func (v *IPAddr) String(root Value) string { return v.ip.String() }

func printIPAddr(root, v Value) string { return v.(*IPAddr).String(root) }

func parseIPAddr(line *string) (Value, bool) {
	s := *line
	end := 0
	for end < len(s) && (isDigit(s[end]) || s[end] == '.' || s[end] == ':' || (s[end] >= 'a' && s[end] <= 'f') || (s[end] >= 'A' && s[end] <= 'F')) {
		end++
	}
	for end > 0 {
		if ip := net.ParseIP(s[:end]); ip != nil {
			*line = s[end:]
			return NewIPAddr(nil, ip), true
		}
		end--
	}
	return nil, false
}

func cmpIPAddr(a, b Value) int {
	x, y := a.(*IPAddr).ip, b.(*IPAddr).ip
	return compareBytes(x, y)
}

func init() {
	TIPAddr.Print = printIPAddr
	TIPAddr.Parse = parseIPAddr
	TIPAddr.Compare = cmpIPAddr
}

// MACAddr is a fixed-width 6-byte hardware address value (spec §3 "MAC
// address").
type MACAddr struct {
	Header
	mac net.HardwareAddr
}

// NewMACAddr wraps a net.HardwareAddr as a MACAddr value.
func NewMACAddr(l *Locals, mac net.HardwareAddr) *MACAddr {
	v := &MACAddr{mac: mac}
	v.setKind(TMACAddr)
	if l != nil {
		return Alloc(l, v)
	}
	return v
}

func (v *MACAddr) MAC() net.HardwareAddr { return v.mac }
func (v *MACAddr) String(root Value) string { return v.mac.String() }

func printMACAddr(root, v Value) string { return v.(*MACAddr).String(root) }

func parseMACAddr(line *string) (Value, bool) {
	s := *line
	if len(s) < 17 {
		return nil, false
	}
	mac, err := net.ParseMAC(s[:17])
	if err != nil {
		return nil, false
	}
	*line = s[17:]
	return NewMACAddr(nil, mac), true
}

func cmpMACAddr(a, b Value) int {
	return compareBytes(a.(*MACAddr).mac, b.(*MACAddr).mac)
}

func init() {
	TMACAddr.Print = printMACAddr
	TMACAddr.Parse = parseMACAddr
	TMACAddr.Compare = cmpMACAddr
}

func compareBytes(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

// ShortHash produces an 8-character display hash of b using blake2b,
// used by handle and coroutine identifiers that need a stable, short,
// collision-resistant display id (grounded on the teacher's
// core/sdk/secret/idfactory.go use of blake2b for expression IDs).
func ShortHash(b []byte) string {
	sum := blake2b.Sum256(b)
	return fmt.Sprintf("%x", sum[:4])
}
