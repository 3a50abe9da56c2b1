package validators

// Allowlist is an immutable set of client IPs. It is built once at startup
// and shared by reference; concurrent reads need no locking.
type Allowlist struct {
	ips map[string]struct{}
}

// NewAllowlist builds an allowlist from ips. Entries are compared verbatim.
func NewAllowlist(ips ...string) *Allowlist {
	set := make(map[string]struct{}, len(ips))
	for _, ip := range ips {
		set[ip] = struct{}{}
	}
	return &Allowlist{ips: set}
}

// Contains reports whether ip is allowed. A nil allowlist allows nothing.
func (a *Allowlist) Contains(ip string) bool {
	if a == nil {
		return false
	}
	_, ok := a.ips[ip]
	return ok
}

// Len returns the number of allowed IPs.
func (a *Allowlist) Len() int {
	if a == nil {
		return 0
	}
	return len(a.ips)
}
