package routing

import "strings"

// reservedSubdomains are platform-owned labels that can never belong to a
// tenant. A host whose first label appears here is treated as a base host.
// Wedding registration consults the same table, so a couple can never claim
// one of these as their site address.
var reservedSubdomains = map[string]struct{}{
	"www":       {},
	"admin":     {},
	"api":       {},
	"app":       {},
	"dashboard": {},
	"auth":      {},
	"login":     {},
	"signin":    {},
	"signup":    {},
	"register":  {},
	"account":   {},
	"accounts":  {},
	"billing":   {},
	"payments":  {},
	"mail":      {},
	"email":     {},
	"webmail":   {},
	"smtp":      {},
	"imap":      {},
	"pop":       {},
	"mx":        {},
	"ns1":       {},
	"ns2":       {},
	"dns":       {},
	"ftp":       {},
	"ssh":       {},
	"vpn":       {},
	"git":       {},
	"cdn":       {},
	"static":    {},
	"assets":    {},
	"img":       {},
	"images":    {},
	"media":     {},
	"files":     {},
	"uploads":   {},
	"download":  {},
	"blog":      {},
	"news":      {},
	"help":      {},
	"support":   {},
	"docs":      {},
	"status":    {},
	"dev":       {},
	"staging":   {},
	"test":      {},
	"demo":      {},
	"beta":      {},
	"internal":  {},
	"portal":    {},
	"console":   {},
	"my":        {},
	"shop":      {},
	"store":     {},
}

// IsReservedSubdomain reports whether label is platform-owned.
func IsReservedSubdomain(label string) bool {
	_, ok := reservedSubdomains[strings.ToLower(label)]
	return ok
}
