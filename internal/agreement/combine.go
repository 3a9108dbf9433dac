package agreement

import "fmt"

// CombineClientNames joins the two sides' client names for display:
// both present -> "Owner & Tenant", one present -> that name, neither ->
// "Unknown".
func CombineClientNames(ownerName, tenantName string) string {
	switch {
	case ownerName != "" && tenantName != "":
		return ownerName + " & " + tenantName
	case ownerName != "":
		return ownerName
	case tenantName != "":
		return tenantName
	default:
		return "Unknown"
	}
}

// CombineAgentNames collapses identical agent names, otherwise labels each
// side: "X (Owner) & Y (Tenant)".
func CombineAgentNames(ownerAgent, tenantAgent string) string {
	switch {
	case ownerAgent != "" && tenantAgent != "":
		if ownerAgent == tenantAgent {
			return ownerAgent
		}
		return fmt.Sprintf("%s (Owner) & %s (Tenant)", ownerAgent, tenantAgent)
	case ownerAgent != "":
		return ownerAgent
	default:
		return tenantAgent
	}
}

// firstNonEmpty returns the first non-empty string.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
