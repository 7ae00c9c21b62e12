// ABOUTME: Request DTOs for feed resolution endpoints
// ABOUTME: Provides validation tags and input cleanup for incoming requests

package requests

import "strings"

// ResolveRequest represents the request body for resolving multiple URLs
type ResolveRequest struct {
	// URLs are feed or web page URLs; scheme is optional
	URLs []string `json:"urls" minItems:"1" doc:"Feed or web page URLs to resolve"`
}

// CleanURLs trims every URL and drops blank entries, keeping order
func (r *ResolveRequest) CleanURLs() []string {
	cleaned := make([]string, 0, len(r.URLs))
	for _, u := range r.URLs {
		if u = strings.TrimSpace(u); u != "" {
			cleaned = append(cleaned, u)
		}
	}
	return cleaned
}
