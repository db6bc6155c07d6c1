package entities

import "strings"

// FilterAll disables a status or platform predicate.
const FilterAll = "all"

type ContentFilter struct {
	Query    string
	Status   string
	Platform string
}

// Apply returns the visible subset of items. The input slice is never
// modified and the result keeps insertion order.
func (f ContentFilter) Apply(items []ContentItem) []ContentItem {
	query := strings.ToLower(strings.TrimSpace(f.Query))
	status := strings.ToLower(strings.TrimSpace(f.Status))
	platform := strings.ToLower(strings.TrimSpace(f.Platform))

	result := make([]ContentItem, 0, len(items))
	for _, item := range items {
		if query != "" && !strings.Contains(strings.ToLower(item.Title), query) {
			continue
		}
		if status != "" && status != FilterAll && string(item.Status) != status {
			continue
		}
		if platform != "" && platform != FilterAll && string(item.Platform) != platform {
			continue
		}
		result = append(result, item)
	}
	return result
}

// Validate rejects predicates naming an unknown status or platform.
func (f ContentFilter) Validate() bool {
	status := strings.ToLower(strings.TrimSpace(f.Status))
	if status != "" && status != FilterAll && !IsSupportedContentStatus(ContentStatus(status)) {
		return false
	}
	platform := strings.ToLower(strings.TrimSpace(f.Platform))
	if platform != "" && platform != FilterAll && !IsSupportedPlatform(Platform(platform)) {
		return false
	}
	return true
}
