package dto

// CleanupOrphanedRequest controls orphaned-entry cleanup. Unlinked entries
// may be deliberate manual postings, so deleting them is strictly opt-in.
type CleanupOrphanedRequest struct {
	DryRun          bool `json:"dryRun"`
	IncludeUnlinked bool `json:"includeUnlinked"`
}
