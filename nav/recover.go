package nav

import "slices"

// Recover returns a valid selection for the current image set.
//
// It runs whenever the image list or the active-master pointer
// changes, so the UI never holds a dangling reference to a deleted
// image or filter:
//
//   - A zero (no selection) id passes through untouched; there is
//     nothing to recover.
//   - A selection that does not reference an image — the artboard —
//     passes through untouched; image-set changes never invalidate it.
//   - An image or filter selection whose image id is still in
//     knownImageIDs is still valid and passes through untouched.
//   - Otherwise the reference is stale: the selection moves to the
//     active master image when activeMasterImageID is non-empty, and
//     falls back to the artboard when there is no active image at all.
//
// Recover is pure and total; it always returns a navigable identifier.
func Recover(current ID, knownImageIDs []string, activeMasterImageID string) ID {
	imageID, ok := current.Image()
	if !ok {
		return current
	}
	if slices.Contains(knownImageIDs, imageID) {
		return current
	}
	if activeMasterImageID != "" {
		return ImageID(activeMasterImageID)
	}
	return ArtboardID()
}
