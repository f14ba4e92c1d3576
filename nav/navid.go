// Package nav models the editor's UI selection: a stable identifier
// for a selectable node (the artboard, an image, or a filter under an
// image) and the recovery rule that keeps a selection valid as the
// underlying image set changes.
//
// Identifiers are opaque to the rest of the system. This package is
// the single source of truth for their string encoding; no other
// component constructs or pattern-matches the format. Everything here
// is pure: recovery is a function of its inputs and never fails.
package nav

import (
	"errors"
	"fmt"
	"strings"
)

// Kind tags the selection target an ID refers to. The zero value,
// KindNone, is the "nothing selected" state.
type Kind uint8

const (
	KindNone Kind = iota
	KindArtboard
	KindImage
	KindFilter
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindArtboard:
		return "Artboard"
	case KindImage:
		return "Image"
	case KindFilter:
		return "Filter"
	default:
		return "Unknown"
	}
}

// ErrMalformedID reports a string that does not decode to a navigation
// identifier. Detectable with errors.Is.
var ErrMalformedID = errors.New("nav: malformed navigation id")

// Encoding separators. Ids themselves must not contain the separator;
// the catalog's generated UUIDs never do.
const (
	artboardToken = "artboard"
	imagePrefix   = "image:"
	filterPrefix  = "filter:"
	sep           = ":"
)

// ID identifies a selectable UI node. The zero value means "no
// selection" and is itself valid everywhere an ID is accepted.
//
// Equality is structural: two IDs compare equal with == exactly when
// they reference the same node. IDs are immutable values; they are
// never persisted, only recomputed per render from current state.
type ID struct {
	kind     Kind
	imageID  string
	filterID string
}

// ArtboardID returns the identifier for the artboard itself.
func ArtboardID() ID {
	return ID{kind: KindArtboard}
}

// ImageID returns the identifier for the image with the given id.
func ImageID(imageID string) ID {
	return ID{kind: KindImage, imageID: imageID}
}

// FilterID returns the identifier for a filter node under an image.
func FilterID(imageID, filterID string) ID {
	return ID{kind: KindFilter, imageID: imageID, filterID: filterID}
}

// Kind returns the tag of the referenced node.
func (id ID) Kind() Kind { return id.kind }

// IsZero reports whether id is the "no selection" identifier.
func (id ID) IsZero() bool { return id == ID{} }

// Image returns the referenced image id. It is set for both image and
// filter selections; ok is false for the artboard and for no
// selection.
func (id ID) Image() (imageID string, ok bool) {
	switch id.kind {
	case KindImage, KindFilter:
		return id.imageID, true
	default:
		return "", false
	}
}

// Filter returns the referenced image and filter ids; ok is false for
// anything but a filter selection.
func (id ID) Filter() (imageID, filterID string, ok bool) {
	if id.kind != KindFilter {
		return "", "", false
	}
	return id.imageID, id.filterID, true
}

// String encodes id in the stable wire-adjacent form consumed by the
// UI tree: "artboard", "image:<imageId>", or
// "filter:<imageId>:<filterId>". The zero ID encodes as "".
// ParseID is the exact inverse.
func (id ID) String() string {
	switch id.kind {
	case KindArtboard:
		return artboardToken
	case KindImage:
		return imagePrefix + id.imageID
	case KindFilter:
		return filterPrefix + id.imageID + sep + id.filterID
	default:
		return ""
	}
}

// ParseID decodes the encoding produced by [ID.String]. "" decodes to
// the zero (no selection) ID. Anything else that is not a well-formed
// identifier with non-empty ids fails with an error wrapping
// ErrMalformedID.
func ParseID(s string) (ID, error) {
	switch {
	case s == "":
		return ID{}, nil
	case s == artboardToken:
		return ArtboardID(), nil
	case strings.HasPrefix(s, imagePrefix):
		imageID := s[len(imagePrefix):]
		if imageID == "" || strings.Contains(imageID, sep) {
			return ID{}, fmt.Errorf("%w: %q", ErrMalformedID, s)
		}
		return ImageID(imageID), nil
	case strings.HasPrefix(s, filterPrefix):
		rest := s[len(filterPrefix):]
		imageID, filterID, ok := strings.Cut(rest, sep)
		if !ok || imageID == "" || filterID == "" || strings.Contains(filterID, sep) {
			return ID{}, fmt.Errorf("%w: %q", ErrMalformedID, s)
		}
		return FilterID(imageID, filterID), nil
	default:
		return ID{}, fmt.Errorf("%w: %q", ErrMalformedID, s)
	}
}
