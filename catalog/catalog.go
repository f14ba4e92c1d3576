// Package catalog maintains the editor's ordered image list, each
// image's filter chain, and the active-master pointer the selection
// recovery rule falls back to.
//
// A Catalog is plain in-memory state owned by the surrounding
// application; it performs no I/O and is not safe for concurrent use —
// callers own synchronization, the same way they own re-render
// scheduling.
package catalog

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/pxkit/artboard/nav"
)

// ErrUnknownImage reports an image id that is not in the catalog.
var ErrUnknownImage = errors.New("catalog: unknown image")

// Filter is one filter node in an image's filter chain.
type Filter struct {
	ID   string
	Name string
}

// Image is one image record: a stable id, a display name, and the
// filter chain in application order.
type Image struct {
	ID      string
	Name    string
	Filters []Filter
}

// Catalog is the ordered image set plus the active-master pointer.
// The zero value is an empty catalog ready to use; New is provided
// for symmetry with the rest of the API.
type Catalog struct {
	images         []Image
	activeMasterID string
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{}
}

// Len returns the number of images.
func (c *Catalog) Len() int { return len(c.images) }

// AddImage appends a new image with a generated id and returns it.
// The first image added becomes the active master.
func (c *Catalog) AddImage(name string) Image {
	img := Image{ID: uuid.NewString(), Name: name}
	c.images = append(c.images, img)
	if c.activeMasterID == "" {
		c.activeMasterID = img.ID
	}
	return img
}

// AddFilter appends a new filter with a generated id to the image's
// filter chain and returns it. Fails with ErrUnknownImage when the
// image is not in the catalog.
func (c *Catalog) AddFilter(imageID, name string) (Filter, error) {
	for i := range c.images {
		if c.images[i].ID == imageID {
			f := Filter{ID: uuid.NewString(), Name: name}
			c.images[i].Filters = append(c.images[i].Filters, f)
			return f, nil
		}
	}
	return Filter{}, fmt.Errorf("%w: %q", ErrUnknownImage, imageID)
}

// RemoveImage deletes the image with the given id, reporting whether
// it was present. Removing the active master promotes the first
// remaining image; when none remain, there is no active master.
func (c *Catalog) RemoveImage(id string) bool {
	for i := range c.images {
		if c.images[i].ID != id {
			continue
		}
		c.images = append(c.images[:i], c.images[i+1:]...)
		if c.activeMasterID == id {
			c.activeMasterID = ""
			if len(c.images) > 0 {
				c.activeMasterID = c.images[0].ID
			}
		}
		return true
	}
	return false
}

// Images returns a copy of the image list in order. Filter slices are
// copied too, so callers cannot mutate catalog state through the
// result.
func (c *Catalog) Images() []Image {
	out := make([]Image, len(c.images))
	for i, img := range c.images {
		out[i] = img
		if img.Filters != nil {
			out[i].Filters = append([]Filter(nil), img.Filters...)
		}
	}
	return out
}

// ImageIDs returns the image ids in order.
func (c *Catalog) ImageIDs() []string {
	ids := make([]string, len(c.images))
	for i, img := range c.images {
		ids[i] = img.ID
	}
	return ids
}

// ActiveMasterID returns the active master image id, if any.
func (c *Catalog) ActiveMasterID() (string, bool) {
	return c.activeMasterID, c.activeMasterID != ""
}

// SetActiveMaster points the active master at an existing image.
// Fails with ErrUnknownImage when the image is not in the catalog.
func (c *Catalog) SetActiveMaster(id string) error {
	for i := range c.images {
		if c.images[i].ID == id {
			c.activeMasterID = id
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownImage, id)
}

// RecoverSelection maps a possibly stale selection to a valid one for
// the catalog's current contents, per nav.Recover.
func (c *Catalog) RecoverSelection(current nav.ID) nav.ID {
	return nav.Recover(current, c.ImageIDs(), c.activeMasterID)
}

// Tree builds the layer tree for the catalog's current contents.
func (c *Catalog) Tree() nav.TreeNode {
	entries := make([]nav.ImageEntry, len(c.images))
	for i, img := range c.images {
		e := nav.ImageEntry{ID: img.ID, Label: img.Name}
		if len(img.Filters) > 0 {
			e.Filters = make([]nav.FilterEntry, len(img.Filters))
			for j, f := range img.Filters {
				e.Filters[j] = nav.FilterEntry{ID: f.ID, Label: f.Name}
			}
		}
		entries[i] = e
	}
	return nav.BuildTree(entries)
}
