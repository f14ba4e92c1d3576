package nav

// ImageEntry is the read-only image shape the layer tree is built
// from: an id, a display label, and the image's filter chain in order.
type ImageEntry struct {
	ID      string
	Label   string
	Filters []FilterEntry
}

// FilterEntry names one filter node under an image.
type FilterEntry struct {
	ID    string
	Label string
}

// TreeNode is one node of the layer tree the UI renders: the node's
// navigation identifier, its display label, and its children in
// render order.
type TreeNode struct {
	ID       ID
	Label    string
	Children []TreeNode
}

// BuildTree constructs the layer tree for the current image list: an
// artboard root whose children are the images in the order given, each
// image carrying its filter nodes as children. Every node's ID comes
// from this package's constructors, so tree selections and recovery
// agree on identity.
func BuildTree(images []ImageEntry) TreeNode {
	root := TreeNode{
		ID:    ArtboardID(),
		Label: "Artboard",
	}
	if len(images) > 0 {
		root.Children = make([]TreeNode, 0, len(images))
	}
	for _, img := range images {
		node := TreeNode{
			ID:    ImageID(img.ID),
			Label: img.Label,
		}
		if len(img.Filters) > 0 {
			node.Children = make([]TreeNode, 0, len(img.Filters))
		}
		for _, f := range img.Filters {
			node.Children = append(node.Children, TreeNode{
				ID:    FilterID(img.ID, f.ID),
				Label: f.Label,
			})
		}
		root.Children = append(root.Children, node)
	}
	return root
}
