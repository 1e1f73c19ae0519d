package snapshot

// File represents the structure of a tree snapshot file.
type File struct {
	Screen ScreenDTO `yaml:"screen"`
	Root   *NodeDTO  `yaml:"root"`
}

// ScreenDTO describes the display the tree was captured on.
type ScreenDTO struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	StatusBar int `yaml:"statusBar"`
}

// NodeDTO is one node of the captured tree.
type NodeDTO struct {
	// ID names the node across snapshots. Nodes without an id are named by their
	// position under the parent.
	ID          string `yaml:"id"`
	Text        string `yaml:"text"`
	Description string `yaml:"description"`
	// Bounds holds left, top, width and height. Missing or empty bounds make the
	// node invisible, and an invisible node hides its whole subtree from scans,
	// so grouping nodes need bounds covering their children.
	Bounds []int `yaml:"bounds"`
	// Visible defaults to true.
	Visible  *bool      `yaml:"visible"`
	Stale    bool       `yaml:"stale"`
	Children []*NodeDTO `yaml:"children"`
}
