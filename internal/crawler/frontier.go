package crawler

// Frontier is the explicit worklist/visited-set pair driving a crawl:
// a FIFO queue of paths still to fetch and the set of every path ever
// enqueued.
//
// Design decision: Marking paths visited on Push rather than on Pop keeps
// the queue free of duplicates by construction, so the spider never needs
// a second membership check.
type Frontier struct {
	queue   []frontierItem
	visited map[string]bool
}

// frontierItem is one queued path with its crawl depth.
type frontierItem struct {
	path  string
	depth int
}

// NewFrontier creates an empty frontier.
func NewFrontier() *Frontier {
	return &Frontier{
		queue:   make([]frontierItem, 0),
		visited: make(map[string]bool),
	}
}

// Push enqueues a path at the given depth unless it was already seen.
// Returns true when the path was actually enqueued.
func (f *Frontier) Push(path string, depth int) bool {
	if f.visited[path] {
		return false
	}
	f.visited[path] = true
	f.queue = append(f.queue, frontierItem{path: path, depth: depth})
	return true
}

// MarkVisited records a path as seen without enqueueing it.
// Used for pages fetched outside the crawl loop, like the post-login page.
func (f *Frontier) MarkVisited(path string) {
	f.visited[path] = true
}

// Pop dequeues the oldest path. ok is false when the frontier is empty.
func (f *Frontier) Pop() (path string, depth int, ok bool) {
	if len(f.queue) == 0 {
		return "", 0, false
	}
	item := f.queue[0]
	f.queue = f.queue[1:]
	return item.path, item.depth, true
}

// Len returns the number of paths still queued.
func (f *Frontier) Len() int {
	return len(f.queue)
}

// Seen reports whether a path has ever been enqueued or marked visited.
func (f *Frontier) Seen(path string) bool {
	return f.visited[path]
}
