package snowisland

// pathWalker encapsulates state during a single path search.
type pathWalker struct {
	island  *Island
	opts    Options
	climb   bool // slopes treated as open ground
	start   Point
	goal    Point
	best    int            // steps on the best goal path; -1 while none found
	visited map[Point]bool // per-path marks (PerPathVisited mode)
}

// LongestPath returns the number of steps (edges) on the longest route
// from Start to Goal that respects slopes: a slope cell can only be
// stepped onto by moving in its direction.
//
// The default SharedVisited policy expands each cell at most once across
// the whole search; see VisitPolicy for the trade-off. Returns
// ErrGoalUnreachable when no route connects Start and Goal.
func (i *Island) LongestPath(opts ...Option) (int, error) {
	return i.longest(false, opts)
}

// LongestClimbingPath returns the number of steps on the longest route
// from Start to Goal with slopes treated as ordinary open ground.
//
// The default PerPathVisited policy performs exact backtracking, which is
// exponential in the number of junctions; it is practical for sample-sized
// maps. Returns ErrGoalUnreachable when no route connects Start and Goal.
func (i *Island) LongestClimbingPath(opts ...Option) (int, error) {
	return i.longest(true, opts)
}

// longest dispatches a longest-path search under the movement rule
// selected by climb.
func (i *Island) longest(climb bool, opts []Option) (int, error) {
	// 1. Apply options over the operation's default policy.
	o := DefaultOptions()
	if climb {
		o.Policy = PerPathVisited
	}
	var fn Option
	for _, fn = range opts {
		fn(&o)
	}

	// 2. Run the selected strategy.
	w := &pathWalker{
		island: i,
		opts:   o,
		climb:  climb,
		start:  i.Start(),
		goal:   i.Goal(),
		best:   -1,
	}
	if o.Policy == PerPathVisited {
		return w.exact()
	}

	return w.shared()
}

// shared runs the SharedVisited search: an explicit stack of candidate
// paths, each cell claimed by the first path that pops it. Neighbors are
// pushed in the fixed order down, up, right, left, so the left branch of
// a junction is always expanded first.
func (w *pathWalker) shared() (int, error) {
	// 1. Seed the stack with the single-cell path at the start.
	stack := [][]Point{{w.start}}
	claimed := make(map[Point]bool, len(w.island.tiles))
	var best []Point

	// 2. Pop, claim, extend until the stack drains.
	var (
		path []Point
		ext  []Point
		cur  Point
		n    Point
	)
	for len(stack) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return 0, w.opts.Ctx.Err()
		default:
		}

		path = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		cur = path[len(path)-1]

		// A cell claimed by an earlier path kills this one.
		if claimed[cur] {
			continue
		}
		claimed[cur] = true

		if w.opts.OnVisit != nil {
			w.opts.OnVisit(cur, len(path)-1)
		}

		if cur == w.goal && len(path) > len(best) {
			best = path
		}

		// 3. Push every extension; claims are re-checked at pop time.
		for _, n = range w.island.steps(cur, w.climb) {
			ext = make([]Point, len(path)+1)
			copy(ext, path)
			ext[len(path)] = n
			stack = append(stack, ext)
		}
	}

	// 4. The goal was never popped: the trails do not connect.
	if len(best) == 0 {
		return 0, ErrGoalUnreachable
	}

	return len(best) - 1, nil
}

// exact runs the PerPathVisited search: classic backtracking over simple
// paths, exhaustive and exponential in the junction count.
func (w *pathWalker) exact() (int, error) {
	w.visited = make(map[Point]bool, len(w.island.tiles))
	if err := w.extend(w.start, 0); err != nil {
		return 0, err
	}
	if w.best < 0 {
		return 0, ErrGoalUnreachable
	}

	return w.best, nil
}

// extend grows the current simple path by one cell, recursing until every
// continuation is exhausted.
func (w *pathWalker) extend(cur Point, steps int) error {
	// 1. Cancellation check.
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	if w.opts.OnVisit != nil {
		w.opts.OnVisit(cur, steps)
	}

	// 2. Goal arrival terminates this path.
	if cur == w.goal {
		if steps > w.best {
			w.best = steps
		}

		return nil
	}

	// 3. Mark, recurse, unmark.
	w.visited[cur] = true
	var err error
	for _, n := range w.island.steps(cur, w.climb) {
		if w.visited[n] {
			continue
		}
		if err = w.extend(n, steps+1); err != nil {
			return err
		}
	}
	delete(w.visited, cur)

	return nil
}

// ShortestPath returns the number of steps on the shortest route from
// Start to Goal under the same slope-respecting movement rule as
// LongestPath. It is a plain BFS; the visit-policy option does not change
// its result. Returns ErrGoalUnreachable when no route connects the two.
func (i *Island) ShortestPath(opts ...Option) (int, error) {
	// 1. Apply options.
	o := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&o)
	}

	// 2. Classic BFS ring by ring.
	start, goal := i.Start(), i.Goal()
	dist := map[Point]int{start: 0}
	queue := []Point{start}
	var (
		cur Point
		n   Point
	)
	for len(queue) > 0 {
		select {
		case <-o.Ctx.Done():
			return 0, o.Ctx.Err()
		default:
		}

		cur = queue[0]
		queue = queue[1:]

		if o.OnVisit != nil {
			o.OnVisit(cur, dist[cur])
		}

		if cur == goal {
			return dist[cur], nil
		}

		for _, n = range i.steps(cur, false) {
			if _, seen := dist[n]; seen {
				continue
			}
			dist[n] = dist[cur] + 1
			queue = append(queue, n)
		}
	}

	return 0, ErrGoalUnreachable
}

// steps returns the cells reachable in one move from p, in the fixed
// expansion order down, up, right, left. A slope admits entry only when
// the move travels in its direction; leaving a slope is unrestricted.
// In climbing mode every tile except Blocked admits entry.
func (i *Island) steps(from Point, climb bool) []Point {
	var (
		out    []Point
		t      Tile
		ok     bool
		d      Direction
		dx, dy int
	)
	for _, n := range from.neighbors() {
		t, ok = i.tiles[n]
		if !ok || t == Blocked {
			continue
		}
		if climb || t == Open {
			out = append(out, n)
			continue
		}
		d, _ = t.SlopeDirection()
		dx, dy = d.Delta()
		if n.X == from.X+dx && n.Y == from.Y+dy {
			out = append(out, n)
		}
	}

	return out
}
