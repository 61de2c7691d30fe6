// Package search implements graph searches over implicit graphs: nodes are any
// comparable value and edges are produced on demand by a callback.
package search

import (
	"container/heap"
)

// Edge represents a weighted transition to Node
type Edge[N comparable] struct {
	Node N
	Cost int
}

// Result holds the outcome of a search
type Result[N comparable] struct {
	Found bool
	Goal  N
	Cost  int
	prev  map[N]N
}

// Path returns the nodes from a start node to the goal, nil if no goal was found
func (r *Result[N]) Path() []N {
	if !r.Found {
		return nil
	}
	path := []N{r.Goal}
	for node := r.Goal; ; {
		parent, ok := r.prev[node]
		if !ok {
			break
		}
		path = append(path, parent)
		node = parent
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// BFS runs a breadth-first search from start until goal matches
func BFS[N comparable](start N, neighbours func(N) []N, goal func(N) bool) *Result[N] {
	return BFSFrom([]N{start}, neighbours, goal)
}

// BFSFrom runs a breadth-first search from all starts at once
func BFSFrom[N comparable](starts []N, neighbours func(N) []N, goal func(N) bool) *Result[N] {
	result := &Result[N]{prev: map[N]N{}}
	dist := make(map[N]int, len(starts))
	queue := make([]N, 0, len(starts))
	for _, start := range starts {
		if _, ok := dist[start]; ok {
			continue
		}
		dist[start] = 0
		queue = append(queue, start)
	}
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		if goal(node) {
			result.Found, result.Goal, result.Cost = true, node, dist[node]
			return result
		}
		for _, next := range neighbours(node) {
			if _, seen := dist[next]; seen {
				continue
			}
			dist[next] = dist[node] + 1
			result.prev[next] = node
			queue = append(queue, next)
		}
	}
	return result
}

// Distances returns the BFS distance of every node reachable from start
func Distances[N comparable](start N, neighbours func(N) []N) map[N]int {
	dist := map[N]int{start: 0}
	queue := []N{start}
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		for _, next := range neighbours(node) {
			if _, seen := dist[next]; seen {
				continue
			}
			dist[next] = dist[node] + 1
			queue = append(queue, next)
		}
	}
	return dist
}

// Dijkstra finds the cheapest path from any start to a goal node, edge costs must be non-negative
func Dijkstra[N comparable](starts []N, edges func(N) []Edge[N], goal func(N) bool) *Result[N] {
	return shortest(starts, edges, nil, goal)
}

// AStar is Dijkstra guided by heuristic. Nodes are closed once expanded, so the heuristic must be
// consistent: h(n) <= cost(n, m) + h(m) for every edge n->m, and zero at the goal.
func AStar[N comparable](start N, edges func(N) []Edge[N], heuristic func(N) int, goal func(N) bool) *Result[N] {
	return shortest([]N{start}, edges, heuristic, goal)
}

func shortest[N comparable](starts []N, edges func(N) []Edge[N], heuristic func(N) int, goal func(N) bool) *Result[N] {
	result := &Result[N]{prev: map[N]N{}}
	estimate := func(n N) int {
		if heuristic == nil {
			return 0
		}
		return heuristic(n)
	}
	cost := make(map[N]int, len(starts))
	open := &queue[N]{}
	for _, start := range starts {
		cost[start] = 0
		heap.Push(open, item[N]{node: start, cost: 0, priority: estimate(start)})
	}
	done := map[N]bool{}
	for open.Len() > 0 {
		current := heap.Pop(open).(item[N])
		if done[current.node] || current.cost > cost[current.node] {
			continue
		}
		done[current.node] = true
		if goal(current.node) {
			result.Found, result.Goal, result.Cost = true, current.node, current.cost
			return result
		}
		for _, edge := range edges(current.node) {
			next := current.cost + edge.Cost
			if known, ok := cost[edge.Node]; ok && known <= next {
				continue
			}
			cost[edge.Node] = next
			result.prev[edge.Node] = current.node
			heap.Push(open, item[N]{node: edge.Node, cost: next, priority: next + estimate(edge.Node)})
		}
	}
	return result
}

type item[N comparable] struct {
	node     N
	cost     int
	priority int
}

type queue[N comparable] []item[N]

func (q queue[N]) Len() int           { return len(q) }
func (q queue[N]) Less(i, j int) bool { return q[i].priority < q[j].priority }
func (q queue[N]) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }
func (q *queue[N]) Push(x any)        { *q = append(*q, x.(item[N])) }
func (q *queue[N]) Pop() any {
	old := *q
	last := old[len(old)-1]
	*q = old[:len(old)-1]
	return last
}
