package sintax

import (
	"fmt"
	"os"
	"time"
)

// debugStats is one frame's timings, filled only in debug mode.
type debugStats struct {
	inputTime     time.Duration
	frameTime     time.Duration
	drawTime      time.Duration
	frameHandlers int
	drawLayers    int
	nodeCount     int
}

// Thresholds past which debug mode warns about tree shape.
const (
	debugMaxTreeDepth  = 32
	debugMaxChildCount = 1000
)

// stderrf writes one "[sintax]" prefixed line to stderr.
func stderrf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[sintax] "+format+"\n", args...)
}

// debugLog reports the frame's phase timings and workload.
func (s *Scene) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	total := stats.inputTime + stats.frameTime + stats.drawTime
	stderrf("input: %v | frame: %v | draw: %v | total: %v",
		stats.inputTime, stats.frameTime, stats.drawTime, total)
	stderrf("frame handlers: %d | draw layers: %d | nodes: %d",
		stats.frameHandlers, stats.drawLayers, stats.nodeCount)
}

// debugCheckDisposed panics when a tree operation touches a disposed node.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("sintax debug: %s on disposed node %q (ID was %d)", op, n.Name, n.ID))
	}
}

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		stderrf("warning: tree depth %d exceeds %d (node %q)", depth, debugMaxTreeDepth, n.Name)
	}
}

func debugCheckChildCount(n *Node) {
	if c := len(n.children); c > debugMaxChildCount {
		stderrf("warning: node %q has %d children (threshold %d)", n.Name, c, debugMaxChildCount)
	}
}

// debugWarnf reports a misuse that release builds tolerate silently.
func debugWarnf(format string, args ...any) {
	if globalDebug {
		stderrf("warning: "+format, args...)
	}
}

// countNodes returns the size of the subtree rooted at n.
func countNodes(n *Node) int {
	total := 1
	for _, c := range n.children {
		total += countNodes(c)
	}
	return total
}
