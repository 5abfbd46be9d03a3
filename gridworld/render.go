package gridworld

import (
	"fmt"
	"strings"
)

// RenderValues lays the value function out as a table, one grid row per line.
func RenderValues(grid *OccupancyGrid, values ValueFunction) string {
	var sb strings.Builder
	for row := 0; row < grid.Height; row++ {
		for col := 0; col < grid.Width; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%7.3f", values[Cell{Row: row, Col: col}])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// RenderPolicy lays the policy labels out as a table. Obstacles are shown as '#'.
func RenderPolicy(grid *OccupancyGrid, policy Policy) string {
	var sb strings.Builder
	for row := 0; row < grid.Height; row++ {
		for col := 0; col < grid.Width; col++ {
			c := Cell{Row: row, Col: col}
			label := byte(policy[c].Label)
			if grid.IsObstacle(c) {
				label = '#'
			} else if label == 0 {
				label = byte(NoMove)
			}
			sb.WriteByte(label)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
