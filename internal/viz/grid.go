// Package viz renders robot world state for the terminal. It only reads
// robot state, never mutates it.
package viz

import (
	"fmt"
	"math"
	"strings"

	"github.com/robolab/slambot/internal/robot"
)

const (
	emptyCell    = '.'
	robotCell    = 'o'
	landmarkCell = '*'
)

// Cells rasterizes the world onto an integer grid, row 0 at the top
// (y = worldSize). The robot marker wins over a landmark in the same cell.
func Cells(worldSize float64, x, y float64, landmarks []robot.Landmark) [][]rune {
	n := int(math.Round(worldSize)) + 1

	grid := make([][]rune, n)
	for row := range grid {
		grid[row] = make([]rune, n)
		for col := range grid[row] {
			grid[row][col] = emptyCell
		}
	}

	set := func(wx, wy float64, c rune) {
		col := int(math.Round(wx))
		row := n - 1 - int(math.Round(wy))
		if col < 0 || col >= n || row < 0 || row >= n {
			return
		}
		grid[row][col] = c
	}

	for _, lm := range landmarks {
		set(lm.X, lm.Y, landmarkCell)
	}
	set(x, y, robotCell)

	return grid
}

// Render returns the styled grid with a pose caption.
func Render(worldSize float64, x, y float64, landmarks []robot.Landmark) string {
	var b strings.Builder

	for _, row := range Cells(worldSize, x, y, landmarks) {
		for col, c := range row {
			if col > 0 {
				b.WriteByte(' ')
			}
			switch c {
			case robotCell:
				b.WriteString(robotStyle.Render(string(c)))
			case landmarkCell:
				b.WriteString(landmarkStyle.Render(string(c)))
			default:
				b.WriteString(gridStyle.Render(string(c)))
			}
		}
		b.WriteByte('\n')
	}

	b.WriteString(labelStyle.Render("pose "))
	b.WriteString(valueStyle.Render(fmt.Sprintf("(%.2f, %.2f)", x, y)))
	b.WriteString(labelStyle.Render(fmt.Sprintf("  landmarks %d", len(landmarks))))
	b.WriteByte('\n')

	return b.String()
}

// RenderRobot renders the robot's current state.
func RenderRobot(bot *robot.Robot) string {
	x, y := bot.Pose()
	return Render(bot.WorldSize(), x, y, bot.Landmarks())
}
