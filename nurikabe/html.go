package nurikabe

import (
	"fmt"
	"io"
	"time"
)

// reportEntry is one snapshot in the solve narration: what happened,
// the whole grid at that moment, which cells changed, and how many
// hypothetical guesses went nowhere along the way.
type reportEntry struct {
	msg           string
	cells         [][]State
	updated       CoordSet
	when          time.Time
	failedGuesses int
	failedCoords  CoordSet
}

func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%g microseconds", float64(d.Nanoseconds())/1e3)
	case d < time.Second:
		return fmt.Sprintf("%g milliseconds", float64(d.Nanoseconds())/1e6)
	default:
		return fmt.Sprintf("%g seconds", d.Seconds())
	}
}

const htmlHeader = `<!DOCTYPE html>
<html>
  <head>
    <meta http-equiv="Content-Type" content="text/html;charset=utf-8" />
    <style type="text/css">
      body {
        font-family: Verdana, sans-serif;
        line-height: 1.4;
      }
      table {
        border: solid 3px #000000;
        border-collapse: collapse;
      }
      td {
        border: solid 1px #000000;
        text-align: center;
        width: 20px;
        height: 20px;
      }
      td.unknown   { background-color: #C0C0C0; }
      td.white.new { background-color: #FFFF00; }
      td.white.old { }
      td.black.new { background-color: #008080; }
      td.black.old { background-color: #808080; }
      td.number    { }
      td.failed    { border: solid 3px #000000; }
    </style>
    <title>Nurikabe</title>
  </head>
  <body>
`

// Write renders the solve narration as an HTML document: one table per
// report entry, updated cells highlighted, failed guesses outlined.
func (g *Grid) Write(w io.Writer, start, finish time.Time) error {
	if _, err := io.WriteString(w, htmlHeader); err != nil {
		return err
	}

	old := start

	for _, e := range g.output {
		fmt.Fprintf(w, "%s (%s)\n", e.msg, formatDuration(e.when.Sub(old)))

		if e.failedGuesses == 1 {
			fmt.Fprintf(w, "<br/>1 guess failed.\n")
		} else if e.failedGuesses > 0 {
			fmt.Fprintf(w, "<br/>%d guesses failed.\n", e.failedGuesses)
		}

		old = e.when

		fmt.Fprintf(w, "<table>\n")

		for y := 0; y < g.height; y++ {
			fmt.Fprintf(w, "<tr>")

			for x := 0; x < g.width; x++ {
				fmt.Fprintf(w, "<td class=\"")
				if e.updated.Contains(Coord{x, y}) {
					fmt.Fprintf(w, "new ")
				} else {
					fmt.Fprintf(w, "old ")
				}
				if e.failedCoords.Contains(Coord{x, y}) {
					fmt.Fprintf(w, "failed ")
				}

				switch s := e.cells[y][x]; s {
				case Unknown:
					fmt.Fprintf(w, "unknown\"> ")
				case White:
					fmt.Fprintf(w, "white\">.")
				case Black:
					fmt.Fprintf(w, "black\">#")
				default:
					fmt.Fprintf(w, "number\">%d", int(s))
				}

				fmt.Fprintf(w, "</td>")
			}

			fmt.Fprintf(w, "</tr>\n")
		}

		fmt.Fprintf(w, "</table><br/>\n")
	}

	fmt.Fprintf(w, "Total: %s\n", formatDuration(finish.Sub(start)))

	_, err := io.WriteString(w, "  </body>\n</html>\n")
	return err
}
