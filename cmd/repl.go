package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/sells-group/geoquery-cli/internal/geo"
	"github.com/sells-group/geoquery-cli/internal/render"
	"github.com/sells-group/geoquery-cli/internal/session"
	"github.com/sells-group/geoquery-cli/pkg/geosql"
)

// copyConfirmDelay is how long the copy confirmation stays visible.
const copyConfirmDelay = 2 * time.Second

// copyFlag is the transient copy-confirmation affordance. It lives outside
// the state store: it is presentation state with no data dependency on the
// query lifecycle.
type copyFlag struct {
	mu  sync.Mutex
	set bool
}

func (c *copyFlag) raise() {
	c.mu.Lock()
	c.set = true
	c.mu.Unlock()
	time.AfterFunc(copyConfirmDelay, func() {
		c.mu.Lock()
		c.set = false
		c.mu.Unlock()
	})
}

func (c *copyFlag) active() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.set
}

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive query session with history",
	Long:  "Reads questions from stdin. Commands: :history, :clear, :schema, :select <id>, :copy, :reset, :quit.",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess := newSession()
		var copied copyFlag

		scanner := bufio.NewScanner(os.Stdin)
		for {
			prompt := "geoquery> "
			if copied.active() {
				prompt = "geoquery [copied]> "
			}
			fmt.Print(prompt)

			if !scanner.Scan() {
				return scanner.Err()
			}

			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}

			if strings.HasPrefix(line, ":") {
				if quit := replCommand(cmd, sess, &copied, line); quit {
					return nil
				}
				continue
			}

			runReplQuery(cmd, sess, line)
		}
	},
}

func runReplQuery(cmd *cobra.Command, sess *session.Session, question string) {
	resp, err := sess.ExecuteQuery(cmd.Context(), question)
	if err != nil {
		fmt.Printf("error: %s\n", geosql.ErrorMessage(err))
		return
	}

	snap := sess.Store().Snapshot()
	viewport := geo.FitViewport(geo.CollectBounds(resp.Results), snap.Viewport())

	fmt.Printf("SQL: %s\n", resp.SQL)
	fmt.Printf("Results: %d  Execution Time: %.1fms  Viewport: (%.4f, %.4f) zoom %d\n",
		resp.ResultCount, resp.ExecutionTime, viewport.Center.Lat, viewport.Center.Lng, viewport.Zoom)
	printFeatures(render.SelectAll(resp.Results))
}

// replCommand handles one colon command; it reports whether the repl should
// exit.
func replCommand(cmd *cobra.Command, sess *session.Session, copied *copyFlag, line string) bool {
	name, arg, _ := strings.Cut(line, " ")

	switch name {
	case ":quit", ":q", ":exit":
		return true

	case ":history":
		snap := sess.Store().Snapshot()
		if len(snap.QueryHistory) == 0 {
			fmt.Println("history is empty")
			return false
		}
		for i, item := range snap.QueryHistory {
			fmt.Printf("%2d. %s (%d results, %.1fms)\n", i+1, item.Question, item.ResultCount, item.ExecutionTime)
		}

	case ":clear":
		sess.ClearHistory()
		fmt.Println("history cleared")

	case ":schema":
		schema, err := sess.LoadSchema(cmd.Context())
		if err != nil {
			fmt.Printf("error: %s\n", geosql.ErrorMessage(err))
			return false
		}
		printSchema(schema)

	case ":select":
		id, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
		if err != nil {
			fmt.Println("usage: :select <id>")
			return false
		}
		sess.SelectFeature(id)
		if snap := sess.Store().Snapshot(); snap.SelectedFeature != nil {
			fmt.Printf("selected feature %d\n", snap.SelectedFeature.ID)
		} else {
			fmt.Println("no such feature in the current result")
		}

	case ":copy":
		snap := sess.Store().Snapshot()
		if snap.CurrentQuery == nil {
			fmt.Println("nothing to copy")
			return false
		}
		fmt.Println(snap.CurrentQuery.SQL)
		copied.raise()

	case ":reset":
		sess.Reset()
		fmt.Println("state reset")

	default:
		fmt.Printf("unknown command %s\n", name)
	}

	return false
}

func init() { rootCmd.AddCommand(replCmd) }
