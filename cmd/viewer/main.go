package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sotd-bot/repositories"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
)

// Read-only inspection of the bot's state: the queue order and the
// last daily ping date. Safe to run next to a live bot.
func main() {
	queuePath := flag.String("queue", "queue.json", "Path to the queue file")
	dbPath := flag.String("db", "sotd-badger", "Path to the checkpoint badger DB")
	flag.Parse()

	queueRepository := repositories.NewQueueRepository(*queuePath)
	queue, err := queueRepository.Load()
	if err != nil {
		log.Fatal("Error while loading queue: ", err)
	}

	color.New(color.BgBlack, color.FgGreen).Println("  ====== Song-of-the-Day queue ======")

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Pos", "User ID", "Name"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for i, p := range queue {
		table.Append([]string{fmt.Sprintf("%d", i+1), p.UserID, p.Name})
	}
	table.Render()

	if len(queue) == 0 {
		fmt.Println("(queue is empty)")
	}

	// BypassLockGuard allows opening while the bot holds the lock.
	opts := badger.DefaultOptions(*dbPath).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.WARNING)
	db, err := badger.Open(opts)
	if err != nil {
		// The checkpoint store may simply not exist yet.
		fmt.Println("Last ping: unavailable:", err)
		return
	}
	defer db.Close()

	lastPing, err := repositories.NewCheckpointRepository(db).LastPing()
	switch {
	case err != nil:
		fmt.Println("Last ping: unavailable:", err)
	case lastPing == "":
		fmt.Println("Last ping: never")
	default:
		fmt.Println("Last ping:", lastPing)
	}
}
